package audit

import (
	"strings"
	"time"
)

// Symbols is the punctuation set a password must draw from to count as
// having a symbol.
const Symbols = "!@#$%^&*()-_=+"

// maxAge is how old an entry may be before it counts against the score.
const maxAge = 365 * 24 * time.Hour

// Penalty weights per finding.
const (
	weakPenalty   = 5
	reusedPenalty = 10
	oldPenalty    = 3
)

// Entry is one decrypted credential under evaluation. The plaintext lives
// only for the duration of the Score call.
type Entry struct {
	Plaintext string
	CreatedAt time.Time
}

// Report is the outcome of a security audit. Derived on demand, never
// persisted.
type Report struct {
	Score       int `json:"score"`
	WeakCount   int `json:"weak_count"`
	ReusedCount int `json:"reused_count"`
	OldCount    int `json:"old_count"`
	Total       int `json:"total"`
}

// Score evaluates the given entries as of now. It is a pure function: the
// input is not mutated, the result does not depend on entry order.
//
// An entry is weak when it is shorter than 12 characters or misses any of
// uppercase, lowercase, digit, or a symbol from Symbols. An entry is old
// when created more than 365 days before now. Reuse counts every extra
// occurrence beyond the first of each duplicated plaintext. The score is
// 100 - 5*weak - 10*reused - 3*old, clamped to [0, 100].
func Score(entries []Entry, now time.Time) Report {
	report := Report{Total: len(entries)}

	occurrences := make(map[string]int, len(entries))
	cutoff := now.Add(-maxAge)

	for _, e := range entries {
		if isWeak(e.Plaintext) {
			report.WeakCount++
		}
		if e.CreatedAt.Before(cutoff) {
			report.OldCount++
		}
		occurrences[e.Plaintext]++
	}

	for _, n := range occurrences {
		if n > 1 {
			report.ReusedCount += n - 1
		}
	}

	score := 100 -
		weakPenalty*report.WeakCount -
		reusedPenalty*report.ReusedCount -
		oldPenalty*report.OldCount
	report.Score = clamp(score, 0, 100)

	return report
}

func isWeak(plaintext string) bool {
	if len([]rune(plaintext)) < 12 {
		return true
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range plaintext {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(Symbols, r):
			hasSymbol = true
		}
	}

	return !(hasUpper && hasLower && hasDigit && hasSymbol)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
