package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Secret is a stored credential as the audit sees it: the ciphertext blob
// and its age. Decryption happens inside Run and the plaintext is discarded
// with the call.
type Secret struct {
	Blob      string
	CreatedAt time.Time
}

// Repository lists a user's stored credential blobs for auditing.
type Repository interface {
	ListSecrets(ctx context.Context, ownerID string) ([]Secret, error)
}

// Decrypter recovers a plaintext from a ciphertext blob.
type Decrypter interface {
	Decrypt(blob string) (string, error)
}

type Servicer interface {
	Run(ctx context.Context, ownerID string) (Report, error)
}

// Service runs security audits over a user's credential set.
type Service struct {
	repo   Repository
	cipher Decrypter
	log    *slog.Logger
}

func NewService(repo Repository, cipher Decrypter, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cipher: cipher,
		log:    log.With("component", "audit_service"),
	}
}

// Run decrypts the user's credentials and scores them as of time.Now.
// Blobs that fail to decrypt are dropped from the sample rather than
// aborting the report.
func (s *Service) Run(ctx context.Context, ownerID string) (Report, error) {
	secrets, err := s.repo.ListSecrets(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list secrets for audit", "error", err)
		return Report{}, fmt.Errorf("list secrets: %w", err)
	}

	entries := make([]Entry, 0, len(secrets))
	skipped := 0
	for _, sec := range secrets {
		plaintext, err := s.cipher.Decrypt(sec.Blob)
		if err != nil {
			skipped++
			continue
		}
		entries = append(entries, Entry{Plaintext: plaintext, CreatedAt: sec.CreatedAt})
	}

	if skipped > 0 {
		s.log.Warn("audit skipped undecryptable entries", "skipped", skipped)
	}

	return Score(entries, time.Now()), nil
}
