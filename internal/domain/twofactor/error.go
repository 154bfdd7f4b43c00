package twofactor

import "errors"

var (
	// ErrNotFound covers both a missing record and a record owned by
	// someone else; the two are indistinguishable on purpose.
	ErrNotFound = errors.New("two-factor secret not found")

	ErrInvalidInput = errors.New("invalid input")
)
