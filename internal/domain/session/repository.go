package session

import (
	"context"
	"time"
)

// Repository persists session records. Tokens are stored hashed; the raw
// token never reaches the store.
type Repository interface {
	Create(ctx context.Context, ownerID, tokenHash string, issuedAt, expiresAt time.Time) error
	// Find returns the owner of a session whose hash matches and whose
	// expiry is after now, or ErrNoSession.
	Find(ctx context.Context, tokenHash string, now time.Time) (string, error)
	// Delete removes a session record. Deleting an absent record is not an
	// error.
	Delete(ctx context.Context, tokenHash string) error
}
