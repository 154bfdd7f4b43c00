package twofactor

import "context"

// Repository persists two-factor secrets. Reads and deletes are keyed by
// (id, ownerID) in a single statement.
type Repository interface {
	Create(ctx context.Context, sec *Secret) (string, error)
	List(ctx context.Context, ownerID string) ([]Item, error)
	GetBlob(ctx context.Context, ownerID, id string) (string, error)
	Delete(ctx context.Context, ownerID, id string) error
}
