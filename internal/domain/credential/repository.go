package credential

import "context"

// Repository persists credentials. Every read and delete is keyed by
// (id, ownerID) in a single statement so ownership can never be checked
// apart from the operation itself.
type Repository interface {
	Create(ctx context.Context, c *Credential) (string, error)
	List(ctx context.Context, ownerID string) ([]Item, error)
	GetBlob(ctx context.Context, ownerID, id string) (string, error)
	Delete(ctx context.Context, ownerID, id string) error
}
