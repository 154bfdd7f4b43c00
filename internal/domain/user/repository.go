package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) (string, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	// Delete removes the user; credentials, two-factor secrets and
	// sessions cascade at the store level.
	Delete(ctx context.Context, id string) error
}
