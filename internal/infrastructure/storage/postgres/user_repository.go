package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"passvault/internal/domain/user"
)

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (string, error) {
	const query = `
		INSERT INTO users (id, email, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()

	if _, err := r.pool.Exec(ctx, query,
		u.ID, u.Email, u.Username, u.PasswordHash, u.CreatedAt); err != nil {
		r.log.Error("failed to create user", "error", err)
		return "", fmt.Errorf("create user: %w", err)
	}

	return u.ID, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	const query = `
		SELECT id, email, username, password_hash, created_at
		FROM users
		WHERE email = $1`

	return r.findOne(ctx, query, email)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	const query = `
		SELECT id, email, username, password_hash, created_at
		FROM users
		WHERE username = $1`

	return r.findOne(ctx, query, username)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	// Credentials, two-factor secrets and sessions go with the user via
	// ON DELETE CASCADE.
	const query = `DELETE FROM users WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query, arg string) (user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		r.log.Error("failed to find user", "error", err)
		return user.User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}
