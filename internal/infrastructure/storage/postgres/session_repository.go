package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"passvault/internal/domain/session"
)

type SessionRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSessionRepository(pool *pgxpool.Pool, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		pool: pool,
		log:  log.With("component", "session_repository"),
	}
}

func (r *SessionRepository) Create(ctx context.Context, ownerID, tokenHash string, issuedAt, expiresAt time.Time) error {
	const query = `
		INSERT INTO sessions (token_hash, owner_id, issued_at, expires_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.pool.Exec(ctx, query, tokenHash, ownerID, issuedAt, expiresAt); err != nil {
		r.log.Error("failed to create session", "owner_id", ownerID, "error", err)
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Find(ctx context.Context, tokenHash string, now time.Time) (string, error) {
	// An expired row is the same as no row.
	const query = `
		SELECT owner_id
		FROM sessions
		WHERE token_hash = $1 AND expires_at > $2`

	var ownerID string
	err := r.pool.QueryRow(ctx, query, tokenHash, now).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", session.ErrNoSession
		}
		r.log.Error("failed to find session", "error", err)
		return "", fmt.Errorf("find session: %w", err)
	}
	return ownerID, nil
}

func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	const query = `DELETE FROM sessions WHERE token_hash = $1`

	// Deleting an absent session is fine; logout is idempotent.
	if _, err := r.pool.Exec(ctx, query, tokenHash); err != nil {
		r.log.Error("failed to delete session", "error", err)
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
