package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"passvault/internal/domain/session"
)

type SessionRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewSessionRepository(db *sql.DB, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		db:  db,
		log: log.With("component", "session_repository"),
	}
}

func (r *SessionRepository) Create(ctx context.Context, ownerID, tokenHash string, issuedAt, expiresAt time.Time) error {
	const query = `
		INSERT INTO sessions (token_hash, owner_id, issued_at, expires_at)
		VALUES (?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, tokenHash, ownerID, issuedAt, expiresAt); err != nil {
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
		WHERE token_hash = ? AND expires_at > ?`

	var ownerID string
	err := r.db.QueryRowContext(ctx, query, tokenHash, now).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", session.ErrNoSession
		}
		r.log.Error("failed to find session", "error", err)
		return "", fmt.Errorf("find session: %w", err)
	}
	return ownerID, nil
}

func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	const query = `DELETE FROM sessions WHERE token_hash = ?`

	// Deleting an absent session is fine; logout is idempotent.
	if _, err := r.db.ExecContext(ctx, query, tokenHash); err != nil {
		r.log.Error("failed to delete session", "error", err)
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
