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

	"passvault/internal/domain/audit"
	"passvault/internal/domain/credential"
)

type CredentialRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCredentialRepository(pool *pgxpool.Pool, log *slog.Logger) *CredentialRepository {
	return &CredentialRepository{
		pool: pool,
		log:  log.With("component", "credential_repository"),
	}
}

func (r *CredentialRepository) Create(ctx context.Context, c *credential.Credential) (string, error) {
	const query = `
		INSERT INTO credentials (id, owner_id, service_name, account_name, encrypted_password, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	if _, err := r.pool.Exec(ctx, query,
		c.ID, c.OwnerID, c.ServiceName, c.AccountName, c.EncryptedPassword, c.CreatedAt); err != nil {
		r.log.Error("failed to create credential", "owner_id", c.OwnerID, "error", err)
		return "", fmt.Errorf("create credential: %w", err)
	}

	return c.ID, nil
}

func (r *CredentialRepository) List(ctx context.Context, ownerID string) ([]credential.Item, error) {
	const query = `
		SELECT id, service_name, account_name, created_at
		FROM credentials
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list credentials", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	var items []credential.Item
	for rows.Next() {
		var it credential.Item
		if err := rows.Scan(&it.ID, &it.ServiceName, &it.AccountName, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *CredentialRepository) GetBlob(ctx context.Context, ownerID, id string) (string, error) {
	const query = `
		SELECT encrypted_password
		FROM credentials
		WHERE id = $1 AND owner_id = $2`

	var blob string
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", credential.ErrNotFound
		}
		r.log.Error("failed to get credential", "credential_id", id, "error", err)
		return "", fmt.Errorf("get credential: %w", err)
	}
	return blob, nil
}

func (r *CredentialRepository) Delete(ctx context.Context, ownerID, id string) error {
	// Ownership check and delete in one statement.
	const query = `DELETE FROM credentials WHERE id = $1 AND owner_id = $2`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete credential", "credential_id", id, "error", err)
		return fmt.Errorf("delete credential: %w", err)
	}

	if result.RowsAffected() == 0 {
		return credential.ErrNotFound
	}
	return nil
}

// ListSecrets feeds the audit with every stored blob and its age.
func (r *CredentialRepository) ListSecrets(ctx context.Context, ownerID string) ([]audit.Secret, error) {
	const query = `
		SELECT encrypted_password, created_at
		FROM credentials
		WHERE owner_id = $1`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list secrets", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list secrets: %w", err)
	}
	defer rows.Close()

	var secrets []audit.Secret
	for rows.Next() {
		var s audit.Secret
		if err := rows.Scan(&s.Blob, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan secret: %w", err)
		}
		secrets = append(secrets, s)
	}
	return secrets, rows.Err()
}
