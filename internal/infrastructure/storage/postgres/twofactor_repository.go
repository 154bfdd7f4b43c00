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

	"passvault/internal/domain/twofactor"
)

type TwoFactorRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewTwoFactorRepository(pool *pgxpool.Pool, log *slog.Logger) *TwoFactorRepository {
	return &TwoFactorRepository{
		pool: pool,
		log:  log.With("component", "twofactor_repository"),
	}
}

func (r *TwoFactorRepository) Create(ctx context.Context, sec *twofactor.Secret) (string, error) {
	const query = `
		INSERT INTO two_factor_secrets (id, owner_id, service_name, account_name, encrypted_secret, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	sec.ID = uuid.NewString()
	sec.CreatedAt = time.Now().UTC()

	if _, err := r.pool.Exec(ctx, query,
		sec.ID, sec.OwnerID, sec.ServiceName, sec.AccountName, sec.EncryptedSecret, sec.CreatedAt); err != nil {
		r.log.Error("failed to create two-factor secret", "owner_id", sec.OwnerID, "error", err)
		return "", fmt.Errorf("create two-factor secret: %w", err)
	}

	return sec.ID, nil
}

func (r *TwoFactorRepository) List(ctx context.Context, ownerID string) ([]twofactor.Item, error) {
	const query = `
		SELECT id, service_name, account_name, created_at
		FROM two_factor_secrets
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list two-factor secrets", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list two-factor secrets: %w", err)
	}
	defer rows.Close()

	var items []twofactor.Item
	for rows.Next() {
		var it twofactor.Item
		if err := rows.Scan(&it.ID, &it.ServiceName, &it.AccountName, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan two-factor secret: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *TwoFactorRepository) GetBlob(ctx context.Context, ownerID, id string) (string, error) {
	const query = `
		SELECT encrypted_secret
		FROM two_factor_secrets
		WHERE id = $1 AND owner_id = $2`

	var blob string
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", twofactor.ErrNotFound
		}
		r.log.Error("failed to get two-factor secret", "secret_id", id, "error", err)
		return "", fmt.Errorf("get two-factor secret: %w", err)
	}
	return blob, nil
}

func (r *TwoFactorRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM two_factor_secrets WHERE id = $1 AND owner_id = $2`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete two-factor secret", "secret_id", id, "error", err)
		return fmt.Errorf("delete two-factor secret: %w", err)
	}

	if result.RowsAffected() == 0 {
		return twofactor.ErrNotFound
	}
	return nil
}
