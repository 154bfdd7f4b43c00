package twofactor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"passvault/internal/totp"
)

// Crypter encrypts and decrypts single secret values.
type Crypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(blob string) (string, error)
}

type Servicer interface {
	Add(ctx context.Context, ownerID, serviceName, accountName, secret string) (string, error)
	List(ctx context.Context, ownerID string) ([]Item, error)
	Code(ctx context.Context, ownerID, id string, at time.Time) (string, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// Service owns two-factor secret lifecycle. Secrets are validated before
// storage so Code can only fail on them if the stored blob is corrupt.
type Service struct {
	repo   Repository
	cipher Crypter
	log    *slog.Logger
}

func NewService(repo Repository, cipher Crypter, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cipher: cipher,
		log:    log.With("component", "twofactor_service"),
	}
}

// Add validates the base32 secret, encrypts it and stores it for ownerID.
func (s *Service) Add(ctx context.Context, ownerID, serviceName, accountName, secret string) (string, error) {
	if serviceName == "" || accountName == "" || secret == "" {
		return "", fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}

	// Reject undecodable secrets up front; a bad seed stored now is a
	// generation failure later.
	if _, err := totp.Generate(secret, time.Now()); err != nil {
		return "", err
	}

	blob, err := s.cipher.Encrypt(secret)
	if err != nil {
		s.log.Error("failed to encrypt two-factor secret", "error", err)
		return "", fmt.Errorf("encrypt secret: %w", err)
	}

	id, err := s.repo.Create(ctx, &Secret{
		OwnerID:         ownerID,
		ServiceName:     serviceName,
		AccountName:     accountName,
		EncryptedSecret: blob,
	})
	if err != nil {
		s.log.Error("failed to create two-factor secret", "error", err)
		return "", fmt.Errorf("create secret: %w", err)
	}

	s.log.Info("two-factor secret created", "secret_id", id, "service", serviceName)
	return id, nil
}

// List returns the user's stored secrets without key material.
func (s *Service) List(ctx context.Context, ownerID string) ([]Item, error) {
	items, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list two-factor secrets", "error", err)
		return nil, fmt.Errorf("list secrets: %w", err)
	}
	return items, nil
}

// Code decrypts the stored seed and derives the TOTP code for the window
// containing at. The seed never leaves this call.
func (s *Service) Code(ctx context.Context, ownerID, id string, at time.Time) (string, error) {
	blob, err := s.repo.GetBlob(ctx, ownerID, id)
	if err != nil {
		return "", err
	}

	secret, err := s.cipher.Decrypt(blob)
	if err != nil {
		s.log.Error("failed to decrypt two-factor secret", "secret_id", id, "error", err)
		return "", fmt.Errorf("decrypt secret: %w", err)
	}

	code, err := totp.Generate(secret, at)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return code, nil
}

// Delete removes a secret owned by ownerID in one atomic statement.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.log.Info("two-factor secret deleted", "secret_id", id)
	return nil
}
