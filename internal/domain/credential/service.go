package credential

import (
	"context"
	"fmt"
	"log/slog"
)

// Crypter encrypts and decrypts single secret values.
type Crypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(blob string) (string, error)
}

type Servicer interface {
	Add(ctx context.Context, ownerID, serviceName, accountName, password string) (string, error)
	List(ctx context.Context, ownerID string) ([]Item, error)
	Reveal(ctx context.Context, ownerID, id string) (string, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// Service owns credential lifecycle: encrypt on write, decrypt on read,
// ownership enforced on every record access.
type Service struct {
	repo   Repository
	cipher Crypter
	log    *slog.Logger
}

func NewService(repo Repository, cipher Crypter, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cipher: cipher,
		log:    log.With("component", "credential_service"),
	}
}

// Add encrypts the password and stores the record for ownerID.
func (s *Service) Add(ctx context.Context, ownerID, serviceName, accountName, password string) (string, error) {
	if serviceName == "" || accountName == "" || password == "" {
		return "", fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}

	blob, err := s.cipher.Encrypt(password)
	if err != nil {
		s.log.Error("failed to encrypt credential", "error", err)
		return "", fmt.Errorf("encrypt credential: %w", err)
	}

	id, err := s.repo.Create(ctx, &Credential{
		OwnerID:           ownerID,
		ServiceName:       serviceName,
		AccountName:       accountName,
		EncryptedPassword: blob,
	})
	if err != nil {
		s.log.Error("failed to create credential", "error", err)
		return "", fmt.Errorf("create credential: %w", err)
	}

	s.log.Info("credential created", "credential_id", id, "service", serviceName)
	return id, nil
}

// List returns the user's credentials without any secret material.
func (s *Service) List(ctx context.Context, ownerID string) ([]Item, error) {
	items, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list credentials", "error", err)
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	return items, nil
}

// Reveal decrypts a single credential owned by ownerID. The plaintext only
// exists in the returned value.
func (s *Service) Reveal(ctx context.Context, ownerID, id string) (string, error) {
	blob, err := s.repo.GetBlob(ctx, ownerID, id)
	if err != nil {
		return "", err
	}

	plaintext, err := s.cipher.Decrypt(blob)
	if err != nil {
		s.log.Error("failed to decrypt credential", "credential_id", id, "error", err)
		return "", fmt.Errorf("decrypt credential: %w", err)
	}

	return plaintext, nil
}

// Delete removes a credential owned by ownerID; the ownership check and
// the delete are one atomic statement in the repository.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.log.Info("credential deleted", "credential_id", id)
	return nil
}
