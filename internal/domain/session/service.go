package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"
)

// tokenBytes gives 256 bits of entropy per token, well above the 128-bit
// floor the handles require.
const tokenBytes = 32

type Servicer interface {
	Create(ctx context.Context, ownerID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Require(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// Service issues, resolves and revokes opaque session handles. Expired
// sessions simply stop resolving; purging the rows is housekeeping left to
// the store.
type Service struct {
	repo Repository
	ttl  time.Duration
	log  *slog.Logger
}

func NewService(repo Repository, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		ttl:  ttl,
		log:  log.With("component", "session_service"),
	}
}

// Create issues a new token bound to ownerID, valid for the configured TTL.
func (s *Service) Create(ctx context.Context, ownerID string) (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(raw)
	issuedAt := time.Now()

	if err := s.repo.Create(ctx, ownerID, hashToken(token), issuedAt, issuedAt.Add(s.ttl)); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

// Resolve returns the owner bound to the token, or ErrNoSession if the
// token is unknown or past its expiry.
func (s *Service) Resolve(ctx context.Context, token string) (string, error) {
	return s.repo.Find(ctx, hashToken(token), time.Now())
}

// Require is the gate in front of every credential-mutating operation: like
// Resolve, but any failure surfaces as ErrUnauthenticated.
func (s *Service) Require(ctx context.Context, token string) (string, error) {
	ownerID, err := s.Resolve(ctx, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return ownerID, nil
}

// Revoke deletes the session. Revoking an absent or already-revoked token
// is a no-op.
func (s *Service) Revoke(ctx context.Context, token string) error {
	if err := s.repo.Delete(ctx, hashToken(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
