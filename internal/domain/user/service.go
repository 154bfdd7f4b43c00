package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Servicer interface {
	Register(ctx context.Context, email, username, password string) (User, error)
	Authenticate(ctx context.Context, identifier, password string) (User, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

// Register creates a new account. Duplicate email or username is reported
// distinctly so the caller can show a usable message.
func (s *Service) Register(ctx context.Context, email, username, password string) (User, error) {
	if err := s.validator.ValidateRegister(email, username, password); err != nil {
		s.log.Debug("registration validation failed", "error", err)
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("check email: %w", err)
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return User{}, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{Email: email, Username: username, PasswordHash: string(hash)}
	id, err := s.repo.Create(ctx, &u)
	if err != nil {
		s.log.Error("failed to create user", "error", err)
		return User{}, fmt.Errorf("create user: %w", err)
	}
	u.ID = id

	s.log.Info("user registered", "user_id", id)
	return u, nil
}

// Authenticate verifies a password against the stored digest. Identifiers
// containing '@' are looked up by email first, then by username; every
// failure mode collapses into ErrInvalidAuth so the response never says
// which factor was wrong.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (User, error) {
	if identifier == "" || password == "" {
		return User{}, ErrInvalidAuth
	}

	u, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		// Burn roughly the same time as a real comparison so missing
		// accounts are not distinguishable by latency.
		_ = bcrypt.CompareHashAndPassword(
			[]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
			[]byte(password))
		return User{}, ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}

// Delete removes the account and, by cascade, everything it owns.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info("user deleted", "user_id", id)
	return nil
}

func (s *Service) findByIdentifier(ctx context.Context, identifier string) (User, error) {
	if strings.Contains(identifier, "@") {
		if u, err := s.repo.FindByEmail(ctx, identifier); err == nil {
			return u, nil
		}
	}
	return s.repo.FindByUsername(ctx, identifier)
}
