// Package storage selects and wires a database backend behind the domain
// repository interfaces.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"passvault/internal/config"
	"passvault/internal/domain/audit"
	"passvault/internal/domain/credential"
	"passvault/internal/domain/session"
	"passvault/internal/domain/twofactor"
	"passvault/internal/domain/user"
	"passvault/internal/infrastructure/storage/postgres"
	"passvault/internal/infrastructure/storage/sqlite"
)

// CredentialStore is the credential repository plus the audit's read view
// over the same table.
type CredentialStore interface {
	credential.Repository
	audit.Repository
}

// Storage bundles every repository of the chosen backend.
type Storage struct {
	Users       user.Repository
	Credentials CredentialStore
	TwoFactor   twofactor.Repository
	Sessions    session.Repository

	closer func() error
}

// New opens the backend named by the configuration, runs migrations, and
// returns the repository set.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	switch cfg.DB.Driver {
	case "sqlite":
		st, err := sqlite.New(cfg.DB.DatabaseURI)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return &Storage{
			Users:       sqlite.NewUserRepository(st.DB(), log),
			Credentials: sqlite.NewCredentialRepository(st.DB(), log),
			TwoFactor:   sqlite.NewTwoFactorRepository(st.DB(), log),
			Sessions:    sqlite.NewSessionRepository(st.DB(), log),
			closer:      st.Close,
		}, nil

	case "postgres":
		st, err := postgres.New(ctx, cfg.DB.DatabaseURI)
		if err != nil {
			return nil, fmt.Errorf("open postgres storage: %w", err)
		}
		return &Storage{
			Users:       postgres.NewUserRepository(st.Pool(), log),
			Credentials: postgres.NewCredentialRepository(st.Pool(), log),
			TwoFactor:   postgres.NewTwoFactorRepository(st.Pool(), log),
			Sessions:    postgres.NewSessionRepository(st.Pool(), log),
			closer:      st.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DB.Driver)
	}
}

func (s *Storage) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
