// Package app wires configuration, storage and the domain services into a
// ready-to-use vault.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"passvault/internal/config"
	"passvault/internal/crypto"
	"passvault/internal/domain/audit"
	"passvault/internal/domain/credential"
	"passvault/internal/domain/session"
	"passvault/internal/domain/twofactor"
	"passvault/internal/domain/user"
	"passvault/internal/infrastructure/storage"
	"passvault/internal/vault"
)

type App struct {
	Cfg    *config.Config
	Log    *slog.Logger
	Vault  *vault.Vault
	Tokens *TokenFile

	store *storage.Storage
}

// New builds the full service graph. The encryption key is validated here,
// before anything touches the database.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	cipher, err := crypto.New(cfg.Crypto.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("configure cipher: %w", err)
	}

	store, err := storage.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	userService := user.NewService(store.Users, user.NewValidator(), log)
	sessionService := session.NewService(store.Sessions, cfg.Session.TTL, log)
	credentialService := credential.NewService(store.Credentials, cipher, log)
	twoFactorService := twofactor.NewService(store.TwoFactor, cipher, log)
	auditService := audit.NewService(store.Credentials, cipher, log)

	tokens, err := NewTokenFile("")
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("token file: %w", err)
	}

	return &App{
		Cfg:    cfg,
		Log:    log,
		Vault:  vault.New(userService, sessionService, credentialService, twoFactorService, auditService, log),
		Tokens: tokens,
		store:  store,
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}
