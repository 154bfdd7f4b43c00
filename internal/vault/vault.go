// Package vault is the boundary of the credential core: every operation
// takes an opaque session token, resolves it to an owner, and delegates to
// the domain services. Nothing outside this package sees user IDs.
package vault

import (
	"context"
	"log/slog"
	"time"

	"passvault/internal/domain/audit"
	"passvault/internal/domain/credential"
	"passvault/internal/domain/session"
	"passvault/internal/domain/twofactor"
	"passvault/internal/domain/user"
)

type Vault struct {
	users       user.Servicer
	sessions    session.Servicer
	credentials credential.Servicer
	twoFactor   twofactor.Servicer
	audits      audit.Servicer
	log         *slog.Logger
}

func New(
	users user.Servicer,
	sessions session.Servicer,
	credentials credential.Servicer,
	twoFactor twofactor.Servicer,
	audits audit.Servicer,
	log *slog.Logger,
) *Vault {
	return &Vault{
		users:       users,
		sessions:    sessions,
		credentials: credentials,
		twoFactor:   twoFactor,
		audits:      audits,
		log:         log.With("component", "vault"),
	}
}

// Register creates an account and signs the new user in, returning the
// session token.
func (v *Vault) Register(ctx context.Context, email, username, password string) (string, error) {
	u, err := v.users.Register(ctx, email, username, password)
	if err != nil {
		return "", err
	}
	return v.sessions.Create(ctx, u.ID)
}

// Login authenticates by email or username and returns a fresh session
// token.
func (v *Vault) Login(ctx context.Context, identifier, password string) (string, error) {
	u, err := v.users.Authenticate(ctx, identifier, password)
	if err != nil {
		return "", err
	}
	return v.sessions.Create(ctx, u.ID)
}

// Logout revokes the token; revoking an already-dead token succeeds.
func (v *Vault) Logout(ctx context.Context, token string) error {
	return v.sessions.Revoke(ctx, token)
}

// DeleteAccount removes the signed-in user and everything they own.
func (v *Vault) DeleteAccount(ctx context.Context, token string) error {
	ownerID, err := v.sessions.Require(ctx, token)
	if err != nil {
		return err
	}
	// The user's sessions cascade with the account, this token included.
	return v.users.Delete(ctx, ownerID)
}

func (v *Vault) AddCredential(ctx context.Context, token, serviceName, accountName, password string) (string, error) {
	ownerID, err := v.sessions.Require(ctx, token)
	if err != nil {
		return "", err
	}
	return v.credentials.Add(ctx, ownerID, serviceName, accountName, password)
}

func (v *Vault) ListCredentials(ctx context.Context, token string) ([]credential.Item, error) {
	ownerID, err := v.sessions.Require(ctx, token)
	if err != nil {
		return nil, err
	}
	return v.credentials.List(ctx, ownerID)
}

func (v *Vault) RevealCredential(ctx context.Context, token, id string) (string, error) {
	ownerID, err := v.sessions.Require(ctx, token)
	if err != nil {
		return "", err
	}
	return v.credentials.Reveal(ctx, ownerID, id)
}

func (v *Vault) DeleteCredential(ctx context.Context, token, id string) error {
	ownerID, err := v.sessions.Require(ctx, token)
	if err != nil {
		return err
	}
	return v.credentials.Delete(ctx, ownerID, id)
}

func (v *Vault) AddTwoFactorSecret(ctx context.Context, token, serviceName, accountName, secret string) (string, error) {
	ownerID, err := v.sessions.Require(ctx, token)
	if err != nil {
		return "", err
	}
	return v.twoFactor.Add(ctx, ownerID, serviceName, accountName, secret)
}

func (v *Vault) ListTwoFactorSecrets(ctx context.Context, token string) ([]twofactor.Item, error) {
	ownerID, err := v.sessions.Require(ctx, token)
	if err != nil {
		return nil, err
	}
	return v.twoFactor.List(ctx, ownerID)
}

// GenerateTOTP returns the six-digit code for the stored secret in the
// current 30-second window.
func (v *Vault) GenerateTOTP(ctx context.Context, token, id string) (string, error) {
	ownerID, err := v.sessions.Require(ctx, token)
	if err != nil {
		return "", err
	}
	return v.twoFactor.Code(ctx, ownerID, id, time.Now())
}

func (v *Vault) DeleteTwoFactorSecret(ctx context.Context, token, id string) error {
	ownerID, err := v.sessions.Require(ctx, token)
	if err != nil {
		return err
	}
	return v.twoFactor.Delete(ctx, ownerID, id)
}

// RunAudit scores the signed-in user's stored credentials.
func (v *Vault) RunAudit(ctx context.Context, token string) (audit.Report, error) {
	ownerID, err := v.sessions.Require(ctx, token)
	if err != nil {
		return audit.Report{}, err
	}
	return v.audits.Run(ctx, ownerID)
}
