// Package twofactor groups the TOTP secret commands.
package twofactor

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"passvault/cmd/vault/cmd/types"
	"passvault/internal/app"
)

var TwoFactorCmd = &cobra.Command{
	Use:   "2fa",
	Short: "Manage two-factor secrets and generate codes",
}

func session(ctx context.Context) (*app.App, string, error) {
	a := types.FromContext(ctx)
	token, err := a.Tokens.Load()
	if err != nil {
		return nil, "", fmt.Errorf("load session: %w", err)
	}
	return a, token, nil
}
