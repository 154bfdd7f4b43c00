// Package cred groups the stored-credential commands.
package cred

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"passvault/cmd/vault/cmd/types"
	"passvault/internal/app"
)

var CredCmd = &cobra.Command{
	Use:   "cred",
	Short: "Manage stored credentials",
}

// session resolves the wired application and the saved token in one go.
func session(ctx context.Context) (*app.App, string, error) {
	a := types.FromContext(ctx)
	token, err := a.Tokens.Load()
	if err != nil {
		return nil, "", fmt.Errorf("load session: %w", err)
	}
	return a, token, nil
}
