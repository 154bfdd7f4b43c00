package auth

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"passvault/cmd/vault/cmd/types"
	"passvault/internal/app"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := types.FromContext(cmd.Context())

		token, err := a.Tokens.Load()
		if err != nil {
			if errors.Is(err, app.ErrNoToken) {
				color.Yellow("Already signed out")
				return nil
			}
			return err
		}

		if err := a.Vault.Logout(cmd.Context(), token); err != nil {
			return err
		}
		if err := a.Tokens.Clear(); err != nil {
			return err
		}

		color.Green("Signed out")
		return nil
	},
}

func init() {
	AuthCmd.AddCommand(LogoutCmd)
}
