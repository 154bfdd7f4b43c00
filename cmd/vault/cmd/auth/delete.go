package auth

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"passvault/cmd/vault/cmd/types"
)

var deleteYes bool

var DeleteAccountCmd = &cobra.Command{
	Use:   "delete-account",
	Short: "Delete your account and everything stored in it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := types.FromContext(cmd.Context())

		if !deleteYes {
			fmt.Print("This removes the account and all stored secrets. Type 'yes' to continue: ")
			var answer string
			_, _ = fmt.Scanln(&answer)
			if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
				color.Yellow("Aborted")
				return nil
			}
		}

		token, err := a.Tokens.Load()
		if err != nil {
			return err
		}

		if err := a.Vault.DeleteAccount(cmd.Context(), token); err != nil {
			return err
		}
		if err := a.Tokens.Clear(); err != nil {
			return err
		}

		color.Green("Account deleted")
		return nil
	},
}

func init() {
	DeleteAccountCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	AuthCmd.AddCommand(DeleteAccountCmd)
}
