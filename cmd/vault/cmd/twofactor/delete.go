package twofactor

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored two-factor secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, token, err := session(cmd.Context())
		if err != nil {
			return err
		}

		if err := a.Vault.DeleteTwoFactorSecret(cmd.Context(), token, args[0]); err != nil {
			return err
		}

		color.Green("Deleted %s", args[0])
		return nil
	},
}

func init() {
	TwoFactorCmd.AddCommand(DeleteCmd)
}
