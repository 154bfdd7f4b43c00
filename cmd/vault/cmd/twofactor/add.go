package twofactor

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	addService string
	addAccount string
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store a TOTP secret",
	Long:  `Stores the base32 seed a service shows during two-factor enrollment. The seed is validated before it is encrypted.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, token, err := session(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Print("Base32 secret: ")
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read secret: %w", err)
		}
		fmt.Println()

		id, err := a.Vault.AddTwoFactorSecret(cmd.Context(), token, addService, addAccount, string(secret))
		if err != nil {
			return err
		}

		color.Green("Stored two-factor secret %s", id)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addService, "service", "s", "", "service the secret belongs to")
	AddCmd.Flags().StringVarP(&addAccount, "account", "a", "", "account name at the service")
	_ = AddCmd.MarkFlagRequired("service")
	_ = AddCmd.MarkFlagRequired("account")
	TwoFactorCmd.AddCommand(AddCmd)
}
