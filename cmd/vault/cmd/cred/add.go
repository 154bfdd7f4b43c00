package cred

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"passvault/cmd/vault/cmd/types"
)

var (
	addService string
	addAccount string
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store a new credential",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := types.FromContext(cmd.Context())
		token, err := a.Tokens.Load()
		if err != nil {
			return err
		}

		fmt.Print("Password to store: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		id, err := a.Vault.AddCredential(cmd.Context(), token, addService, addAccount, string(password))
		if err != nil {
			return err
		}

		color.Green("Stored credential %s", id)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addService, "service", "s", "", "service the credential belongs to")
	AddCmd.Flags().StringVarP(&addAccount, "account", "a", "", "account name at the service")
	_ = AddCmd.MarkFlagRequired("service")
	_ = AddCmd.MarkFlagRequired("account")
	CredCmd.AddCommand(AddCmd)
}
