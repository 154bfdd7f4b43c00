package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"passvault/cmd/vault/cmd/types"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email or username",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := types.FromContext(cmd.Context())

		fmt.Print("Email or username: ")
		var identifier string
		_, _ = fmt.Scanln(&identifier)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		token, err := a.Vault.Login(cmd.Context(), identifier, string(password))
		if err != nil {
			return err
		}

		if err := a.Tokens.Save(token); err != nil {
			return err
		}

		color.Green("Signed in")
		return nil
	},
}

func init() {
	AuthCmd.AddCommand(LoginCmd)
}
