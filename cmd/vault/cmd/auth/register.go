package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"passvault/cmd/vault/cmd/types"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := types.FromContext(cmd.Context())

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Username: ")
		var username string
		_, _ = fmt.Scanln(&username)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Repeat password: ")
		confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(confirm) {
			return fmt.Errorf("passwords do not match")
		}

		token, err := a.Vault.Register(cmd.Context(), email, username, string(password))
		if err != nil {
			return err
		}

		if err := a.Tokens.Save(token); err != nil {
			return err
		}

		color.Green("Account created, you are signed in as %s", username)
		return nil
	},
}

func init() {
	AuthCmd.AddCommand(RegisterCmd)
}
