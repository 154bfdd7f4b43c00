package cred

import (
	"fmt"

	"github.com/spf13/cobra"
)

var RevealCmd = &cobra.Command{
	Use:   "reveal <id>",
	Short: "Print the plaintext password of one credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, token, err := session(cmd.Context())
		if err != nil {
			return err
		}

		plaintext, err := a.Vault.RevealCredential(cmd.Context(), token, args[0])
		if err != nil {
			return err
		}

		fmt.Println(plaintext)
		return nil
	},
}

func init() {
	CredCmd.AddCommand(RevealCmd)
}
