package twofactor

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"passvault/internal/totp"
)

var CodeCmd = &cobra.Command{
	Use:   "code <id>",
	Short: "Generate the current six-digit code",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, token, err := session(cmd.Context())
		if err != nil {
			return err
		}

		code, err := a.Vault.GenerateTOTP(cmd.Context(), token, args[0])
		if err != nil {
			return err
		}

		now := time.Now()
		remaining := totp.WindowStart(now).Add(totp.Period * time.Second).Sub(now).Round(time.Second)
		fmt.Printf("%s (valid for %s)\n", code, remaining)
		return nil
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	TwoFactorCmd.AddCommand(CodeCmd)
}
