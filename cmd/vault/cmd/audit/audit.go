// Package audit exposes the security audit as a single command.
package audit

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"passvault/cmd/vault/cmd/types"
)

var AuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Score the health of your stored passwords",
	Long: `Decrypts your stored passwords in memory and reports how many are
weak, reused or older than a year, with an overall 0-100 score.
Nothing is written anywhere; run it again any time.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := types.FromContext(cmd.Context())
		token, err := a.Tokens.Load()
		if err != nil {
			return err
		}

		report, err := a.Vault.RunAudit(cmd.Context(), token)
		if err != nil {
			return err
		}

		scoreColor := color.New(color.FgGreen)
		switch {
		case report.Score < 50:
			scoreColor = color.New(color.FgRed)
		case report.Score < 80:
			scoreColor = color.New(color.FgYellow)
		}

		scoreColor.Printf("Score: %d/100\n", report.Score)
		fmt.Printf("Audited:  %d\n", report.Total)
		fmt.Printf("Weak:     %d\n", report.WeakCount)
		fmt.Printf("Reused:   %d\n", report.ReusedCount)
		fmt.Printf("Over 1y:  %d\n", report.OldCount)
		return nil
	},
}
