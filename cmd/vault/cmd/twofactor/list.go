package twofactor

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored two-factor secrets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, token, err := session(cmd.Context())
		if err != nil {
			return err
		}

		items, err := a.Vault.ListTwoFactorSecrets(cmd.Context(), token)
		if err != nil {
			return err
		}

		if len(items) == 0 {
			fmt.Println("No two-factor secrets stored")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSERVICE\tACCOUNT\tCREATED")
		for _, it := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", it.ID, it.ServiceName, it.AccountName, it.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

func init() {
	TwoFactorCmd.AddCommand(ListCmd)
}
