package cred

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored credentials",
	Long:  `Lists your credentials, newest first. Passwords are never shown here; use 'cred reveal'.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, token, err := session(cmd.Context())
		if err != nil {
			return err
		}

		items, err := a.Vault.ListCredentials(cmd.Context(), token)
		if err != nil {
			return err
		}

		if listFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}

		if len(items) == 0 {
			fmt.Println("No credentials stored")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSERVICE\tACCOUNT\tCREATED")
		for _, it := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				it.ID, it.ServiceName, it.AccountName, it.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format: table or json")
	CredCmd.AddCommand(ListCmd)
}
