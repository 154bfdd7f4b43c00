package cmd

import (
	"passvault/cmd/vault/cmd/audit"
	"passvault/cmd/vault/cmd/auth"
	"passvault/cmd/vault/cmd/cred"
	"passvault/cmd/vault/cmd/twofactor"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(cred.CredCmd)
	rootCmd.AddCommand(twofactor.TwoFactorCmd)
	rootCmd.AddCommand(audit.AuditCmd)
}
