// Package auth groups the account commands: register, login, logout and
// account removal.
package auth

import (
	"github.com/spf13/cobra"
)

var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your account and session",
}
