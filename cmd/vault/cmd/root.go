package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"passvault/cmd/vault/cmd/types"
	"passvault/internal/app"
	"passvault/internal/config"
	"passvault/internal/utils/logger"
)

var application *app.App

var rootCmd = &cobra.Command{
	Use:   "passvault",
	Short: "passvault - personal credential vault",
	Long: `passvault keeps service passwords and two-factor secrets encrypted
at rest in a local (or shared) database.

Sign in once; the session token is stored in ~/.passvault/token and
used by every other command until you log out.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	defer func() {
		if application != nil {
			_ = application.Close()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log := logger.New(cfg.Env)

	application, err = app.New(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.AppKey, application))
	return nil
}
