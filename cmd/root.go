package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rightsteps/internal/app"
	"rightsteps/internal/config"
)

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// NewRootCmd builds the rightsteps command tree.
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "rightsteps",
		Short: "Rightsteps marketplace AI search",
		Long: `Rightsteps answers parents' questions about courses and tutors with an AI
suggestion grounded in the marketplace catalog, and serves the catalog over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true, // Execute prints the error once

		Run: func(cmd *cobra.Command, args []string) {
			// If no subcommand is given, print help.
			_ = cmd.Help()
		},
		// PersistentPreRunE runs before any subcommand's RunE
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.ConfigureLogging(); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			appInstance, err := app.NewApp(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store the app instance in the command's context
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appInstance, err := GetAppFromContext(cmd.Context()); err == nil {
				appInstance.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ./config.yaml)")

	rootCmd.AddCommand(
		newServeCmd(),
		newSearchCmd(),
		newCoursesCmd(),
		newTutorsCmd(),
		newHistoryCmd(),
		newCostCmd(),
		newDoctorCmd(),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetAppFromContext retrieves the app instance stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		// This should not happen if PersistentPreRunE ran successfully
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}
