// Package cli exposes the planner as the studyplanner command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"study-planner/internal/app"
	"study-planner/internal/config"
)

// NewRootCmd builds the command tree. Every call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:   "studyplanner",
		Short: "Personal study planner for classes, routine and deadlines",
		Long: `studyplanner keeps a semester's classes, a weekly routine, study blocks
and due-dated tasks in one database.

Run "studyplanner serve" for the Telegram bot, HTTP API and reminders, or use
the other commands for a quick look from the terminal.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path or URL (overrides DATABASE_URL)")

	open := func(ctx context.Context) (*app.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if dbPath != "" {
			cfg.DatabaseURL = dbPath
		}
		return app.New(ctx, cfg)
	}

	rootCmd.AddCommand(
		newServeCmd(open),
		newDayCmd(open),
		newWeekCmd(open),
		newDashboardCmd(open),
		newUpcomingCmd(open),
		newExtractCmd(open),
		newLoadCmd(open),
	)
	return rootCmd
}

type openFunc func(ctx context.Context) (*app.App, error)

// withApp opens the app for the duration of fn.
func withApp(cmd *cobra.Command, open openFunc, fn func(a *app.App) error) error {
	a, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
