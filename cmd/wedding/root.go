package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/wedding/internal/wedding/app"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile string
}

// NewRootCommand creates the root command for the wedding CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "wedding",
		Short:         "Wedding invitations and RSVPs",
		Long:          "Runs the wedding RSVP service and its maintenance tasks.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", app.DefaultEnvFile, "dotenv file loaded before reading the environment")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewAdminCommand(opts))
	cmd.AddCommand(NewHousekeepCommand(opts))

	return cmd
}

// setup loads the config and puts a logger on ctx.
func (o *RootOptions) setup(ctx context.Context) (app.Config, *slog.Logger, context.Context, error) {
	cfg, err := app.LoadConfig(o.EnvFile)
	if err != nil {
		return app.Config{}, nil, ctx, err
	}
	logger := app.NewLogger(cfg)
	return cfg, logger, slogx.WithContext(ctx, logger), nil
}

// openDatabase opens the configured database with migrations applied.
func openDatabase(cfg app.Config) (*sqlite.Store, error) {
	return app.OpenDatabase(cfg.DatabaseFile)
}
