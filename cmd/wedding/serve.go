package main

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/wedding/internal/wedding/app"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API and the housekeeping loop until SIGINT or SIGTERM.

Requires WEDDING_SESSION_SECRET. Pending migrations are applied on start.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, ctx, err := rootOpts.setup(cmd.Context())
			if err != nil {
				return err
			}

			application, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}
}
