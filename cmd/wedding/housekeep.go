package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/wedding/internal/wedding/service"
)

// NewHousekeepCommand creates the housekeep command.
func NewHousekeepCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "housekeep",
		Short: "Delete expired admin sessions once",
		Long: `Delete expired admin sessions and exit. A running server does this
every WEDDING_HOUSEKEEPING_INTERVAL; use this for cron driven setups.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, ctx, err := rootOpts.setup(cmd.Context())
			if err != nil {
				return err
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := service.NewHousekeepingService(db, logger, cfg.HousekeepingInterval).RunOnce(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d expired sessions\n", n)
			return nil
		},
	}
}
