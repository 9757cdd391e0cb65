package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/wedding/internal/wedding/service"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed --file seed.yaml",
		Short: "Load settings, meal options, questions and templates from YAML",
		Long: `Load wedding settings, meal options, custom questions and email
templates from a YAML file.

Entries are matched by name, so running the same file again updates
them in place. The whole file is applied in one transaction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file is required")
			}

			cfg, _, ctx, err := rootOpts.setup(cmd.Context())
			if err != nil {
				return err
			}

			seed, err := service.LoadSeedFile(file)
			if err != nil {
				return err
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			rep, err := (&service.SeedService{Store: db}).Apply(ctx, seed)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s: %d created, %d updated, settings %t\n",
				file, rep.Created, rep.Updated, rep.Settings)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed file (YAML)")
	return cmd
}
