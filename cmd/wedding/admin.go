package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/wedding/internal/wedding/service"
	"github.com/aussiebroadwan/wedding/pkg/cryptox"
)

// NewAdminCommand groups the admin account commands.
func NewAdminCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}

	cmd.AddCommand(newAdminCreateCommand(rootOpts))
	cmd.AddCommand(newAdminSetActiveCommand(rootOpts, "disable", false))
	cmd.AddCommand(newAdminSetActiveCommand(rootOpts, "enable", true))

	return cmd
}

func newAdminCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "create --username NAME --email ADDRESS",
		Short: "Create an administrator",
		Long: `Create an active administrator.

Without --password the password is read from the first line of stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = readLine(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}

			return withAdmins(cmd.Context(), rootOpts, func(ctx context.Context, admins *service.AdminService) error {
				user, err := admins.CreateAdmin(ctx, username, email, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", user.Username, user.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (read from stdin when empty)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAdminSetActiveCommand(rootOpts *RootOptions, verb string, active bool) *cobra.Command {
	short := "Re-enable an administrator"
	if !active {
		short = "Disable an administrator and end their sessions"
	}

	return &cobra.Command{
		Use:   verb + " USERNAME",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmins(cmd.Context(), rootOpts, func(ctx context.Context, admins *service.AdminService) error {
				if err := admins.SetActive(ctx, args[0], active); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%sd admin %s\n", verb, args[0])
				return nil
			})
		},
	}
}

// withAdmins runs fn with an AdminService over the configured database.
// Only the hasher is wired, which is all account management needs.
func withAdmins(ctx context.Context, rootOpts *RootOptions, fn func(context.Context, *service.AdminService) error) error {
	cfg, _, ctx, err := rootOpts.setup(ctx)
	if err != nil {
		return err
	}

	pepper, err := cryptox.LoadPepper(cfg.PepperFile)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, &service.AdminService{
		Store:  db,
		Hasher: cryptox.NewPasswordHasher(pepper),
		Issuer: cfg.Issuer,
	})
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("no password given")
	}
	return line, nil
}
