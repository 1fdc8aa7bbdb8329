package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/keitarosync/internal/client/api"
	"github.com/iudanet/keitarosync/internal/client/auth"
	"github.com/iudanet/keitarosync/internal/client/iocli"
	"github.com/iudanet/keitarosync/internal/client/storage/boltdb"
)

// VersionInfo сведения о сборке, задаются через ldflags
type VersionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// RootOptions глобальные флаги CLI
type RootOptions struct {
	ServerURL string
	DBPath    string
	Timeout   time.Duration
}

// NewRootCommand создает корневую команду keitarosync
func NewRootCommand(info VersionInfo) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "keitarosync",
		Short:         "Operator CLI for the Keitaro offer sync server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ServerURL, "server", envOr("KEITAROSYNC_SERVER", "http://localhost:8080"), "server URL")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", envOr("KEITAROSYNC_DB", "keitarosync-client.db"), "path to local session database")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", api.DefaultTimeout, "HTTP request timeout")

	var (
		username  string
		passwords Passwords
	)
	login := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(ctx context.Context, c *Cli, _ []string) error {
			return c.runLogin(ctx, username, passwords)
		}),
	}
	login.Flags().StringVarP(&username, "username", "u", "", "operator name (prompted when empty)")
	login.Flags().StringVar(&passwords.FromFile, "password-file", "", "read the password from a file")

	var assign AssignOptions
	assignCmd := &cobra.Command{
		Use:   "assign <flow-id>",
		Short: "Add or change an offer assignment on a flow",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(ctx context.Context, c *Cli, args []string) error {
			return c.runAssign(ctx, args[0], assign)
		}),
	}
	assignCmd.Flags().Int64Var(&assign.OfferID, "offer", 0, "tracker offer id (required)")
	assignCmd.Flags().IntVar(&assign.Share, "share", 0, "traffic share, not negative")
	assignCmd.Flags().StringVar(&assign.State, "state", "", "assignment state (default pending_add)")
	assignCmd.Flags().BoolVar(&assign.Pinned, "pinned", false, "keep the offer out of automatic rotation")

	cmd.AddCommand(
		login,
		&cobra.Command{
			Use:   "logout",
			Short: "Delete the local session",
			Args:  cobra.NoArgs,
			RunE: withSession(opts, func(ctx context.Context, c *Cli, _ []string) error {
				return c.runLogout(ctx)
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show authentication status",
			Args:  cobra.NoArgs,
			RunE: withSession(opts, func(ctx context.Context, c *Cli, _ []string) error {
				return c.runStatus(ctx)
			}),
		},
		&cobra.Command{
			Use:   "campaigns",
			Short: "List tracker campaigns",
			Args:  cobra.NoArgs,
			RunE: withSession(opts, func(ctx context.Context, c *Cli, _ []string) error {
				return c.runCampaigns(ctx)
			}),
		},
		&cobra.Command{
			Use:   "sync <campaign-id>",
			Short: "Reconcile a campaign's flows and offers with the tracker",
			Args:  cobra.ExactArgs(1),
			RunE: withSession(opts, func(ctx context.Context, c *Cli, args []string) error {
				return c.runSync(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "assignments <flow-id>",
			Short: "List local offer assignments of a flow",
			Args:  cobra.ExactArgs(1),
			RunE: withSession(opts, func(ctx context.Context, c *Cli, args []string) error {
				return c.runAssignments(ctx, args[0])
			}),
		},
		assignCmd,
		&cobra.Command{
			Use:   "push <flow-id>",
			Short: "Send a flow's pending assignments to the tracker",
			Args:  cobra.ExactArgs(1),
			RunE: withSession(opts, func(ctx context.Context, c *Cli, args []string) error {
				return c.runPush(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:         "version",
			Short:       "Show version information",
			Args:        cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "keitarosync client\n")
				_, _ = fmt.Fprintf(out, "Version:    %s\n", info.Version)
				_, _ = fmt.Fprintf(out, "Build Date: %s\n", info.BuildDate)
				_, _ = fmt.Fprintf(out, "Git Commit: %s\n", info.GitCommit)
			},
		},
	)

	return cmd
}

// withSession открывает локальную БД сессий на время выполнения команды
func withSession(opts *RootOptions, run func(ctx context.Context, c *Cli, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		store, err := boltdb.New(cmd.Context(), opts.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open local database: %w", err)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close local database: %w", closeErr)
			}
		}()

		apiClient := api.NewClient(opts.ServerURL, opts.Timeout)
		authService := auth.NewService(apiClient, store, opts.ServerURL)
		c := New(iocli.NewStdio(cmd.InOrStdin(), cmd.OutOrStdout()), apiClient, authService, opts.ServerURL)

		return run(cmd.Context(), c, args)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
