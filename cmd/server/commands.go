package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iudanet/keitarosync/internal/crypto"
	"github.com/iudanet/keitarosync/internal/server/app"
	"github.com/iudanet/keitarosync/internal/validation"
)

// withApp выполняет run с собранными зависимостями и освобождает их
func withApp(ctx context.Context, opts *rootOptions, run func(a *app.App) error) error {
	a, err := loadApp(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			a.Logger.Error("failed to release resources", slog.Any("error", closeErr))
		}
	}()
	return run(a)
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withApp(ctx, opts, func(a *app.App) error {
				version, err := a.Store.SchemaVersion(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "database is at schema version %d\n", version)
				return nil
			})
		},
	}
}

func newSyncCommand(opts *rootOptions) *cobra.Command {
	var campaignID int64
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile one campaign's flows and offer assignments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if campaignID <= 0 {
				return errors.New("--campaign must be a positive tracker campaign id")
			}
			ctx := cmd.Context()
			return withApp(ctx, opts, func(a *app.App) error {
				res, err := a.Service.SyncCampaign(ctx, campaignID)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if res.NoResult {
					_, _ = fmt.Fprintln(out, "tracker returned no flows, nothing changed")
					return nil
				}
				_, _ = fmt.Fprintf(out, "flows: %d (inserted %d, skipped %d)\n",
					len(res.Flows), res.FlowsInserted, res.FlowsSkipped)
				_, _ = fmt.Fprintf(out, "assignments: added %d, updated %d, removed %d, restored %d, unchanged %d\n",
					res.Assignments.Added, res.Assignments.Updated, res.Assignments.Removed,
					res.Assignments.Restored, res.Assignments.Unchanged)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&campaignID, "campaign", 0, "tracker campaign id")
	return cmd
}

func newRefreshOffersCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-offers",
		Short: "Import tracker offers and refresh their names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withApp(ctx, opts, func(a *app.App) error {
				res, err := a.Service.RefreshOffers(ctx)
				if err != nil {
					return err
				}
				if res.NoResult {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "tracker returned no offers, nothing changed")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "offers: %d (inserted %d, renamed %d)\n",
					len(res.Offers), res.Inserted, res.Renamed)
				return nil
			})
		},
	}
}

func newHashPasswordCommand() *cobra.Command {
	var fromStdin bool
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print an argon2id hash for an operator password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), fromStdin)
			if err != nil {
				return err
			}
			if err := validation.ValidateOperatorPassword(password); err != nil {
				return err
			}
			hash, err := crypto.HashPassword(password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the password from stdin instead of prompting")
	return cmd
}

// readPassword читает пароль с терминала без эха или первую строку stdin
func readPassword(in io.Reader, prompt io.Writer, fromStdin bool) (string, error) {
	if f, ok := in.(*os.File); ok && !fromStdin && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(prompt, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
