package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iudanet/keitarosync/internal/config"
	"github.com/iudanet/keitarosync/internal/logging"
	"github.com/iudanet/keitarosync/internal/server/app"
)

type rootOptions struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "keitarosync-server",
		Short:         "Keeps local offer assignments in sync with a Keitaro tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML config (env overrides apply)")

	cmd.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newSyncCommand(opts),
		newRefreshOffersCommand(opts),
		newHashPasswordCommand(),
		newVersionCommand(),
	)

	return cmd
}

// loadApp читает конфигурацию, настраивает логгер и собирает зависимости
func loadApp(ctx context.Context, opts *rootOptions) (*app.App, error) {
	cfg, err := config.LoadFromEnv(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.Setup(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "failed to initialize", slog.Any("error", err))
		return nil, err
	}
	return a, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "keitarosync server\n")
			_, _ = fmt.Fprintf(out, "Version:    %s\n", Version)
			_, _ = fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
			_, _ = fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
		},
	}
}
