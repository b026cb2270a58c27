package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	appcompare "github.com/preston-bernstein/nba-player-compare/internal/app/compare"
	appplayers "github.com/preston-bernstein/nba-player-compare/internal/app/players"
	appseasons "github.com/preston-bernstein/nba-player-compare/internal/app/seasons"
	"github.com/preston-bernstein/nba-player-compare/internal/cli"
	"github.com/preston-bernstein/nba-player-compare/internal/config"
	"github.com/preston-bernstein/nba-player-compare/internal/metrics"
	"github.com/preston-bernstein/nba-player-compare/internal/server"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two players interactively in the terminal",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	logger := newLogger(cmd.ErrOrStderr())
	provider := server.NewProvider(cfg, logger, metrics.NewRecorder())
	pipeline := appcompare.NewPipeline(appplayers.NewService(provider), appseasons.NewService(provider), logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), pipeline, logger).Run(ctx)
}
