// Package main is the playercompare entry point: an HTTP API server and an interactive CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-player-compare/internal/logging"
)

const (
	appVersion  = "dev"
	serviceName = "nba-player-compare"
)

var rootCmd = &cobra.Command{
	Use:           "playercompare",
	Short:         "Compare two NBA players' seasons",
	Long:          "playercompare looks up two players' regular-season rows on stats.nba.com and reports who led in points, rebounds, assists and field-goal percentage.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(out io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
		Output:  out,
	})
}
