package commands

import (
	"github.com/spf13/cobra"

	"github.com/jwyoon/equityboard/pkg/config"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "equityboard",
	Short: "Equityboard - equity universe dashboard backend",
	Long: `Equityboard Unified CLI

Read-side backend over the canonical equity aggregation store.
Serves the universe grid, per-equity analysis and trends, and the
data integrity report.

Usage:
  go run ./cmd/equityboard [command]

Examples:
  go run ./cmd/equityboard api
  go run ./cmd/equityboard report
  go run ./cmd/equityboard resolve AAPL --name "Apple Inc." --mics XNAS
  go run ./cmd/equityboard refresh`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration with CLI overrides applied
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}
