package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwyoon/equityboard/internal/external/scanner"
	"github.com/jwyoon/equityboard/pkg/httputil"
	"github.com/jwyoon/equityboard/pkg/logger"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve [symbol]",
	Short: "Resolve a ticker to EXCHANGE:SYMBOL",
	Long: `Resolves a ticker against the scanner API.

Resolution tries an exact symbol match first, then a name match, then
a fuzzy symbol match. When every tier fails the input symbol is
printed unchanged.

Example:
  go run ./cmd/equityboard resolve AAPL
  go run ./cmd/equityboard resolve AAPL --name "Apple Inc." --mics XNAS`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

var (
	resolveName string
	resolveMICs []string
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	// Flags
	resolveCmd.Flags().StringVar(&resolveName, "name", "", "company name for the name-match tier")
	resolveCmd.Flags().StringSliceVar(&resolveMICs, "mics", nil, "MIC codes used to narrow the scanned markets")
}

func runResolve(cmd *cobra.Command, args []string) error {
	var symbol string
	if len(args) > 0 {
		symbol = args[0]
	}
	if symbol == "" && resolveName == "" {
		return fmt.Errorf("a symbol argument or --name is required")
	}

	// 1. Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Create the scanner client
	httpClient := httputil.NewWithTimeout(log, cfg.Scanner.Timeout).
		WithRateLimit(cfg.Scanner.RateLimit)
	client := scanner.NewClient(httpClient, log, cfg.Scanner.BaseURL)

	// 4. Resolve and print
	resolved := client.Resolve(cmd.Context(), symbol, resolveName, resolveMICs)
	fmt.Println(resolved)

	if logoid := client.FetchLogo(cmd.Context(), resolved); logoid != "" {
		fmt.Println(scanner.LogoURL(logoid))
	}
	return nil
}
