package commands

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jwyoon/equityboard/internal/aggregator"
	"github.com/jwyoon/equityboard/internal/report"
	"github.com/jwyoon/equityboard/pkg/database"
	"github.com/jwyoon/equityboard/pkg/logger"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the data integrity report",
	Long: `Builds the data integrity report over the latest snapshot and
renders it to the terminal.

The report covers field coverage, consistency checks, market cap and
completeness distributions, and the sector/field coverage heatmap.

Example:
  go run ./cmd/equityboard report
  go run ./cmd/equityboard report --plain > report.md`,
	RunE: runReport,
}

var (
	reportPlain bool
)

func init() {
	rootCmd.AddCommand(reportCmd)

	// Flags
	reportCmd.Flags().BoolVar(&reportPlain, "plain", false, "emit raw markdown without terminal styling")
}

func runReport(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Connect to the aggregation store
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	// 4. Load the latest snapshot and build the report
	repo := aggregator.NewRepository(db.Pool)
	equities, err := repo.ListLatest(cmd.Context())
	if err != nil {
		return fmt.Errorf("load latest snapshot: %w", err)
	}

	log.WithField("equities", len(equities)).Info("Building integrity report")

	md, err := report.Markdown(report.Build(equities))
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if reportPlain {
		fmt.Println(md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return fmt.Errorf("create terminal renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	fmt.Print(out)
	return nil
}
