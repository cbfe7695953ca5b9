package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwyoon/equityboard/internal/aggregator"
	"github.com/jwyoon/equityboard/internal/api"
	"github.com/jwyoon/equityboard/internal/api/handlers"
	"github.com/jwyoon/equityboard/internal/external/scanner"
	"github.com/jwyoon/equityboard/internal/scheduler"
	"github.com/jwyoon/equityboard/internal/scheduler/jobs"
	"github.com/jwyoon/equityboard/internal/store"
	"github.com/jwyoon/equityboard/pkg/database"
	"github.com/jwyoon/equityboard/pkg/httputil"
	"github.com/jwyoon/equityboard/pkg/logger"
	"github.com/jwyoon/equityboard/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

This command:
- Serves the universe grid with quick filtering
- Serves per-equity analysis and trends
- Serves the data integrity report
- Keeps the equity cache warm on a cron schedule

Endpoints:
  GET  /health                         - Health check
  GET  /api/universe                   - Universe grid (optional ?q=)
  GET  /api/equities/{figi}/analysis   - Single-equity analysis
  GET  /api/equities/{figi}/trends     - Snapshot history charts
  GET  /api/reports/integrity          - Data integrity report
  GET  /api/resolve                    - Ad-hoc symbol resolution

Example:
  go run ./cmd/equityboard api
  go run ./cmd/equityboard api --port 8090`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (defaults to PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Equityboard API Server ===")

	// 1. Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to the aggregation store
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	log.Info("Connected to database")

	// 4. Connect to Redis (no-op client when disabled)
	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	cache := redis.NewCache(redisClient, "equityboard")

	// 5. Create the equity store over the latest snapshot
	repo := aggregator.NewRepository(db.Pool)
	equityStore := store.New(repo, cache, log, cfg.Cache.EquityTTL, cfg.Cache.HistoryTTL)

	// 6. Create the scanner client
	httpClient := httputil.NewWithTimeout(log, cfg.Scanner.Timeout).
		WithRateLimit(cfg.Scanner.RateLimit)
	scannerClient := scanner.NewClient(httpClient, log, cfg.Scanner.BaseURL)

	// 7. Create handlers
	equityHandler := handlers.NewEquityHandler(equityStore, scannerClient, scanner.LogoURL, log)
	reportHandler := handlers.NewReportHandler(equityStore, log)
	resolveHandler := handlers.NewResolveHandler(scannerClient, scanner.LogoURL, cache, log)

	// 8. Create router and server
	router := api.NewRouter(equityHandler, reportHandler, resolveHandler, log)
	server := api.New(cfg, log, router)

	// 9. Schedule the background cache refresh
	sched := scheduler.New(log)
	if err := sched.AddJob(jobs.NewRefreshJob(equityStore, cfg.Cache.RefreshSpec, log)); err != nil {
		return fmt.Errorf("schedule refresh job: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	// 10. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  GET  /api/universe")
	fmt.Println("  GET  /api/equities/{figi}/analysis")
	fmt.Println("  GET  /api/equities/{figi}/trends")
	fmt.Println("  GET  /api/reports/integrity")
	fmt.Println("  GET  /api/resolve")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
