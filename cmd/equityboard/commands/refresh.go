package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwyoon/equityboard/internal/aggregator"
	"github.com/jwyoon/equityboard/internal/store"
	"github.com/jwyoon/equityboard/pkg/database"
	"github.com/jwyoon/equityboard/pkg/logger"
	"github.com/jwyoon/equityboard/pkg/redis"
)

// refreshCmd represents the refresh command
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Warm the equity cache",
	Long: `Reloads the latest snapshot from the aggregation store and writes
it through to Redis.

Exits non-zero when the reload fails, so the command is safe to run
from an external scheduler.

Example:
  go run ./cmd/equityboard refresh`,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Connect to the aggregation store and Redis
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	cache := redis.NewCache(redisClient, "equityboard")

	// 4. Reload the equity store
	repo := aggregator.NewRepository(db.Pool)
	equityStore := store.New(repo, cache, log, cfg.Cache.EquityTTL, cfg.Cache.HistoryTTL)

	if err := equityStore.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("refresh equity store: %w", err)
	}

	equities, err := equityStore.Equities(cmd.Context())
	if err != nil {
		return fmt.Errorf("read refreshed equity set: %w", err)
	}

	fmt.Printf("✅ Cache warmed: %d equities\n", len(equities))
	return nil
}
