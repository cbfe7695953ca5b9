// Package jobs holds the concrete scheduled jobs.
package jobs

import (
	"context"

	"github.com/jwyoon/equityboard/internal/store"
	"github.com/jwyoon/equityboard/pkg/logger"
)

// RefreshJob warms the equity store so API reads never pay the reload
// cost. The quick-filter index rebuilds lazily off the refreshed set.
type RefreshJob struct {
	store    *store.Store
	schedule string
	logger   *logger.Logger
}

// NewRefreshJob creates the store refresh job with the configured cron
// expression
func NewRefreshJob(s *store.Store, schedule string, log *logger.Logger) *RefreshJob {
	return &RefreshJob{store: s, schedule: schedule, logger: log}
}

func (j *RefreshJob) Name() string {
	return "store_refresh"
}

func (j *RefreshJob) Schedule() string {
	return j.schedule
}

func (j *RefreshJob) Run(ctx context.Context) error {
	if err := j.store.Refresh(ctx); err != nil {
		return err
	}
	j.logger.Info("Equity store refreshed")
	return nil
}
