package scheduler

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwyoon/equityboard/pkg/logger"
)

type stubJob struct {
	name     string
	schedule string
	runs     atomic.Int32
	err      error
}

func (j *stubJob) Name() string     { return j.name }
func (j *stubJob) Schedule() string { return j.schedule }

func (j *stubJob) Run(ctx context.Context) error {
	j.runs.Add(1)
	return j.err
}

func testScheduler() *Scheduler {
	s := New(logger.NewWriter(io.Discard, "error"))
	s.retryDelay = time.Millisecond
	return s
}

func waitForResults(t *testing.T, s *Scheduler, name string) []Result {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if results := s.Results(name); len(results) > 0 {
			return results
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("no results recorded for job %s", name)
	return nil
}

func TestAddJobRejectsDuplicates(t *testing.T) {
	s := testScheduler()

	require.NoError(t, s.AddJob(&stubJob{name: "refresh", schedule: "@hourly"}))

	err := s.AddJob(&stubJob{name: "refresh", schedule: "@daily"})
	assert.ErrorContains(t, err, "already exists")
}

func TestAddJobRejectsBadSchedule(t *testing.T) {
	s := testScheduler()

	err := s.AddJob(&stubJob{name: "broken", schedule: "not a cron spec"})
	assert.ErrorContains(t, err, "failed to schedule")
}

func TestRunJobRecordsSuccess(t *testing.T) {
	s := testScheduler()
	job := &stubJob{name: "refresh", schedule: "@hourly"}
	require.NoError(t, s.AddJob(job))

	require.NoError(t, s.RunJob("refresh"))

	results := waitForResults(t, s, "refresh")
	assert.True(t, results[0].Success)
	assert.Empty(t, results[0].Error)
	assert.Equal(t, int32(1), job.runs.Load())
}

func TestRunJobRetriesAndRecordsFailure(t *testing.T) {
	s := testScheduler()
	job := &stubJob{name: "refresh", schedule: "@hourly", err: errors.New("store unavailable")}
	require.NoError(t, s.AddJob(job))

	require.NoError(t, s.RunJob("refresh"))

	results := waitForResults(t, s, "refresh")
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].Error, "store unavailable")
	// Initial attempt plus the configured retries
	assert.Equal(t, int32(4), job.runs.Load())
}

func TestRunJobUnknownName(t *testing.T) {
	s := testScheduler()
	assert.ErrorContains(t, s.RunJob("missing"), "not found")
}
