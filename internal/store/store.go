// Package store holds the in-process working set of canonical equities.
// It layers an expiring in-memory cache over the aggregation store, with
// Redis as an optional second tier, and collapses concurrent refreshes
// of the same key into a single load.
package store

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jwyoon/equityboard/internal/equity"
	"github.com/jwyoon/equityboard/pkg/logger"
	"github.com/jwyoon/equityboard/pkg/redis"
)

// Source is the upstream read interface, implemented by
// aggregator.Repository.
type Source interface {
	ListLatest(ctx context.Context) ([]equity.CanonicalEquity, error)
	HistoryByFIGI(ctx context.Context, figi string) ([]equity.CanonicalEquity, error)
}

// Store caches the equity set and per-equity histories
type Store struct {
	source     Source
	cache      *redis.Cache
	log        *logger.Logger
	equityTTL  time.Duration
	historyTTL time.Duration

	group singleflight.Group

	mu        sync.RWMutex
	equities  []equity.CanonicalEquity
	loadedAt  time.Time
	histories map[string]historyEntry

	// test hook
	now func() time.Time
}

type historyEntry struct {
	snapshots []equity.CanonicalEquity
	loadedAt  time.Time
}

// Snapshot pairs the equity set with the time it was loaded. Consumers
// that derive state from the set (the quick-filter index) key it on
// LoadedAt, so the two must always come from the same load.
type Snapshot struct {
	Equities []equity.CanonicalEquity
	LoadedAt time.Time
}

// New creates a store over the given source. The Redis cache may be a
// disabled no-op client.
func New(source Source, cache *redis.Cache, log *logger.Logger, equityTTL, historyTTL time.Duration) *Store {
	return &Store{
		source:     source,
		cache:      cache,
		log:        log,
		equityTTL:  equityTTL,
		historyTTL: historyTTL,
		histories:  make(map[string]historyEntry),
		now:        time.Now,
	}
}

// Equities returns the cached equity set, reloading it when expired.
// Concurrent callers during a reload share one upstream read.
func (s *Store) Equities(ctx context.Context) ([]equity.CanonicalEquity, error) {
	snap, err := s.Snapshot(ctx)
	return snap.Equities, err
}

// Snapshot returns the cached equity set together with its load time,
// taken under one lock so the stamp always matches the set.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	s.mu.RLock()
	if s.equities != nil && s.now().Sub(s.loadedAt) < s.equityTTL {
		snap := Snapshot{Equities: s.equities, LoadedAt: s.loadedAt}
		s.mu.RUnlock()
		return snap, nil
	}
	s.mu.RUnlock()

	result, err, _ := s.group.Do("equities", func() (interface{}, error) {
		return s.loadEquities(ctx)
	})
	if err != nil {
		// Serve the stale set if one exists; the next caller retries
		s.mu.RLock()
		defer s.mu.RUnlock()
		if s.equities != nil {
			s.log.WithError(err).Warn("Equity refresh failed, serving stale set")
			return Snapshot{Equities: s.equities, LoadedAt: s.loadedAt}, nil
		}
		return Snapshot{}, err
	}
	return result.(Snapshot), nil
}

// History returns the snapshot history for one FIGI, oldest first,
// reloading it when expired.
func (s *Store) History(ctx context.Context, figi string) ([]equity.CanonicalEquity, error) {
	s.mu.RLock()
	entry, ok := s.histories[figi]
	s.mu.RUnlock()
	if ok && s.now().Sub(entry.loadedAt) < s.historyTTL {
		return entry.snapshots, nil
	}

	result, err, _ := s.group.Do("history:"+figi, func() (interface{}, error) {
		return s.loadHistory(ctx, figi)
	})
	if err != nil {
		return nil, err
	}
	return result.([]equity.CanonicalEquity), nil
}

// Refresh forces a reload of the equity set regardless of expiry
func (s *Store) Refresh(ctx context.Context) error {
	_, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		return s.refreshEquities(ctx)
	})
	return err
}

// LoadedAt reports when the current equity set was loaded; the zero
// time means nothing is loaded yet.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *Store) loadEquities(ctx context.Context) (Snapshot, error) {
	// Another caller may have finished a load between the expiry check
	// and entering the flight group
	s.mu.RLock()
	if s.equities != nil && s.now().Sub(s.loadedAt) < s.equityTTL {
		snap := Snapshot{Equities: s.equities, LoadedAt: s.loadedAt}
		s.mu.RUnlock()
		return snap, nil
	}
	s.mu.RUnlock()

	var cached []equity.CanonicalEquity
	hit, err := s.cache.Get(ctx, redis.EquitySetKey(), &cached)
	if err != nil {
		s.log.WithError(err).Warn("Equity set cache read failed")
	}
	if hit {
		return s.store(cached), nil
	}

	return s.refreshEquities(ctx)
}

func (s *Store) refreshEquities(ctx context.Context) (Snapshot, error) {
	start := s.now()
	equities, err := s.source.ListLatest(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	if err := s.cache.Set(ctx, redis.EquitySetKey(), equities, s.equityTTL); err != nil {
		s.log.WithError(err).Warn("Equity set cache write failed")
	}

	snap := s.store(equities)
	s.log.WithFields(map[string]interface{}{
		"equities":    len(equities),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Equity set loaded")
	return snap, nil
}

func (s *Store) loadHistory(ctx context.Context, figi string) ([]equity.CanonicalEquity, error) {
	s.mu.RLock()
	entry, ok := s.histories[figi]
	s.mu.RUnlock()
	if ok && s.now().Sub(entry.loadedAt) < s.historyTTL {
		return entry.snapshots, nil
	}

	var cached []equity.CanonicalEquity
	hit, err := s.cache.Get(ctx, redis.HistoryKey(figi), &cached)
	if err != nil {
		s.log.WithError(err).Warn("History cache read failed")
	}
	if !hit {
		cached, err = s.source.HistoryByFIGI(ctx, figi)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, redis.HistoryKey(figi), cached, s.historyTTL); err != nil {
			s.log.WithError(err).Warn("History cache write failed")
		}
	}

	s.mu.Lock()
	s.histories[figi] = historyEntry{snapshots: cached, loadedAt: s.now()}
	s.mu.Unlock()
	return cached, nil
}

func (s *Store) store(equities []equity.CanonicalEquity) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equities = equities
	s.loadedAt = s.now()
	return Snapshot{Equities: equities, LoadedAt: s.loadedAt}
}
