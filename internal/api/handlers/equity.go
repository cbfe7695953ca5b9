package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/jwyoon/equityboard/internal/analysis"
	"github.com/jwyoon/equityboard/internal/equity"
	"github.com/jwyoon/equityboard/internal/search"
	"github.com/jwyoon/equityboard/internal/store"
	"github.com/jwyoon/equityboard/internal/trends"
	"github.com/jwyoon/equityboard/internal/universe"
	"github.com/jwyoon/equityboard/pkg/logger"
)

// Resolver is the symbol resolution surface the analysis page needs,
// implemented by scanner.Client.
type Resolver interface {
	Resolve(ctx context.Context, symbol, name string, mics []string) string
	FetchLogo(ctx context.Context, resolved string) string
}

// EquityHandler handles universe and per-equity API endpoints
// SSOT: equity API handlers live in this struct only
type EquityHandler struct {
	store    *store.Store
	resolver Resolver
	logoURL  func(logoid string) string
	logger   *logger.Logger

	// quick-filter index, rebuilt when the store reloads
	mu        sync.Mutex
	index     *search.Index
	indexedAt time.Time
}

// NewEquityHandler creates a new equity handler
func NewEquityHandler(s *store.Store, resolver Resolver, logoURL func(string) string, log *logger.Logger) *EquityHandler {
	return &EquityHandler{
		store:    s,
		resolver: resolver,
		logoURL:  logoURL,
		logger:   log,
	}
}

// GetUniverse returns the universe grid, optionally quick-filtered
// GET /api/universe?q=
func (h *EquityHandler) GetUniverse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snap, err := h.store.Snapshot(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load equity set")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve universe")
		return
	}

	grid := universe.BuildGrid(snap.Equities)

	if q := r.URL.Query().Get("q"); q != "" {
		index, err := h.searchIndex(snap)
		if err != nil {
			h.logger.WithError(err).Error("Failed to build search index")
			respondError(w, http.StatusInternalServerError, "Search unavailable")
			return
		}
		positions, err := index.Query(q)
		if err != nil {
			h.logger.WithError(err).WithField("query", q).Error("Quick filter failed")
			respondError(w, http.StatusInternalServerError, "Search unavailable")
			return
		}

		filtered := make([]universe.Row, 0, len(positions))
		for _, pos := range positions {
			if pos >= 0 && pos < len(grid.Rows) {
				filtered = append(filtered, grid.Rows[pos])
			}
		}
		grid.Rows = filtered
	}

	respondData(w, http.StatusOK, grid)
}

// GetAnalysis returns the detail payload for one equity
// GET /api/equities/{figi}/analysis
func (h *EquityHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	figi := mux.Vars(r)["figi"]

	eq, err := h.findEquity(ctx, figi)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load equity set")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve equity")
		return
	}
	if eq == nil {
		respondError(w, http.StatusNotFound, "Select an equity from the universe to view its analysis")
		return
	}

	var symbol, name string
	if eq.Identity.Symbol != nil {
		symbol = *eq.Identity.Symbol
	}
	if eq.Identity.Name != nil {
		name = *eq.Identity.Name
	}

	resolved := h.resolver.Resolve(ctx, symbol, name, eq.Financials.MICs)
	logo := ""
	if logoid := h.resolver.FetchLogo(ctx, resolved); logoid != "" {
		logo = h.logoURL(logoid)
	}

	respondData(w, http.StatusOK, analysis.Build(eq, resolved, logo))
}

// GetTrends returns the history chart payload for one equity. An
// unknown FIGI yields empty series, not an error.
// GET /api/equities/{figi}/trends
func (h *EquityHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	figi := mux.Vars(r)["figi"]

	history, err := h.store.History(ctx, figi)
	if err != nil {
		h.logger.WithError(err).WithField("figi", figi).Error("Failed to load equity history")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve history")
		return
	}

	respondData(w, http.StatusOK, trends.BuildPayload(trends.BuildSeries(history)))
}

// findEquity scans the cached set for a FIGI; nil when absent
func (h *EquityHandler) findEquity(ctx context.Context, figi string) (*equity.CanonicalEquity, error) {
	equities, err := h.store.Equities(ctx)
	if err != nil {
		return nil, err
	}
	for i := range equities {
		if f := equities[i].Identity.ShareClassFIGI; f != nil && *f == figi {
			return &equities[i], nil
		}
	}
	return nil, nil
}

// searchIndex returns the quick-filter index for one snapshot,
// rebuilding it when the snapshot's load time differs from the cached
// index's. The stamp comes from the snapshot itself, never re-read from
// the store, so a refresh landing mid-request cannot pair a stale index
// with a fresh stamp.
func (h *EquityHandler) searchIndex(snap store.Snapshot) (*search.Index, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index != nil && h.indexedAt.Equal(snap.LoadedAt) {
		return h.index, nil
	}

	index, err := search.Build(snap.Equities)
	if err != nil {
		return nil, err
	}
	if h.index != nil {
		h.index.Close()
	}
	h.index = index
	h.indexedAt = snap.LoadedAt
	return index, nil
}
