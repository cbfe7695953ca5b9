package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jwyoon/equityboard/pkg/logger"
	"github.com/jwyoon/equityboard/pkg/redis"
)

// resolveCacheTTL matches the upstream's own caching horizon
const resolveCacheTTL = time.Hour

// ResolveHandler handles ad-hoc symbol resolution
type ResolveHandler struct {
	resolver Resolver
	logoURL  func(logoid string) string
	cache    *redis.Cache
	logger   *logger.Logger
}

// NewResolveHandler creates a new resolve handler
func NewResolveHandler(resolver Resolver, logoURL func(string) string, cache *redis.Cache, log *logger.Logger) *ResolveHandler {
	return &ResolveHandler{
		resolver: resolver,
		logoURL:  logoURL,
		cache:    cache,
		logger:   log,
	}
}

// ResolveResponse is the resolution result
type ResolveResponse struct {
	Resolved string `json:"resolved"`
	LogoURL  string `json:"logo_url,omitempty"`
}

// GetResolve resolves a ticker against the scanner
// GET /api/resolve?symbol=&name=&mics=
func (h *ResolveHandler) GetResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	symbol := strings.TrimSpace(r.URL.Query().Get("symbol"))
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if symbol == "" && name == "" {
		respondError(w, http.StatusBadRequest, "symbol or name is required")
		return
	}

	var mics []string
	if raw := r.URL.Query().Get("mics"); raw != "" {
		for _, mic := range strings.Split(raw, ",") {
			if mic = strings.TrimSpace(mic); mic != "" {
				mics = append(mics, mic)
			}
		}
	}

	cacheKey := redis.ResolvedSymbolKey(symbol + "|" + name + "|" + strings.Join(mics, ","))
	var cached ResolveResponse
	if hit, err := h.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		respondData(w, http.StatusOK, cached)
		return
	}

	resolved := h.resolver.Resolve(ctx, symbol, name, mics)
	response := ResolveResponse{Resolved: resolved}
	if logoid := h.lookupLogo(ctx, resolved); logoid != "" {
		response.LogoURL = h.logoURL(logoid)
	}

	if err := h.cache.Set(ctx, cacheKey, response, resolveCacheTTL); err != nil {
		h.logger.WithError(err).Warn("Resolution cache write failed")
	}

	respondData(w, http.StatusOK, response)
}

// lookupLogo returns the logo identifier for a resolved symbol, cached
// under its own key so different queries resolving to the same symbol
// share one upstream lookup
func (h *ResolveHandler) lookupLogo(ctx context.Context, resolved string) string {
	key := redis.LogoKey(resolved)

	var logoid string
	if hit, err := h.cache.Get(ctx, key, &logoid); err == nil && hit {
		return logoid
	}

	logoid = h.resolver.FetchLogo(ctx, resolved)
	if logoid == "" {
		return ""
	}

	if err := h.cache.Set(ctx, key, logoid, resolveCacheTTL); err != nil {
		h.logger.WithError(err).Warn("Logo cache write failed")
	}
	return logoid
}
