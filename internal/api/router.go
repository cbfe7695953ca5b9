package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jwyoon/equityboard/internal/api/handlers"
	"github.com/jwyoon/equityboard/pkg/logger"
)

// NewRouter creates and configures the HTTP router
// SSOT: routing configuration lives in this function only
func NewRouter(equityHandler *handlers.EquityHandler, reportHandler *handlers.ReportHandler, resolveHandler *handlers.ResolveHandler, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// API v1
	api := r.PathPrefix("/api").Subrouter()

	// Universe and per-equity endpoints
	api.HandleFunc("/universe", equityHandler.GetUniverse).Methods("GET")
	api.HandleFunc("/equities/{figi}/analysis", equityHandler.GetAnalysis).Methods("GET")
	api.HandleFunc("/equities/{figi}/trends", equityHandler.GetTrends).Methods("GET")

	// Integrity report
	api.HandleFunc("/reports/integrity", reportHandler.GetIntegrity).Methods("GET")

	// Symbol resolution
	api.HandleFunc("/resolve", resolveHandler.GetResolve).Methods("GET")

	// Apply middleware
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "equityboard-api",
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
