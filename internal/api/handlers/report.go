package handlers

import (
	"net/http"

	"github.com/jwyoon/equityboard/internal/report"
	"github.com/jwyoon/equityboard/internal/store"
	"github.com/jwyoon/equityboard/pkg/logger"
)

// ReportHandler handles the integrity report endpoint
type ReportHandler struct {
	store  *store.Store
	logger *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(s *store.Store, log *logger.Logger) *ReportHandler {
	return &ReportHandler{store: s, logger: log}
}

// GetIntegrity returns the full data integrity report
// GET /api/reports/integrity
func (h *ReportHandler) GetIntegrity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	equities, err := h.store.Equities(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load equity set")
		respondError(w, http.StatusInternalServerError, "Failed to build integrity report")
		return
	}

	respondData(w, http.StatusOK, report.Build(equities))
}
