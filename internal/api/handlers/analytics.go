package handlers

import (
	"net/http"

	"github.com/wonny/quantdash/internal/dashboard"
	"github.com/wonny/quantdash/pkg/logger"
)

// AnalyticsHandler handles the computed trend analytics endpoints.
// ⭐ SSOT: 분석 API 핸들러는 이 구조체에서만
type AnalyticsHandler struct {
	service *dashboard.Service
	logger  *logger.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *dashboard.Service, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  log,
	}
}

// GetPipeline returns the verified/pending/new_entry classification
// GET /api/pipeline
func (h *AnalyticsHandler) GetPipeline(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Pipeline(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute pipeline status")
		respondError(w, http.StatusInternalServerError, "Failed to compute pipeline status")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetPicks returns the 3일 교집합 최종 추천 (Slow In)
// GET /api/picks
func (h *AnalyticsHandler) GetPicks(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Picks(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute picks")
		respondError(w, http.StatusInternalServerError, "Failed to compute picks")
		return
	}

	// Insufficient data is a valid, explicit result — the client
	// decides how to present it.
	respondJSON(w, http.StatusOK, result)
}

// GetDeathList returns the exits from the watched window (Fast Out)
// GET /api/deathlist
func (h *AnalyticsHandler) GetDeathList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeathList(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute death list")
		respondError(w, http.StatusInternalServerError, "Failed to compute death list")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetGrades returns per-factor letter grades over the latest top-N
// GET /api/grades
func (h *AnalyticsHandler) GetGrades(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Grades(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute factor grades")
		respondError(w, http.StatusInternalServerError, "Failed to compute factor grades")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
