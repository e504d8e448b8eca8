package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/quantdash/internal/dashboard"
	"github.com/wonny/quantdash/internal/snapshot"
	"github.com/wonny/quantdash/pkg/logger"
)

// RankingHandler handles raw snapshot and history endpoints.
// ⭐ SSOT: 순위 조회 핸들러는 이 구조체에서만
type RankingHandler struct {
	service *dashboard.Service
	logger  *logger.Logger
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(service *dashboard.Service, log *logger.Logger) *RankingHandler {
	return &RankingHandler{
		service: service,
		logger:  log,
	}
}

// GetDates returns available snapshot dates, newest first
// GET /api/dates
func (h *RankingHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.service.Dates(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list snapshot dates")
		respondError(w, http.StatusInternalServerError, "Failed to list snapshot dates")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"dates": dates,
	})
}

// GetLatest returns the most recent snapshot
// GET /api/rankings/latest
func (h *RankingHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.LatestRanking(r.Context())
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			respondError(w, http.StatusNotFound, "순위 데이터 없음")
			return
		}
		h.logger.WithError(err).Error("Failed to load latest snapshot")
		respondError(w, http.StatusInternalServerError, "Failed to load latest snapshot")
		return
	}

	respondJSON(w, http.StatusOK, snap)
}

// GetByDate returns one date's snapshot
// GET /api/rankings/{date}
func (h *RankingHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	snap, err := h.service.Ranking(r.Context(), date)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("%s 데이터 없음", date))
			return
		}
		h.logger.WithError(err).WithField("date", date).Error("Failed to load snapshot")
		respondError(w, http.StatusInternalServerError, "Failed to load snapshot")
		return
	}

	respondJSON(w, http.StatusOK, snap)
}

// GetHistory returns one ticker's rank history, oldest first
// GET /api/history/{ticker}
func (h *RankingHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]

	history, err := h.service.TickerHistory(r.Context(), ticker)
	if err != nil {
		h.logger.WithError(err).WithField("ticker", ticker).Error("Failed to build history")
		respondError(w, http.StatusInternalServerError, "Failed to build history")
		return
	}
	if len(history) == 0 {
		respondError(w, http.StatusNotFound, fmt.Sprintf("%s 히스토리 없음", ticker))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ticker":  ticker,
		"history": history,
	})
}

// GetAllHistory returns every top-N ticker's rank trail
// GET /api/history
func (h *RankingHandler) GetAllHistory(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.AllHistory(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to build history")
		respondError(w, http.StatusInternalServerError, "Failed to build history")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
