package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/quantdash/internal/api/handlers"
	"github.com/wonny/quantdash/internal/dashboard"
	"github.com/wonny/quantdash/internal/snapshot"
	"github.com/wonny/quantdash/internal/trendconfig"
	"github.com/wonny/quantdash/pkg/config"
	"github.com/wonny/quantdash/pkg/logger"
	"github.com/wonny/quantdash/pkg/redis"
)

const testOrigin = "http://localhost:5174"

// newTestRouter wires the full HTTP stack over a seeded state directory.
func newTestRouter(t *testing.T, snapshots map[string]string) http.Handler {
	t.Helper()

	dir := t.TempDir()
	for date, content := range snapshots {
		path := filepath.Join(dir, "ranking_"+date+".json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	log := logger.NewWithWriter("error", io.Discard)

	client, err := redis.New(config.RedisConfig{Enabled: false})
	require.NoError(t, err)

	store := snapshot.NewFileStore(dir, log)
	service := dashboard.New(store, redis.NewCache(client, "test"), trendconfig.Default(), time.Minute, log)

	cfg := &config.Config{
		CORSOrigins: []string{testOrigin},
		RateLimit:   1000,
		RateBurst:   1000,
	}

	return NewRouter(
		handlers.NewAnalyticsHandler(service, log),
		handlers.NewRankingHandler(service, log),
		cfg,
		log,
	)
}

func snapshotJSON(date string, ranked ...string) string {
	out := fmt.Sprintf(`{"date": %q, "rankings": [`, date)
	for i, r := range ranked {
		if i > 0 {
			out += ","
		}
		out += r
	}
	return out + "]}"
}

func rankedJSON(ticker string, rank int) string {
	return fmt.Sprintf(`{"ticker": %q, "name": %q, "rank": %d}`, ticker, ticker+" Corp", rank)
}

func threeDayFixture() map[string]string {
	return map[string]string{
		"20260101": snapshotJSON("20260101", rankedJSON("AAA", 3), rankedJSON("BBB", 1)),
		"20260102": snapshotJSON("20260102", rankedJSON("AAA", 2), rankedJSON("BBB", 1)),
		"20260103": snapshotJSON("20260103", rankedJSON("AAA", 1), rankedJSON("BBB", 2), rankedJSON("CCC", 3)),
	}
}

func doGet(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doGet(router, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_Dates(t *testing.T) {
	router := newTestRouter(t, threeDayFixture())

	rec := doGet(router, "/api/dates")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Dates []string `json:"dates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"20260103", "20260102", "20260101"}, body.Dates)
}

func TestRouter_LatestRanking(t *testing.T) {
	router := newTestRouter(t, threeDayFixture())

	rec := doGet(router, "/api/rankings/latest")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Date     string `json:"date"`
		Rankings []struct {
			Ticker string `json:"ticker"`
		} `json:"rankings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "20260103", body.Date)
	assert.Len(t, body.Rankings, 3)
}

func TestRouter_RankingByDateNotFound(t *testing.T) {
	router := newTestRouter(t, threeDayFixture())

	rec := doGet(router, "/api/rankings/20250101")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Pipeline(t *testing.T) {
	router := newTestRouter(t, threeDayFixture())

	rec := doGet(router, "/api/pipeline")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Verified []struct {
			Ticker string `json:"ticker"`
			Status string `json:"status"`
		} `json:"verified"`
		NewEntry []struct {
			Ticker string `json:"ticker"`
		} `json:"new_entry"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Verified, 2)
	assert.Equal(t, "verified", body.Verified[0].Status)
	require.Len(t, body.NewEntry, 1)
	assert.Equal(t, "CCC", body.NewEntry[0].Ticker)
}

func TestRouter_PicksInsufficientIsStillOK(t *testing.T) {
	router := newTestRouter(t, map[string]string{
		"20260103": snapshotJSON("20260103", rankedJSON("AAA", 1)),
	})

	rec := doGet(router, "/api/picks")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message       string `json:"message"`
		DaysAvailable int    `json:"days_available"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Message)
	assert.Equal(t, 1, body.DaysAvailable)
}

func TestRouter_DeathList(t *testing.T) {
	router := newTestRouter(t, map[string]string{
		"20260102": snapshotJSON("20260102", rankedJSON("AAA", 1), rankedJSON("BBB", 2)),
		"20260103": snapshotJSON("20260103", rankedJSON("AAA", 1)),
	})

	rec := doGet(router, "/api/deathlist")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		DeathList []struct {
			Ticker     string `json:"ticker"`
			DroppedOut bool   `json:"dropped_out"`
		} `json:"death_list"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.DeathList, 1)
	assert.Equal(t, "BBB", body.DeathList[0].Ticker)
	assert.True(t, body.DeathList[0].DroppedOut)
}

func TestRouter_HistoryNotFound(t *testing.T) {
	router := newTestRouter(t, threeDayFixture())

	rec := doGet(router, "/api/history/ZZZ")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/dates", nil)
	req.Header.Set("Origin", testOrigin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSUnknownOrigin(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimit(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewWithWriter("error", io.Discard)

	client, err := redis.New(config.RedisConfig{Enabled: false})
	require.NoError(t, err)

	store := snapshot.NewFileStore(dir, log)
	service := dashboard.New(store, redis.NewCache(client, "test"), trendconfig.Default(), time.Minute, log)

	cfg := &config.Config{
		CORSOrigins: nil,
		RateLimit:   1,
		RateBurst:   1,
	}

	router := NewRouter(
		handlers.NewAnalyticsHandler(service, log),
		handlers.NewRankingHandler(service, log),
		cfg,
		log,
	)

	first := doGet(router, "/health")
	assert.Equal(t, http.StatusOK, first.Code)

	second := doGet(router, "/health")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
