// Package dashboard composes the snapshot store with the trend
// analytics into the request-level operations the API and CLI expose.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/quantdash/internal/contracts"
	"github.com/wonny/quantdash/internal/snapshot"
	"github.com/wonny/quantdash/internal/trend"
	"github.com/wonny/quantdash/internal/trendconfig"
	"github.com/wonny/quantdash/pkg/logger"
	"github.com/wonny/quantdash/pkg/redis"
)

// Service runs the trend analytics over the configured snapshot store.
// Computed responses go through a TTL'd cache fast path; the analytics
// logic itself is never duplicated into the cache layer.
// ⭐ SSOT: 대시보드 연산 조합은 여기서만
type Service struct {
	store snapshot.Store
	cache *redis.Cache
	cfg   *trendconfig.Config
	ttl   time.Duration

	classifier *trend.Classifier
	selector   *trend.PickSelector
	deaths     *trend.DeathListBuilder
	grader     *trend.FactorGrader
	logger     *logger.Logger
}

// New creates a service. cache may be backed by a disabled Redis
// client, in which case every call computes from snapshots.
func New(store snapshot.Store, cache *redis.Cache, cfg *trendconfig.Config, ttl time.Duration, log *logger.Logger) *Service {
	ranker := trend.NewWeightedRanker(cfg.Weights)
	return &Service{
		store:      store,
		cache:      cache,
		cfg:        cfg,
		ttl:        ttl,
		classifier: trend.NewClassifier(cfg.TopN, ranker, log),
		selector:   trend.NewPickSelector(cfg, log),
		deaths:     trend.NewDeathListBuilder(cfg.DeathTopN, trend.NewExitTagger(cfg.ExitThreshold), log),
		grader:     trend.NewFactorGrader(),
		logger:     log,
	}
}

// Dates lists available snapshot dates, newest first.
func (s *Service) Dates(ctx context.Context) ([]string, error) {
	return s.store.Dates(ctx)
}

// Ranking returns one date's raw snapshot.
func (s *Service) Ranking(ctx context.Context, date string) (*contracts.DailySnapshot, error) {
	return s.store.Load(ctx, date)
}

// LatestRanking returns the most recent snapshot.
func (s *Service) LatestRanking(ctx context.Context) (*contracts.DailySnapshot, error) {
	return snapshot.Latest(ctx, s.store)
}

// Pipeline computes the verified/pending/new_entry classification over
// up to 3 most recent days.
func (s *Service) Pipeline(ctx context.Context) (*contracts.PipelineResult, error) {
	key, err := s.cacheKey(ctx, "pipeline")
	if err == nil {
		var cached contracts.PipelineResult
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return &cached, nil
		}
	}

	days, err := snapshot.Recent(ctx, s.store, 3)
	if err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}

	result := s.classifier.Classify(days)
	s.put(ctx, "pipeline", result)
	return result, nil
}

// Picks computes the n-day intersection pick list, or the explicit
// insufficient-data result when too few days exist.
func (s *Service) Picks(ctx context.Context) (*contracts.PickResult, error) {
	key, err := s.cacheKey(ctx, "picks")
	if err == nil {
		var cached contracts.PickResult
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return &cached, nil
		}
	}

	days, err := snapshot.Exact(ctx, s.store, s.cfg.NDays)
	if err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}

	result := s.selector.Select(days)
	if !result.Insufficient() {
		s.put(ctx, "picks", result)
	}
	return result, nil
}

// DeathList computes the exits between the two most recent days.
func (s *Service) DeathList(ctx context.Context) (*contracts.DeathListResult, error) {
	key, err := s.cacheKey(ctx, "deathlist")
	if err == nil {
		var cached contracts.DeathListResult
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return &cached, nil
		}
	}

	days, err := snapshot.Exact(ctx, s.store, 2)
	if err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}

	var today, yesterday *contracts.DailySnapshot
	if len(days) > 0 {
		today = days[0]
	}
	if len(days) > 1 {
		yesterday = days[1]
	}

	result := s.deaths.Build(today, yesterday)
	if result.Message == "" {
		s.put(ctx, "deathlist", result)
	}
	return result, nil
}

// Grades computes factor grades over the latest day's top-N set.
func (s *Service) Grades(ctx context.Context) (contracts.FactorGradeResult, error) {
	key, err := s.cacheKey(ctx, "grades")
	if err == nil {
		var cached contracts.FactorGradeResult
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return cached, nil
		}
	}

	latest, err := snapshot.Latest(ctx, s.store)
	if err != nil {
		return nil, fmt.Errorf("load latest snapshot: %w", err)
	}

	result := s.grader.Grade(latest.TopN(s.cfg.TopN))
	s.put(ctx, "grades", result)
	return result, nil
}

// Warm recomputes every cached analytics view. Used by the scheduler
// after the daily snapshot lands.
func (s *Service) Warm(ctx context.Context) error {
	if _, err := s.Pipeline(ctx); err != nil {
		return fmt.Errorf("warm pipeline: %w", err)
	}
	if _, err := s.Picks(ctx); err != nil {
		return fmt.Errorf("warm picks: %w", err)
	}
	if _, err := s.DeathList(ctx); err != nil {
		return fmt.Errorf("warm deathlist: %w", err)
	}
	if _, err := s.Grades(ctx); err != nil {
		return fmt.Errorf("warm grades: %w", err)
	}
	return nil
}

// cacheKey scopes an analytics view to the latest snapshot date, so a
// new snapshot invalidates the previous day's entries without a flush.
func (s *Service) cacheKey(ctx context.Context, view string) (string, error) {
	dates, err := s.store.Dates(ctx)
	if err != nil || len(dates) == 0 {
		return "", snapshot.ErrNotFound
	}
	return fmt.Sprintf("%s:%s", view, dates[0]), nil
}

// put stores a computed view; cache failures only log, never fail the
// request.
func (s *Service) put(ctx context.Context, view string, value interface{}) {
	key, err := s.cacheKey(ctx, view)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil && s.logger != nil {
		s.logger.WithError(err).WithField("view", view).Warn("Cache write failed")
	}
}
