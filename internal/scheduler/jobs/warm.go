package jobs

import (
	"context"

	"github.com/wonny/quantdash/internal/dashboard"
	"github.com/wonny/quantdash/pkg/logger"
)

// WarmJob precomputes all analytics views after the daily snapshot lands
// so the first dashboard request of the day hits warm cache.
type WarmJob struct {
	service *dashboard.Service
	logger  *logger.Logger
}

// NewWarmJob creates a cache warm job
func NewWarmJob(service *dashboard.Service, log *logger.Logger) *WarmJob {
	return &WarmJob{
		service: service,
		logger:  log,
	}
}

// Name returns the job name
func (j *WarmJob) Name() string {
	return "analytics_warm"
}

// Schedule: 매일 17:00 KST (장 마감 + 스냅샷 적재 이후)
func (j *WarmJob) Schedule() string {
	return "0 0 17 * * *"
}

// Run warms all analytics views
func (j *WarmJob) Run(ctx context.Context) error {
	j.logger.Info("Warming analytics views")
	return j.service.Warm(ctx)
}
