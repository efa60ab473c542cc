package jobs

import (
	"context"
	"fmt"
	"invoice-dashboard/internal/metrics"
	"log/slog"
	"time"
)

type StatsRefresher interface {
	Refresh(ctx context.Context) error
}

// StatsRefreshJob keeps the cached dashboard statistics warm so page loads
// do not wait on the backend.
type StatsRefreshJob struct {
	refresher StatsRefresher
	interval  time.Duration
	logger    *slog.Logger
}

func NewStatsRefreshJob(refresher StatsRefresher, interval time.Duration, logger *slog.Logger) *StatsRefreshJob {
	return &StatsRefreshJob{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
	}
}

func (j *StatsRefreshJob) Name() string {
	return "stats_refresh"
}

func (j *StatsRefreshJob) RequiresLeadership() bool {
	return true
}

func (j *StatsRefreshJob) Interval() time.Duration {
	return j.interval
}

func (j *StatsRefreshJob) Run(ctx context.Context) error {
	if j.interval <= 0 {
		return fmt.Errorf("non-positive ticker interval: %s", j.interval)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			j.logger.Debug("stats refresh canceled")
			return ctx.Err()
		case <-ticker.C:
			j.refresh(ctx)
		}
	}
}

func (j *StatsRefreshJob) refresh(ctx context.Context) {
	if err := j.refresher.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		metrics.JobRuns.WithLabelValues(j.Name(), metrics.JobOutcomeFailure).Inc()
		j.logger.Warn(fmt.Sprintf("stats refresh failed, trying again in %s", j.interval), "error", err)
		return
	}

	metrics.JobRuns.WithLabelValues(j.Name(), metrics.JobOutcomeSuccess).Inc()
}
