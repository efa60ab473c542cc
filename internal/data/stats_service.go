package data

import (
	"context"
	"encoding/json"
	"fmt"
	"invoice-dashboard/internal/models"
	"log/slog"
	"time"
)

// StatsCacheKey is where the refresh job stores dashboard statistics.
const StatsCacheKey = "stats:dashboard"

type StatsFetcher interface {
	FetchDashboardStats(ctx context.Context) (models.DashboardStats, error)
	GetDashboardStats(ctx context.Context) models.DashboardStats
}

type StatsService struct {
	fetcher StatsFetcher
	cache   CacheProvider
	ttl     time.Duration
	logger  *slog.Logger
}

func NewStatsService(fetcher StatsFetcher, cache CacheProvider, ttl time.Duration, logger *slog.Logger) *StatsService {
	return &StatsService{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
	}
}

// Refresh fetches fresh statistics and caches them. Failures leave the
// previous entry in place.
func (s *StatsService) Refresh(ctx context.Context) error {
	stats, err := s.fetcher.FetchDashboardStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}

	encoded, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode dashboard stats: %w", err)
	}

	now := time.Now()
	s.cache.Set(ctx, StatsCacheKey, CachedData{
		JSONBytes: encoded,
		Timestamp: now,
		ExpiresAt: now.Add(s.ttl),
	})

	return nil
}

// Cached returns the cached statistics, if any.
func (s *StatsService) Cached(ctx context.Context) (models.DashboardStats, bool) {
	cached, ok := s.cache.Get(ctx, StatsCacheKey)
	if !ok {
		return models.DashboardStats{}, false
	}

	var stats models.DashboardStats
	if err := json.Unmarshal(cached.JSONBytes, &stats); err != nil {
		s.logger.Warn("discarding unreadable cached stats", "error", err)
		s.cache.Delete(ctx, StatsCacheKey)
		return models.DashboardStats{}, false
	}

	return stats, true
}

// DashboardStats serves cached statistics or falls back to a live lookup,
// which yields zeros when the backend is unavailable. Live results are not
// cached here.
func (s *StatsService) DashboardStats(ctx context.Context) models.DashboardStats {
	if stats, ok := s.Cached(ctx); ok {
		return stats
	}

	return s.fetcher.GetDashboardStats(ctx)
}
