package data

import (
	"context"
	"fmt"
	"invoice-dashboard/internal/config"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cache_provider.go -destination=../mocks/cache.go -package=mocks

// CachedData is a single cache entry. A zero ExpiresAt never expires.
type CachedData struct {
	Name      string    `json:"name"`
	JSONBytes []byte    `json:"json_bytes"`
	Timestamp time.Time `json:"timestamp"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (c CachedData) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

type CacheProvider interface {
	Get(ctx context.Context, key string) (CachedData, bool)
	Set(ctx context.Context, key string, entry CachedData)
	Delete(ctx context.Context, key string)
	Size(ctx context.Context) int
}

// NewCacheProvider returns the cache selected by cache.type. redisClient is
// only used for the redis cache.
func NewCacheProvider(cfg *config.Config, logger *slog.Logger, redisClient *redis.Client) (CacheProvider, error) {
	switch cfg.Cache.Type {
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("redis cache requires a redis client")
		}
		return NewRedisCache(redisClient, logger), nil
	case "memory", "":
		return NewMemCache(), nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Cache.Type)
	}
}
