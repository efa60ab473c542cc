package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"invoice-dashboard/internal/metrics"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCacheClient is the subset of *redis.Client the cache uses.
type RedisCacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
	Ping(ctx context.Context) *redis.StatusCmd
	PoolStats() *redis.PoolStats
	Close() error
}

type RedisCache struct {
	client RedisCacheClient
	logger *slog.Logger
}

func NewRedisCache(client RedisCacheClient, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		logger: logger,
	}
}

// key generates a namespaced Redis key
func (r *RedisCache) key(name string) string {
	return fmt.Sprintf("cache:entry:%s", name)
}

func (r *RedisCache) Get(ctx context.Context, key string) (CachedData, bool) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeRedis, metrics.CacheOperationTypeGet).Observe(time.Since(start).Seconds())
	}()

	raw, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Error("error executing redis GET", "key", key, "error", err)
		}
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeRedis).Inc()
		return CachedData{}, false
	}

	var cached CachedData
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		r.logger.Error("error unmarshalling cached entry", "key", key, "error", err)
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeRedis).Inc()
		return CachedData{}, false
	}

	if cached.Expired(time.Now()) {
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeRedis).Inc()
		return CachedData{}, false
	}

	metrics.CacheHits.WithLabelValues(metrics.CacheTypeRedis).Inc()
	return cached, true
}

// Set stores the entry with a redis TTL derived from ExpiresAt.
func (r *RedisCache) Set(ctx context.Context, key string, data CachedData) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeRedis, metrics.CacheOperationTypeSet).Observe(time.Since(start).Seconds())
	}()

	data.Name = key
	if data.Timestamp.IsZero() {
		data.Timestamp = time.Now()
	}

	var ttl time.Duration
	if !data.ExpiresAt.IsZero() {
		ttl = time.Until(data.ExpiresAt)
		if ttl <= 0 {
			r.Delete(ctx, key)
			return
		}
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		r.logger.Error("error marshalling cached entry", "key", key, "error", err)
		return
	}

	if err := r.client.Set(ctx, r.key(key), encoded, ttl).Err(); err != nil {
		r.logger.Error("error executing redis SET", "key", key, "error", err)
	}
}

// Delete removes an entry from the cache
func (r *RedisCache) Delete(ctx context.Context, key string) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeRedis, metrics.CacheOperationTypeDelete).Observe(time.Since(start).Seconds())
	}()

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("error executing redis DEL", "key", key, "error", err)
	}
}

// Size returns the current number of elements in the cache
func (r *RedisCache) Size(ctx context.Context) int {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeRedis, metrics.CacheOperationTypeCountEntries).Observe(time.Since(start).Seconds())
	}()

	keys, err := r.client.Keys(ctx, r.key("*")).Result()
	if err != nil {
		r.logger.Error("error executing redis KEYS", "error", err)
		return 0
	}

	metrics.CacheItems.WithLabelValues(metrics.CacheTypeRedis).Set(float64(len(keys)))
	return len(keys)
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
