package data

import (
	"context"
	"invoice-dashboard/internal/metrics"
	"sync"
	"time"
)

type MemCache struct {
	cache map[string]CachedData
	mutex sync.RWMutex
	now   func() time.Time
}

func NewMemCache() *MemCache {
	return &MemCache{
		cache: make(map[string]CachedData),
		now:   time.Now,
	}
}

// Get returns a live entry. Expired entries are dropped on read.
func (d *MemCache) Get(_ context.Context, key string) (CachedData, bool) {
	start := time.Now()
	defer func() {
		metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeMemory, metrics.CacheOperationTypeGet).Observe(time.Since(start).Seconds())
	}()

	d.mutex.RLock()
	cached, exists := d.cache[key]
	d.mutex.RUnlock()

	if !exists {
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeMemory).Inc()
		return CachedData{}, false
	}

	if cached.Expired(d.now()) {
		d.Delete(context.Background(), key)
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeMemory).Inc()
		return CachedData{}, false
	}

	metrics.CacheHits.WithLabelValues(metrics.CacheTypeMemory).Inc()
	return cached, true
}

// Set sets (or inserts) an entry
func (d *MemCache) Set(_ context.Context, key string, data CachedData) {
	start := time.Now()

	d.mutex.Lock()
	data.Name = key
	if data.Timestamp.IsZero() {
		data.Timestamp = d.now()
	}
	d.cache[key] = data
	size := len(d.cache)
	d.mutex.Unlock()

	metrics.CacheItems.WithLabelValues(metrics.CacheTypeMemory).Set(float64(size))
	metrics.CacheOperationDuration.WithLabelValues(metrics.CacheTypeMemory, metrics.CacheOperationTypeSet).Observe(time.Since(start).Seconds())
}

// Delete removes an entry from the cache
func (d *MemCache) Delete(_ context.Context, key string) {
	d.mutex.Lock()
	delete(d.cache, key)
	size := len(d.cache)
	d.mutex.Unlock()

	metrics.CacheItems.WithLabelValues(metrics.CacheTypeMemory).Set(float64(size))
}

// Size returns the current number of elements in the cache
func (d *MemCache) Size(_ context.Context) int {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return len(d.cache)
}
