package distributed

import (
	"context"
	"invoice-dashboard/internal/config"
	"invoice-dashboard/internal/metrics"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const leaderKey = "invoice-dashboard:leader"

// renewScript extends the lease only while we still hold it.
var renewScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("pexpire", KEYS[1], ARGV[2])
	end
	return 0
`)

var resignScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	end
	return 0
`)

// Election is a redis lease: the instance whose id is stored under leaderKey
// is the leader until the key expires or is released.
type Election struct {
	Redis      redis.Cmdable
	InstanceID string
	TTL        time.Duration
	logger     *slog.Logger
	isLeader   bool
	mu         sync.RWMutex
}

func NewElection(client redis.Cmdable, instanceID string, ttl time.Duration, logger *slog.Logger) *Election {
	if ttl <= 0 {
		ttl = config.DefaultDistributedConfig.TTL
	}
	return &Election{
		Redis:      client,
		InstanceID: instanceID,
		TTL:        ttl,
		logger:     logger,
	}
}

// InstanceID prefers the pod hostname so the lease holder is recognizable.
func InstanceID() string {
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return uuid.NewString()
}

func (e *Election) IsLeader() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.isLeader
}

// CheckInterval is how often leadership is re-evaluated.
func (e *Election) CheckInterval() time.Duration {
	return e.TTL / 3
}

func (e *Election) campaign(ctx context.Context) {
	ok, err := e.Redis.SetNX(ctx, leaderKey, e.InstanceID, e.TTL).Result()
	if err != nil {
		e.logger.Error("failed to campaign for leadership", "error", err, "instance", e.InstanceID)
		e.setLeader(false)
		return
	}

	if !ok {
		renewed, err := renewScript.Run(ctx, e.Redis, []string{leaderKey}, e.InstanceID, e.TTL.Milliseconds()).Int()
		if err != nil {
			e.logger.Error("failed to renew leadership", "error", err, "instance", e.InstanceID)
		}
		ok = err == nil && renewed == 1
	}

	e.setLeader(ok)
}

func (e *Election) setLeader(isLeader bool) {
	e.mu.Lock()
	wasLeader := e.isLeader
	e.isLeader = isLeader
	e.mu.Unlock()

	if isLeader && !wasLeader {
		e.logger.Info("became leader", "instance", e.InstanceID)
		metrics.IsLeader.Set(1)
		metrics.LeadershipChanges.Inc()
	} else if !isLeader && wasLeader {
		e.logger.Info("lost leadership", "instance", e.InstanceID)
		metrics.IsLeader.Set(0)
		metrics.LeadershipChanges.Inc()
	}
}

// Start campaigns until ctx is cancelled, then releases the lease.
func (e *Election) Start(ctx context.Context) {
	ticker := time.NewTicker(e.CheckInterval())
	defer ticker.Stop()

	e.campaign(ctx)

	for {
		select {
		case <-ctx.Done():
			resignCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			e.resign(resignCtx)
			cancel()
			return
		case <-ticker.C:
			e.campaign(ctx)
		}
	}
}

func (e *Election) resign(ctx context.Context) {
	if !e.IsLeader() {
		return
	}

	if _, err := resignScript.Run(ctx, e.Redis, []string{leaderKey}, e.InstanceID).Result(); err != nil {
		e.logger.Error("failed to resign leadership", "error", err, "instance", e.InstanceID)
	} else {
		e.logger.Info("resigned leadership", "instance", e.InstanceID)
	}

	e.setLeader(false)
}
