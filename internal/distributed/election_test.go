package distributed

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestElections(t *testing.T) (*miniredis.Miniredis, *Election, *Election) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := NewElection(client, "instance-a", 30*time.Second, logger)
	b := NewElection(client, "instance-b", 30*time.Second, logger)
	return mr, a, b
}

func TestElectionSingleLeader(t *testing.T) {
	mr, a, b := newTestElections(t)
	ctx := context.Background()

	a.campaign(ctx)
	b.campaign(ctx)

	assert.True(t, a.IsLeader())
	assert.False(t, b.IsLeader())

	holder, err := mr.Get(leaderKey)
	require.NoError(t, err)
	assert.Equal(t, "instance-a", holder)
}

func TestElectionRenewsLease(t *testing.T) {
	mr, a, _ := newTestElections(t)
	ctx := context.Background()

	a.campaign(ctx)
	mr.FastForward(20 * time.Second)
	a.campaign(ctx)

	assert.True(t, a.IsLeader())
	assert.Greater(t, mr.TTL(leaderKey), 20*time.Second)
}

func TestElectionFailoverAfterExpiry(t *testing.T) {
	mr, a, b := newTestElections(t)
	ctx := context.Background()

	a.campaign(ctx)
	mr.FastForward(31 * time.Second)
	b.campaign(ctx)
	a.campaign(ctx)

	assert.True(t, b.IsLeader())
	assert.False(t, a.IsLeader())
}

func TestElectionResign(t *testing.T) {
	mr, a, b := newTestElections(t)
	ctx := context.Background()

	a.campaign(ctx)
	a.resign(ctx)

	assert.False(t, a.IsLeader())
	assert.False(t, mr.Exists(leaderKey))

	b.campaign(ctx)
	assert.True(t, b.IsLeader())
}

func TestElectionRedisDown(t *testing.T) {
	mr, a, _ := newTestElections(t)
	ctx := context.Background()

	a.campaign(ctx)
	require.True(t, a.IsLeader())

	mr.Close()
	a.campaign(ctx)
	assert.False(t, a.IsLeader())
}

func TestInstanceID(t *testing.T) {
	t.Setenv("HOSTNAME", "pod-1")
	assert.Equal(t, "pod-1", InstanceID())

	t.Setenv("HOSTNAME", "")
	assert.Len(t, InstanceID(), 36)
}
