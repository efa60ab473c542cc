package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeElector struct {
	leader atomic.Bool
}

func (f *fakeElector) IsLeader() bool               { return f.leader.Load() }
func (f *fakeElector) CheckInterval() time.Duration { return 5 * time.Millisecond }

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) Refresh(ctx context.Context) error {
	c.calls.Add(1)
	return c.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatsRefreshJobRunsImmediatelyAndOnTick(t *testing.T) {
	refresher := &countingRefresher{}
	job := NewStatsRefreshJob(refresher, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- job.Run(ctx) }()

	require.Eventually(t, func() bool { return refresher.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("job did not stop after cancel")
	}
}

func TestStatsRefreshJobKeepsRunningAfterFailure(t *testing.T) {
	refresher := &countingRefresher{err: errors.New("backend down")}
	job := NewStatsRefreshJob(refresher, 5*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = job.Run(ctx) }()

	require.Eventually(t, func() bool { return refresher.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestStatsRefreshJobRejectsZeroInterval(t *testing.T) {
	job := NewStatsRefreshJob(&countingRefresher{}, 0, testLogger())
	assert.Error(t, job.Run(context.Background()))
}

func TestJobManagerWithoutElectionRunsLeaderJobs(t *testing.T) {
	refresher := &countingRefresher{}
	jm := NewJobManager(nil, testLogger())
	jm.Register(NewStatsRefreshJob(refresher, time.Hour, testLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	jm.Start(ctx)

	require.Eventually(t, func() bool { return refresher.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.True(t, jm.Running("stats_refresh"))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	jm.Shutdown(shutdownCtx)
	assert.False(t, jm.Running("stats_refresh"))
}

func TestJobManagerFollowsLeadership(t *testing.T) {
	elector := &fakeElector{}
	refresher := &countingRefresher{}
	jm := NewJobManager(elector, testLogger())
	jm.Register(NewStatsRefreshJob(refresher, time.Hour, testLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	jm.Start(ctx)

	time.Sleep(20 * time.Millisecond)
	assert.False(t, jm.Running("stats_refresh"))
	assert.Zero(t, refresher.calls.Load())

	elector.leader.Store(true)
	require.Eventually(t, func() bool { return jm.Running("stats_refresh") }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return refresher.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	elector.leader.Store(false)
	require.Eventually(t, func() bool { return !jm.Running("stats_refresh") }, time.Second, 5*time.Millisecond)

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	jm.Shutdown(shutdownCtx)
}
