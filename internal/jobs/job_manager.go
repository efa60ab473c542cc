package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

type Job interface {
	Name() string
	Run(ctx context.Context) error
	RequiresLeadership() bool
	Interval() time.Duration
}

// LeaderElector reports whether this instance currently holds leadership.
type LeaderElector interface {
	IsLeader() bool
	CheckInterval() time.Duration
}

// JobManager runs registered jobs until shutdown. Jobs that require
// leadership only run while the elector says so; without an elector every
// job runs.
type JobManager struct {
	jobs        []Job
	election    LeaderElector
	logger      *slog.Logger
	wg          sync.WaitGroup
	cancelFuncs map[string]context.CancelFunc
	mu          sync.Mutex
}

func NewJobManager(election LeaderElector, logger *slog.Logger) *JobManager {
	return &JobManager{
		jobs:        make([]Job, 0),
		election:    election,
		logger:      logger,
		cancelFuncs: make(map[string]context.CancelFunc),
	}
}

func (jm *JobManager) Register(job Job) {
	jm.mu.Lock()
	defer jm.mu.Unlock()
	jm.jobs = append(jm.jobs, job)
}

func (jm *JobManager) Start(ctx context.Context) {
	jm.startJobs(ctx, false)

	if jm.election != nil {
		jm.wg.Add(1)
		go jm.monitorLeadership(ctx)
	} else {
		jm.startJobs(ctx, true)
	}
}

// Running reports whether the named job is currently scheduled.
func (jm *JobManager) Running(name string) bool {
	jm.mu.Lock()
	defer jm.mu.Unlock()
	_, ok := jm.cancelFuncs[name]
	return ok
}

func (jm *JobManager) Shutdown(ctx context.Context) {
	jm.logger.Debug("shutting down job manager")
	jm.stopJobs(func(Job) bool { return true })

	done := make(chan struct{})
	go func() {
		jm.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		jm.logger.Debug("all jobs stopped cleanly")
	case <-ctx.Done():
		jm.logger.Warn("jobs failed to stop before shutdown deadline")
	}
}

func (jm *JobManager) monitorLeadership(ctx context.Context) {
	defer jm.wg.Done()
	ticker := time.NewTicker(jm.election.CheckInterval())
	defer ticker.Stop()

	var wasLeader bool
	check := func() {
		isLeader := jm.election.IsLeader()
		if isLeader && !wasLeader {
			jm.logger.Debug("became leader, starting leader jobs")
			jm.startJobs(ctx, true)
		} else if !isLeader && wasLeader {
			jm.logger.Debug("lost leadership, stopping leader jobs")
			jm.stopJobs(Job.RequiresLeadership)
		}
		wasLeader = isLeader
	}

	check()
	for {
		select {
		case <-ctx.Done():
			jm.stopJobs(Job.RequiresLeadership)
			return
		case <-ticker.C:
			check()
		}
	}
}

func (jm *JobManager) startJobs(ctx context.Context, leaderJobs bool) {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	for _, job := range jm.jobs {
		if job.RequiresLeadership() != leaderJobs {
			continue
		}

		if _, exists := jm.cancelFuncs[job.Name()]; exists {
			continue
		}

		jobCtx, cancel := context.WithCancel(ctx)
		jm.cancelFuncs[job.Name()] = cancel

		jm.wg.Add(1)
		go func(j Job) {
			defer jm.wg.Done()
			jm.logger.Debug("starting job", "job", j.Name(), "interval", j.Interval())
			if err := j.Run(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				jm.logger.Error("job failed", "job", j.Name(), "error", err)
			}
		}(job)
	}
}

func (jm *JobManager) stopJobs(match func(Job) bool) {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	for _, job := range jm.jobs {
		if !match(job) {
			continue
		}

		if cancel, exists := jm.cancelFuncs[job.Name()]; exists {
			jm.logger.Debug("stopping job", "job", job.Name())
			cancel()
			delete(jm.cancelFuncs, job.Name())
		}
	}
}
