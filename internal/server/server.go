package server

import (
	"context"
	"errors"
	"fmt"
	"invoice-dashboard/internal/auth"
	"invoice-dashboard/internal/backend"
	"invoice-dashboard/internal/config"
	"invoice-dashboard/internal/data"
	"invoice-dashboard/internal/distributed"
	"invoice-dashboard/internal/jobs"
	"invoice-dashboard/internal/metrics"
	"invoice-dashboard/internal/middlewares"
	"invoice-dashboard/internal/web"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	cfg          *config.Config
	logger       *slog.Logger
	appCtx       *middlewares.AppContext
	httpServer   *http.Server
	debugServer  *http.Server
	election     *distributed.Election
	jobManager   *jobs.JobManager
	redisClients []*redis.Client
	cancel       context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		cfg:    cfg,
		logger: logger,
		cancel: cancel,
	}

	fail := func(err error) (*Server, error) {
		s.closeRedis()
		cancel()
		return nil, err
	}

	sessionRedis, err := s.redisClient(ctx, cfg.Sessions.Store == "redis", "sessions", func(r *config.RedisConfig) int { return r.SessionIndex })
	if err != nil {
		return fail(err)
	}

	sessionManager, err := auth.NewSessionManager(logger, cfg, sessionRedis)
	if err != nil {
		return fail(fmt.Errorf("failed to set up sessions: %w", err))
	}

	cacheRedis, err := s.redisClient(ctx, cfg.Cache.Type == "redis", "cache", func(r *config.RedisConfig) int { return r.CacheIndex })
	if err != nil {
		return fail(err)
	}

	cache, err := data.NewCacheProvider(cfg, logger, cacheRedis)
	if err != nil {
		return fail(fmt.Errorf("failed to set up cache: %w", err))
	}

	backendClient := backend.NewClient(cfg.Backend, logger)
	stats := data.NewStatsService(backendClient, cache, cfg.Backend.StatsTTL, logger)

	renderer, err := web.NewRenderer(logger)
	if err != nil {
		return fail(fmt.Errorf("failed to load templates: %w", err))
	}

	distributedEnabled := cfg.Distributed != nil && cfg.Distributed.Enabled
	leaderRedis, err := s.redisClient(ctx, distributedEnabled, "election", func(r *config.RedisConfig) int { return r.LeaderIndex })
	if err != nil {
		return fail(err)
	}

	var elector jobs.LeaderElector
	if distributedEnabled {
		s.election = distributed.NewElection(leaderRedis, distributed.InstanceID(), cfg.Distributed.TTL, logger)
		elector = s.election
	}

	s.jobManager = jobs.NewJobManager(elector, logger)
	s.jobManager.Register(jobs.NewStatsRefreshJob(stats, cfg.Backend.StatsRefreshInterval, logger))

	s.appCtx = middlewares.NewAppContext(ctx, cfg, logger, sessionManager, backendClient, stats, renderer)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           setupRouter(s.appCtx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		s.debugServer = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler:           setupDebugRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return s, nil
}

// redisClient connects to the redis database picked by index when needed is
// true. Pool stats are exported when the debug server is on.
func (s *Server) redisClient(ctx context.Context, needed bool, name string, index func(*config.RedisConfig) int) (*redis.Client, error) {
	if !needed {
		return nil, nil
	}
	if s.cfg.Redis == nil {
		return nil, fmt.Errorf("%s require a redis section", name)
	}

	client, err := data.NewRedisClient(ctx, s.logger, s.cfg.Redis, index(s.cfg.Redis))
	if err != nil {
		return nil, fmt.Errorf("failed to connect %s redis: %w", name, err)
	}
	s.redisClients = append(s.redisClients, client)

	if s.cfg.Server.Debug != nil && s.cfg.Server.Debug.Enabled {
		collector := redisprometheus.NewCollector(metrics.Namespace, name, client)
		if err := prometheus.Register(collector); err != nil {
			s.logger.Debug("failed to register redis collector", "name", name, "error", err)
		}
	}

	return client, nil
}

func (s *Server) Start() error {
	if s.election != nil {
		go s.election.Start(s.appCtx)
	}

	s.jobManager.Start(s.appCtx)

	go func() {
		if s.election != nil {
			s.logger.Info("server started", "port", s.cfg.Server.Port, "instance", s.election.InstanceID)
		} else {
			s.logger.Info("server started", "port", s.cfg.Server.Port)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("debug server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("debug server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("shutting down server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server forced to shutdown", "error", err)
		return err
	}

	// stops the election loop, which releases the lease
	s.cancel()
	s.jobManager.Shutdown(shutdownCtx)

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("debug server forced to shutdown", "error", err)
		}
	}

	s.closeRedis()

	s.logger.Info("server exited")
	return nil
}

func (s *Server) closeRedis() {
	for _, client := range s.redisClients {
		if err := client.Close(); err != nil {
			s.logger.Warn("failed to close redis client", "error", err)
		}
	}
	s.redisClients = nil
}
