package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/merosman91/Boiler-Farm/internal/config"
	"github.com/merosman91/Boiler-Farm/internal/infra"
	"github.com/merosman91/Boiler-Farm/internal/router"
	"github.com/merosman91/Boiler-Farm/internal/scheduler"
	"github.com/merosman91/Boiler-Farm/internal/service"
	"github.com/merosman91/Boiler-Farm/internal/store"
	"github.com/merosman91/Boiler-Farm/internal/worker"
)

func main() {
	// Structured logger, pretty console output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis is mandatory for the redis snapshot backend, optional otherwise
	// (it also powers the async job queues when present).
	var rdb *redis.Client
	if cfg.SnapshotBackend == "redis" || cfg.RedisURL != "" {
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			if cfg.SnapshotBackend == "redis" {
				log.Fatal().Err(err).Msg("failed to connect to redis")
			}
			log.Warn().Err(err).Msg("redis unavailable, running without async jobs")
			rdb = nil
		}
	}

	var backend store.Backend
	switch cfg.SnapshotBackend {
	case "redis":
		backend = store.NewRedisBackend(rdb, cfg.SnapshotRedisKey)
	default:
		backend = store.NewFileBackend(cfg.SnapshotPath)
	}

	st, err := store.Open(ctx, backend)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load snapshot")
	}

	// Worker pool for async tasks (report sharing, digest email). Handlers
	// are wired here, the composition root, so the pool has full access to
	// all infrastructure dependencies.
	shareCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	shareClient := infra.NewShareClient(cfg.ShareWebhookURL, shareCB)
	mailer := infra.NewMailer(cfg)
	metricsSvc := service.NewMetricsService(st)

	if rdb != nil {
		pool := worker.NewPool(rdb)
		pool.Register(worker.QueueShare, worker.NewShareWorker(metricsSvc, shareClient).Process)
		pool.Register(worker.QueueDigest, worker.NewDigestWorker(mailer).Process)
		pool.Start(ctx, cfg.WorkerPoolSize)
	}

	// Daily morning scan: stock alerts, due vaccinations, digest email.
	sched := scheduler.New(scheduler.Config{
		Store:      st,
		Inventory:  service.NewInventoryService(st),
		Vaccines:   service.NewVaccinationService(st),
		Metrics:    metricsSvc,
		Dispatcher: worker.NewDispatcher(rdb),
		DigestTo:   cfg.DigestTo,
		PDFPath:    cfg.PDFStoragePath,
	})
	if err := sched.Start(cfg.AlertCron); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}

	r := router.New(cfg, st, rdb, shareCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("farm backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	sched.Stop()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
