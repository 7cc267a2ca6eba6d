package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lottery-engine/internal/auth"
	"lottery-engine/internal/config"
	"lottery-engine/internal/database"
	"lottery-engine/internal/events"
	"lottery-engine/internal/handler"
	"lottery-engine/internal/logger"
	"lottery-engine/internal/repository"
	"lottery-engine/internal/repository/ledger"
	"lottery-engine/internal/repository/memory"
	"lottery-engine/internal/repository/postgres"
	"lottery-engine/internal/repository/redis"
	"lottery-engine/internal/scheduler"
	"lottery-engine/internal/service"
	"lottery-engine/internal/worker"

	"github.com/rs/zerolog"

	_ "lottery-engine/docs"
)

// @title Lottery Engine API
// @version 1.0
// @description Single digit lottery: accounts, bets, draws and auto-bet
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		boot, _ := logger.New(logger.Options{Pretty: true})
		boot.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	log, err := logger.New(logger.Options{Pretty: cfg.Log.Pretty, Level: cfg.Log.Level})
	if err != nil {
		boot, _ := logger.New(logger.Options{Pretty: true})
		boot.Fatal().Err(err).Msg("Invalid log configuration")
	}

	// Storage backend
	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, closeStore, err := openStore(initCtx, cfg, logger.Component(log, "store"))
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("Failed to open store")
	}
	defer closeStore()

	repos := ledger.NewRepositories(store)

	// Event sinks: log, live websocket clients and optionally kafka
	hub := events.NewHub(logger.Component(log, "hub"))
	defer hub.Close()

	publishers := events.Multi{events.NewLogPublisher(log), hub}
	if cfg.Kafka.Enabled {
		producer, err := events.NewKafkaProducer(cfg.Kafka.Brokers)
		if err != nil {
			log.Fatal().Err(err).Strs("brokers", cfg.Kafka.Brokers).Msg("Failed to connect to kafka")
		}
		kafka := events.NewKafkaPublisher(producer, cfg.Kafka.Topic)
		defer kafka.Close()
		publishers = append(publishers, kafka)
	}

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.NewTimerScheduler(256, logger.Component(log, "scheduler"))
	sched.Start(ctx)
	defer sched.Stop()

	// Services
	services := service.NewServices(service.Dependencies{
		Repos:     repos,
		Scheduler: sched,
		Clock:     scheduler.SystemClock{},
		Publisher: publishers,
		Game:      cfg.Game,
		Logger:    log,
	})

	// Pick up work left behind by the previous process
	if n, err := services.Bets.RecoverPendingMiniBets(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to recover pending mini bets")
	} else {
		log.Info().Int("count", n).Msg("Pending mini bets recovered")
	}
	if n, err := services.AutoBets.ResumeAutoBets(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to resume auto-bets")
	} else {
		log.Info().Int("count", n).Msg("Auto-bets resumed")
	}

	// Worker for calendar draws
	if cfg.Worker.DrawsEnabled {
		drawWorker := worker.NewDrawWorker(services.Draws, sched, scheduler.SystemClock{}, cfg.Worker.DrawCheckInterval, logger.Component(log, "draw_worker"))
		drawWorker.Start(ctx)
		defer drawWorker.Stop()
	}

	// http handler
	issuer := auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.SessionTTL, cfg.Auth.RememberTTL)
	h := handler.NewHandler(services, issuer, hub, logger.Component(log, "http"))
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Str("backend", cfg.Store.Backend).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}

// openStore connects the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.StorePostgres:
		if cfg.Store.RunMigrations {
			if err := database.Migrate(cfg.Database); err != nil {
				return nil, nil, err
			}
			log.Info().Msg("Database migrations applied")
		}
		pool, err := database.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewStore(pool), pool.Close, nil

	case config.StoreRedis:
		client, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return redis.NewStore(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil

	default:
		store := memory.New()
		path := cfg.Store.SnapshotPath
		if path == "" {
			return store, func() {}, nil
		}
		if err := store.LoadSnapshot(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, err
		} else if err == nil {
			log.Info().Str("path", path).Int("keys", store.Len()).Msg("Snapshot loaded")
		}
		return store, func() {
			if err := store.SaveSnapshot(path); err != nil {
				log.Error().Err(err).Str("path", path).Msg("Failed to save snapshot")
				return
			}
			log.Info().Str("path", path).Msg("Snapshot saved")
		}, nil
	}
}
