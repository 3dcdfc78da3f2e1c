package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/garrettladley/wellscore/internal/assessment"
	"github.com/garrettladley/wellscore/internal/config"
	"github.com/garrettladley/wellscore/internal/migrations/postgres"
	xredis "github.com/garrettladley/wellscore/internal/redis"
	"github.com/garrettladley/wellscore/internal/server"
	"github.com/garrettladley/wellscore/internal/server/handler"
	"github.com/garrettladley/wellscore/internal/service/user"
	"github.com/garrettladley/wellscore/internal/storage"
	"github.com/garrettladley/wellscore/internal/wellness"
	"github.com/garrettladley/wellscore/internal/xslog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const (
	keyPort    = "port"
	keyBackend = "backend"

	shutdownTimeout = 30 * time.Second
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.ReadServer()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	weights, err := cfg.ResolveWeights()
	if err != nil {
		return fmt.Errorf("failed to resolve weights: %w", err)
	}
	engine, err := wellness.NewEngine(weights)
	if err != nil {
		return fmt.Errorf("invalid weights: %w", err)
	}
	engines := wellness.NewHolder(engine)

	pool, err := initPostgres(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize postgres: %w", err)
	}
	defer pool.Close()

	backend, err := initBackend(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize rate limit backend: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.ErrorContext(ctx, "failed to close backend", xslog.Error(err))
		}
	}()

	userService := user.NewPostgresService(user.NewQueries(pool))
	assessmentService := assessment.NewService(assessment.NewPostgresStore(pool), engines)

	httpServer := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: server.NewHandler(server.Deps{
			Logger:      logger,
			Engines:     engines,
			Assessments: assessmentService,
			Users:       userService,
			RateLimiter: backend,
			Health: map[string]handler.Pinger{
				"postgres":  pool,
				"ratelimit": backend,
			},
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			HSTS:           cfg.Env.IsProduction(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "starting server",
			xslog.Version(),
			slog.String(keyPort, cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.InfoContext(ctx, "shutdown signal received, initiating graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if cfg.WeightsFile != "" {
		g.Go(func() error {
			watchCtx := xslog.WithLogger(gctx, logger)
			return config.WatchWeights(watchCtx, cfg.WeightsFile, func(w wellness.Weights) {
				if err := engines.SetWeights(w); err != nil {
					logger.ErrorContext(gctx, "rejected reloaded weights", xslog.Error(err))
				}
			})
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

func initBackend(ctx context.Context, cfg config.Server, logger *slog.Logger) (storage.Backend, error) {
	if cfg.Redis.URL == "" {
		logger.InfoContext(ctx, "initializing rate limiter", slog.String(keyBackend, "memory"))
		return storage.NewMemoryBackend(cfg.RateLimit.Limit, cfg.RateLimit.Burst), nil
	}

	logger.InfoContext(ctx, "initializing rate limiter", slog.String(keyBackend, "redis"))
	client, err := xredis.New(ctx, xredis.Config{
		URL:        cfg.Redis.URL,
		PoolSize:   cfg.Redis.PoolSize,
		ClientName: "wellscore-server",
	})
	if err != nil {
		return nil, err
	}

	// the sliding window admits Limit/s averaged over Window
	limit := max(1, int(math.Ceil(cfg.RateLimit.Limit*cfg.RateLimit.Window.Seconds())))
	backend, err := storage.NewRedisBackend(storage.RedisConfig{
		Client: client,
		Limit:  limit,
		Window: cfg.RateLimit.Window,
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	logger.InfoContext(ctx, "redis rate limit configured",
		slog.Int("limit", limit),
		slog.Duration("window", cfg.RateLimit.Window))
	return backend, nil
}

func initPostgres(ctx context.Context, cfg config.Server, logger *slog.Logger) (*pgxpool.Pool, error) {
	logger.InfoContext(ctx, "initializing PostgreSQL")

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	applied, err := postgres.Apply(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	if len(applied) > 0 {
		logger.InfoContext(ctx, "applied migrations", xslog.Migrations(applied))
	}

	return pool, nil
}
