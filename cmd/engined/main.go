// Command engined runs the recommendation engine as a long-lived
// process: it connects the interaction store and the result cache,
// applies migrations for the engine-owned feedback table, and serves
// metrics and health endpoints. The engine itself is request-driven;
// callers reach it through the Service API wired here.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"reco-engine/internal/config"
	"reco-engine/internal/infra/adapter/persistence/postgres"
	infcache "reco-engine/internal/infra/cache"
	"reco-engine/internal/infra/db"
	"reco-engine/internal/observability/logging"
	"reco-engine/internal/observability/tracing"
	"reco-engine/internal/repository"
	"reco-engine/internal/usecase/reco"
	pkgconfig "reco-engine/pkg/config"
)

func main() {
	logger := newLogger()
	slog.SetDefault(logger)

	shutdownTracing := tracing.InitTracerProvider()
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := loadEngineConfig(logger)
	resultCache := openCache(ctx, logger)

	svc := reco.NewService(
		postgres.NewInteractionRepo(database),
		postgres.NewFeedbackRepo(database),
		infcache.NewBreakerCache(resultCache),
		cfg,
		logger,
	)
	logger.Info("recommendation engine initialized",
		slog.Float64("collaborative_weight", cfg.CollaborativeWeight),
		slog.Float64("content_weight", cfg.ContentWeight),
		slog.Float64("trending_weight", cfg.TrendingWeight))

	startMetricsServer(ctx, logger, svc)

	// Block until interrupted.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	received := <-sig
	logger.Info("shutdown signal received", slog.String("signal", received.String()))
	cancel()
}

// newLogger selects the log output format. JSON is the default;
// LOG_FORMAT=text switches to the human-readable form for local runs.
func newLogger() *slog.Logger {
	if pkgconfig.GetEnvString("LOG_FORMAT", "json") == "text" {
		return logging.NewTextLogger()
	}
	return logging.NewLogger()
}

// loadEngineConfig reads the optional tuning file named by ENGINE_CONFIG.
// Missing file means engine defaults; a present but invalid file is a
// startup failure.
func loadEngineConfig(logger *slog.Logger) reco.Config {
	path := pkgconfig.GetEnvString("ENGINE_CONFIG", "")
	if path == "" {
		return reco.DefaultConfig()
	}
	fileCfg, err := config.LoadEngineConfig(path)
	if err != nil {
		logger.Error("failed to load engine config", slog.String("path", path), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("engine config loaded", slog.String("path", path))
	return fileCfg.ToRecoConfig()
}

// openCache connects Redis when REDIS_ADDR is set, otherwise falls back
// to the in-process cache. The fallback keeps single-instance
// deployments working without a cache server; it shares nothing across
// instances.
func openCache(ctx context.Context, logger *slog.Logger) repository.Cache {
	addr := pkgconfig.GetEnvString("REDIS_ADDR", "")
	if addr == "" {
		logger.Info("REDIS_ADDR not set, using in-process cache")
		return infcache.NewMemoryCache()
	}
	password := pkgconfig.GetEnvString("REDIS_PASSWORD", "")
	dbIndex := pkgconfig.GetEnvInt("REDIS_DB", 0)

	redisCache, err := infcache.OpenRedis(ctx, addr, password, dbIndex)
	if err != nil {
		logger.Error("failed to connect to redis", slog.String("addr", addr), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("redis cache connected", slog.String("addr", addr))
	return redisCache
}
