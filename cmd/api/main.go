package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/angelmondragon/salesdash-backend/api/controllers"
	"github.com/angelmondragon/salesdash-backend/api/routes"
	"github.com/angelmondragon/salesdash-backend/internal/reports"
	"github.com/angelmondragon/salesdash-backend/pkg/config"
	"github.com/angelmondragon/salesdash-backend/pkg/db"
	"github.com/angelmondragon/salesdash-backend/pkg/instance"
	"github.com/angelmondragon/salesdash-backend/pkg/logger"
	"github.com/angelmondragon/salesdash-backend/pkg/metrics"
	"github.com/angelmondragon/salesdash-backend/pkg/migrate"
	"github.com/angelmondragon/salesdash-backend/pkg/redis"
	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(runCtx, cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(runCtx, cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		_ = dbClient.Close()
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(runCtx, cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			_ = dbClient.Close()
			os.Exit(1)
		}
	}

	closeAll := func() {
		if err := multierr.Combine(dbClient.Close(), redisClient.Close()); err != nil {
			logg.Error(context.Background(), "error closing connections", err)
		}
	}
	defer closeAll()

	loc, err := cfg.Reports.Location()
	if err != nil {
		logg.Error(context.Background(), "invalid reporting timezone", err)
		closeAll()
		os.Exit(1)
	}

	cache, err := newSummaryCache(cfg.Reports, redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to build summary cache", err)
		closeAll()
		os.Exit(1)
	}

	repo, err := reports.NewRepository(dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to build report repository", err)
		closeAll()
		os.Exit(1)
	}

	registry := metrics.NewRegistry()
	if sqlDB, err := dbClient.SQL(); err == nil {
		if err := metrics.RegisterDBStats(registry, sqlDB, "salesdash"); err != nil {
			logg.Warn(logg.WithField(context.Background(), "error", err.Error()), "db pool metrics disabled")
		}
	}
	reportService, err := reports.NewService(repo, cache, reports.ServiceOptions{
		Metrics:  metrics.NewReportMetrics(registry),
		Logger:   logg,
		Location: loc,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create report service", err)
		closeAll()
		os.Exit(1)
	}

	// A nil *redis.Client must not reach the router as a non-nil Pinger.
	var redisPinger controllers.Pinger
	if redisClient != nil {
		redisPinger = redisClient
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":           cfg.App.Env,
		"addr":          addr,
		"cache_backend": cfg.Reports.Backend(),
		"timezone":      loc.String(),
		"instance":      instance.GetID(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, dbClient, redisPinger, reportService, registry),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			closeAll()
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}

// newSummaryCache picks the summary cache backend. The redis backend needs a
// configured Redis connection.
func newSummaryCache(cfg config.ReportsConfig, client *redis.Client) (reports.SummaryCache, error) {
	ttl := cfg.SummaryTTL
	if ttl == 0 {
		ttl = reports.DefaultSummaryTTL
	}
	if cfg.Backend() == config.CacheBackendRedis {
		if client == nil {
			return nil, errors.New("redis cache backend selected but redis is not configured")
		}
		cache, err := reports.NewRedisSummaryCache(client, ttl, nil)
		if err != nil {
			return nil, err
		}
		return cache, nil
	}
	return reports.NewMemoryCache(ttl, nil), nil
}
