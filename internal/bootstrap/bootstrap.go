// Package bootstrap builds the scheduling engine and its optional event sinks
// from configuration.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hackgods/clinic-scheduling/internal/appointment"
	"github.com/hackgods/clinic-scheduling/internal/config"
	"github.com/hackgods/clinic-scheduling/internal/db"
	"github.com/hackgods/clinic-scheduling/internal/directory"
	redisclient "github.com/hackgods/clinic-scheduling/internal/redis"
)

type App struct {
	Config  config.Config
	Logger  *zap.Logger
	Service *appointment.Service

	// nil unless configured
	PgPool *pgxpool.Pool
	Redis  *redis.Client
}

// New loads the provider directory and connects the configured sinks.
// Postgres and Redis are each enabled only when their address is set. A
// directory that fails to load leaves the engine running with no providers;
// only sink connection failures are returned.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	dir, _, err := directory.LoadFile(cfg.ProvidersFile, logger)
	if err != nil {
		// bookings are rejected until providers are loaded
		logger.Error("load providers failed, starting with an empty directory",
			zap.String("file", cfg.ProvidersFile),
			zap.Error(err),
		)
		dir = directory.New()
	}

	app := &App{Config: cfg, Logger: logger}
	var sinks appointment.MultiSink

	if cfg.PostgresDSN != "" {
		pgCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		pool, err := db.ConnectPostgres(pgCtx, cfg.PostgresDSN, cfg.PgMaxConns)
		if err != nil {
			return nil, fmt.Errorf("postgres connection: %w", err)
		}
		app.PgPool = pool

		store := appointment.NewPgEventStore(pool)
		if err := store.EnsureSchema(pgCtx); err != nil {
			app.Close()
			return nil, err
		}
		sinks = append(sinks, store)
		logger.Info("postgres event log enabled")
	}

	if cfg.RedisAddr != "" {
		rdb, err := redisclient.Connect(ctx, cfg)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("redis connection: %w", err)
		}
		app.Redis = rdb
		sinks = append(sinks, redisclient.NewStreamPublisher(rdb, cfg.EventStream))
		logger.Info("redis event stream enabled", zap.String("stream", cfg.EventStream))
	}

	var sink appointment.EventSink = appointment.NopSink{}
	if len(sinks) > 0 {
		sink = sinks
	}
	app.Service = appointment.NewService(dir, sink, cfg, logger)

	logger.Info("scheduling engine ready",
		zap.Int("providers", dir.Len()),
		zap.Int("technicians", len(app.Service.Rotation())),
		zap.String("timeslots", cfg.Timeslots.Name()),
	)
	return app, nil
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Warn("error closing redis", zap.Error(err))
		}
	}
	if a.PgPool != nil {
		a.PgPool.Close()
	}
}
