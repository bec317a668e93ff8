package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/probook/probook-api/config"
	"github.com/probook/probook-api/internal/adapters/dispatcher"
	"github.com/probook/probook-api/internal/adapters/reaper"
	"github.com/probook/probook-api/internal/observability/statsd"
)

// DispatcherConfig contains configuration for the dispatch runner.
type DispatcherConfig struct {
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Config      config.DispatchConfig
	Logger      *slog.Logger
	Metrics     statsd.Sink
}

// RunDispatcher starts the offer dispatch service and blocks until the
// context is cancelled.
func RunDispatcher(ctx context.Context, cfg DispatcherConfig) error {
	runner, err := dispatcher.NewRunner(dispatcher.RunnerOptions{
		DB:             cfg.DB,
		Redis:          cfg.RedisClient,
		Interval:       cfg.Config.Interval,
		MaxAttempts:    cfg.Config.MaxAttempts,
		ConflictWindow: cfg.Config.ConflictWindow,
		Logger:         cfg.Logger,
		Metrics:        cfg.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create dispatch runner: %w", err)
	}

	return runner.Run(ctx)
}

// ReaperConfig contains configuration for the offer expiry runner.
type ReaperConfig struct {
	DB      *sql.DB
	Config  config.ReaperConfig
	Logger  *slog.Logger
	Metrics statsd.Sink
}

// RunReaper starts the offer expiry service and blocks until the context
// is cancelled.
func RunReaper(ctx context.Context, cfg ReaperConfig) error {
	runner, err := reaper.NewRunner(reaper.RunnerOptions{
		DB:       cfg.DB,
		MaxAge:   cfg.Config.OfferMaxAge,
		Interval: cfg.Config.Interval,
		Logger:   cfg.Logger,
		Metrics:  cfg.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create offer expiry runner: %w", err)
	}

	return runner.Run(ctx)
}
