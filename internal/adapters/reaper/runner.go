// Package reaper provides the adapter that expires stale offers.
package reaper

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/data"
	"github.com/probook/probook-api/internal/observability/metrics"
	"github.com/probook/probook-api/internal/observability/statsd"
	"github.com/probook/probook-api/internal/service"
)

// Runner periodically expires offers that went unanswered past the
// configured age, so jobs do not accumulate answerable offers forever.
type Runner struct {
	offers   *service.OfferService
	maxAge   time.Duration
	interval time.Duration
	logger   *slog.Logger
	metrics  statsd.Sink
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	DB       *sql.DB
	MaxAge   time.Duration
	Interval time.Duration
	Logger   *slog.Logger
	Metrics  statsd.Sink

	// Optional dependency injections for testing/decoupling
	Offers        core.OfferRepository
	Professionals core.ProfessionalRepository
}

// NewRunner creates a new offer expiry runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if err := validateRunnerOptions(&opts); err != nil {
		return nil, err
	}

	offers := opts.Offers
	if offers == nil {
		offers = data.NewOfferRepo(opts.DB)
	}
	professionals := opts.Professionals
	if professionals == nil {
		professionals = data.NewProfessionalRepo(opts.DB)
	}

	svc := service.NewOfferService(service.OfferServiceOptions{
		Offers:        offers,
		Professionals: professionals,
		Logger:        opts.Logger,
	})

	return &Runner{
		offers:   svc,
		maxAge:   opts.MaxAge,
		interval: opts.Interval,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}, nil
}

// validateRunnerOptions validates and sets defaults for RunnerOptions.
func validateRunnerOptions(opts *RunnerOptions) error {
	if opts.DB == nil && opts.Offers == nil {
		return errors.New("database connection is required")
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = 72 * time.Hour
	}
	if opts.Interval <= 0 {
		opts.Interval = 10 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return nil
}

// Run starts the expiry loop and runs until the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting offer expiry runner",
		"interval", r.interval, "max_age", r.maxAge)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case <-ticker.C:
			expired, err := r.offers.ExpireStale(ctx, r.maxAge)
			metrics.EmitOffersExpired(r.metrics, expired, err)
			if err != nil && ctx.Err() == nil {
				r.logger.ErrorContext(ctx, "offer expiry sweep failed", "error", err)
			}
		}
	}
}
