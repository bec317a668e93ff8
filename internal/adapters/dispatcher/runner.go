// Package dispatcher provides the adapter that runs the offer dispatch loop.
package dispatcher

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/data"
	"github.com/probook/probook-api/internal/observability/metrics"
	"github.com/probook/probook-api/internal/observability/statsd"
	"github.com/probook/probook-api/internal/service"
)

// Runner drives the dispatch service: it drains the outbox on a fixed tick
// and additionally whenever a job-created wake arrives over Redis pub/sub.
type Runner struct {
	dispatch *service.DispatchService
	waker    *data.RedisWaker
	interval time.Duration
	logger   *slog.Logger
	metrics  statsd.Sink
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	DB             *sql.DB
	Redis          redis.UniversalClient
	Interval       time.Duration
	MaxAttempts    int
	ConflictWindow time.Duration
	Logger         *slog.Logger
	Metrics        statsd.Sink

	// Optional dependency injections for testing/decoupling
	Jobs          core.JobRepository
	Offers        core.OfferRepository
	Outbox        core.OutboxRepository
	Professionals core.ProfessionalRepository
	Locations     core.LocationReader
}

// NewRunner creates a new dispatch runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if err := validateRunnerOptions(&opts); err != nil {
		return nil, err
	}

	dispatch := service.NewDispatchService(wireDispatchDependencies(opts))

	var waker *data.RedisWaker
	if opts.Redis != nil {
		waker = data.NewRedisWaker(opts.Redis)
	}

	return &Runner{
		dispatch: dispatch,
		waker:    waker,
		interval: opts.Interval,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}, nil
}

// validateRunnerOptions validates and sets defaults for RunnerOptions.
func validateRunnerOptions(opts *RunnerOptions) error {
	if opts.DB == nil && (opts.Jobs == nil || opts.Offers == nil ||
		opts.Outbox == nil || opts.Professionals == nil || opts.Locations == nil) {
		return errors.New("database connection is required")
	}
	if opts.Interval <= 0 {
		opts.Interval = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return nil
}

// wireDispatchDependencies wires up all dependencies for the dispatch
// service, constructing default repositories from the database connection
// where none were injected.
func wireDispatchDependencies(opts RunnerOptions) service.DispatchServiceOptions {
	jobs := opts.Jobs
	if jobs == nil {
		jobs = data.NewJobRepo(opts.DB)
	}
	offers := opts.Offers
	if offers == nil {
		offers = data.NewOfferRepo(opts.DB)
	}
	outbox := opts.Outbox
	if outbox == nil {
		outbox = data.NewOutboxRepo(opts.DB)
	}
	professionals := opts.Professionals
	if professionals == nil {
		professionals = data.NewProfessionalRepo(opts.DB)
	}
	locations := opts.Locations
	if locations == nil {
		locations = data.NewGeoRepo(opts.DB)
	}

	matcher := service.NewMatcherService(service.MatcherServiceOptions{
		Professionals:  professionals,
		Locations:      locations,
		ConflictWindow: opts.ConflictWindow,
	})

	return service.DispatchServiceOptions{
		Jobs:        jobs,
		Offers:      offers,
		Outbox:      outbox,
		Matcher:     matcher,
		MaxAttempts: opts.MaxAttempts,
		Logger:      opts.Logger,
	}
}

// Run starts the dispatch loop and runs until the context is cancelled. A
// wake message causes an immediate drain; the ticker is the fallback for
// missed wakes.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting dispatch runner", "interval", r.interval)

	wakes := r.subscribe(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "dispatch runner stopping", "reason", ctx.Err())
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case <-wakes:
			r.tick(ctx)

		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

// subscribe opens the wake subscription, or returns a nil channel (never
// ready) when no Redis client was configured.
func (r *Runner) subscribe(ctx context.Context) <-chan *redis.Message {
	if r.waker == nil {
		return nil
	}
	sub := r.waker.Subscribe(ctx)
	go func() {
		<-ctx.Done()
		_ = sub.Close()
	}()
	return sub.Channel()
}

func (r *Runner) tick(ctx context.Context) {
	start := time.Now()
	handled, err := r.drain(ctx)
	elapsed := time.Since(start)

	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	} else if handled == 0 {
		result = metrics.ResultNoop
	}
	metrics.EmitDispatchTick(r.metrics, metrics.DispatchTick{
		Result:       result,
		TasksHandled: handled,
		Duration:     elapsed,
		Err:          err,
	})

	if err != nil && ctx.Err() == nil {
		r.logger.ErrorContext(ctx, "dispatch tick error", "error", err)
	}
}

// drain processes outbox tasks until none remain. Individual task failures
// are recorded on the task; the loop keeps going so one bad job cannot
// block the queue.
func (r *Runner) drain(ctx context.Context) (handled int, err error) {
	for {
		claimed, runErr := r.dispatch.RunOnce(ctx)
		if runErr != nil && ctx.Err() != nil {
			return handled, ctx.Err()
		}
		if runErr != nil {
			err = runErr
		}
		if !claimed {
			return handled, err
		}
		handled++
	}
}
