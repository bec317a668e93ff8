package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/probook/probook-api/config"
	"github.com/probook/probook-api/internal/adapters/payments"
	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/data"
	"github.com/probook/probook-api/internal/observability/statsd"
	"github.com/probook/probook-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Jobs            *service.JobService
	Offers          *service.OfferService
	UnitAdjustments *service.UnitAdjustmentService
	Payments        *service.PaymentService
	Observability   ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	Jobs          *data.JobRepo
	Offers        *data.OfferRepo
	UnitRequests  *data.UnitRequestRepo
	Payments      *data.PaymentRepo
	Professionals *data.ProfessionalRepo
}

func newServiceRepositories(db *sql.DB) serviceRepositories {
	return serviceRepositories{
		Jobs:          data.NewJobRepo(db),
		Offers:        data.NewOfferRepo(db),
		UnitRequests:  data.NewUnitRequestRepo(db),
		Payments:      data.NewPaymentRepo(db),
		Professionals: data.NewProfessionalRepo(db),
	}
}

// BuildObservability initializes the shared metrics sink.
func BuildObservability(cfg config.ObservabilityConfig, logger *slog.Logger) ObservabilityContainer {
	obsLogger := logger
	if obsLogger == nil {
		obsLogger = slog.Default()
	}

	var metricsSink *statsd.Client
	if cfg.Metrics.IsEnabled() {
		client, err := statsd.NewClient(statsd.Config{
			Enabled: true,
			Address: cfg.Metrics.StatsdAddress,
			Prefix:  cfg.Metrics.StatsdPrefix,
			Logger:  obsLogger,
		})
		if err != nil {
			obsLogger.Error("failed to initialise statsd client", "error", err)
		} else {
			metricsSink = client
		}
	}

	return ObservabilityContainer{
		MetricsSink:   metricsSink,
		MetricsConfig: cfg.Metrics,
	}
}

// BuildServices wires repositories, providers, and services for the HTTP
// surface. The dispatcher and reaper runners wire their own repositories.
func BuildServices(deps ServiceDeps) (ServiceContainer, error) {
	if deps.Config == nil {
		return ServiceContainer{}, errors.New("config is required")
	}
	if deps.DB == nil {
		return ServiceContainer{}, errors.New("database is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repos := newServiceRepositories(deps.DB)

	var waker core.DispatchWaker
	var intents core.IntentCache
	if deps.RedisClient != nil {
		waker = data.NewRedisWaker(deps.RedisClient)
		intents = data.NewRedisIntentCache(deps.RedisClient)
	}
	if intents == nil {
		return ServiceContainer{}, errors.New("redis is required for the payment intent cache")
	}

	provider, err := payments.NewProvider(payments.Config{
		Outcome: core.IntentStatus(deps.Config.Payments.DevOutcome),
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create payment provider: %w", err)
	}

	container := ServiceContainer{
		Jobs: service.NewJobService(service.JobServiceOptions{
			Jobs:          repos.Jobs,
			Professionals: repos.Professionals,
			Waker:         waker,
			Logger:        logger,
		}),
		Offers: service.NewOfferService(service.OfferServiceOptions{
			Offers:        repos.Offers,
			Professionals: repos.Professionals,
			Logger:        logger,
		}),
		UnitAdjustments: service.NewUnitAdjustmentService(service.UnitAdjustmentServiceOptions{
			UnitRequests:  repos.UnitRequests,
			Jobs:          repos.Jobs,
			Professionals: repos.Professionals,
			Logger:        logger,
		}),
		Payments: service.NewPaymentService(service.PaymentServiceOptions{
			Payments:  repos.Payments,
			Jobs:      repos.Jobs,
			Provider:  provider,
			Intents:   intents,
			IntentTTL: deps.Config.Payments.IntentTTL,
			Currency:  deps.Config.Payments.Currency,
			Logger:    logger,
		}),
		Observability: BuildObservability(deps.Config.Observability, logger),
	}

	return container, nil
}

// ServiceOrchestrationConfig contains configuration for service orchestration.
type ServiceOrchestrationConfig struct {
	Config      *config.AppConfig
	Services    ServiceContainer
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

const (
	// shutdownWaitTimeout is the maximum time to wait for services to stop gracefully.
	shutdownWaitTimeout = 15 * time.Second
)

// serviceStartupDeps groups dependencies for service startup.
type serviceStartupDeps struct {
	ctx             context.Context
	cfg             *ServiceOrchestrationConfig
	logger          *slog.Logger
	enabledServices map[config.ServiceMode]bool
	errCh           chan error
}

// backgroundService describes a startable background component.
type backgroundService struct {
	mode  config.ServiceMode
	name  string
	start func(context.Context) error
}

// backgroundServiceHandle tracks a running background service.
type backgroundServiceHandle struct {
	mode config.ServiceMode
	name string
	done <-chan struct{}
}

// startHTTPServerIfEnabled starts the HTTP server if enabled.
func startHTTPServerIfEnabled(deps *serviceStartupDeps) *http.Server {
	if deps == nil || deps.cfg == nil || !deps.enabledServices[config.ServiceModeHTTP] {
		return nil
	}
	return StartHTTPServer(&HTTPServerConfig{
		Config:   deps.cfg.Config,
		Services: deps.cfg.Services,
		Logger:   deps.logger,
	})
}

func launchBackground(ctx context.Context, deps *serviceStartupDeps, descriptor backgroundService) <-chan struct{} {
	if deps == nil || !deps.enabledServices[descriptor.mode] {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := descriptor.start(ctx); err != nil {
			errMsg := fmt.Errorf("%s failed: %w", descriptor.name, err)
			select {
			case deps.errCh <- errMsg:
			case <-ctx.Done():
			default:
				deps.logger.WarnContext(ctx, "dropping background service error",
					"service", descriptor.name, "error", errMsg)
			}
		}
	}()

	deps.logger.InfoContext(ctx, "background service started",
		"service", descriptor.name, "mode", descriptor.mode)

	return done
}

func startBackgroundServices(deps *serviceStartupDeps, services []backgroundService) []backgroundServiceHandle {
	if deps == nil {
		return nil
	}
	handles := make([]backgroundServiceHandle, 0, len(services))

	for _, svc := range services {
		done := launchBackground(deps.ctx, deps, svc)
		if done == nil {
			continue
		}

		handles = append(handles, backgroundServiceHandle{
			mode: svc.mode,
			name: svc.name,
			done: done,
		})
	}

	return handles
}

func newDispatcherBackgroundService(deps *serviceStartupDeps) backgroundService {
	return backgroundService{
		mode: config.ServiceModeDispatcher,
		name: "dispatcher",
		start: func(ctx context.Context) error {
			if deps == nil || deps.cfg == nil {
				return nil
			}
			var dispatchCfg config.DispatchConfig
			if deps.cfg.Config != nil {
				dispatchCfg = deps.cfg.Config.Dispatch
			}
			return RunDispatcher(ctx, DispatcherConfig{
				DB:          deps.cfg.DB,
				RedisClient: deps.cfg.RedisClient,
				Config:      dispatchCfg,
				Logger:      deps.logger,
				Metrics:     deps.cfg.Services.Observability.MetricsSink,
			})
		},
	}
}

func newReaperBackgroundService(deps *serviceStartupDeps) backgroundService {
	return backgroundService{
		mode: config.ServiceModeReaper,
		name: "reaper",
		start: func(ctx context.Context) error {
			if deps == nil || deps.cfg == nil {
				return nil
			}
			var reaperCfg config.ReaperConfig
			if deps.cfg.Config != nil {
				reaperCfg = deps.cfg.Config.Reaper
			}
			return RunReaper(ctx, ReaperConfig{
				DB:      deps.cfg.DB,
				Config:  reaperCfg,
				Logger:  deps.logger,
				Metrics: deps.cfg.Services.Observability.MetricsSink,
			})
		},
	}
}

func buildBackgroundServices(deps *serviceStartupDeps) []backgroundService {
	if deps == nil {
		return nil
	}
	return []backgroundService{
		newDispatcherBackgroundService(deps),
		newReaperBackgroundService(deps),
	}
}

// ServiceStartupResult holds the results of starting all services.
type ServiceStartupResult struct {
	HTTPServer *http.Server
	Background []backgroundServiceHandle
}

// startServices starts all enabled services and returns their completion channels.
func startServices(deps *serviceStartupDeps) ServiceStartupResult {
	return ServiceStartupResult{
		HTTPServer: startHTTPServerIfEnabled(deps),
		Background: startBackgroundServices(deps, buildBackgroundServices(deps)),
	}
}

// RunServicesWithShutdown starts all enabled services and manages their lifecycle.
// This function blocks until a shutdown signal is received or a service fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	ctx := context.Background()
	serviceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}

	// Determine which services are enabled
	enabledServices, err := cfg.Config.GetEnabledServices()
	if err != nil {
		return fmt.Errorf("determine enabled services: %w", err)
	}
	errCh := make(chan error, errorChannelBufferSize(enabledServices))

	// Start all enabled services
	result := startServices(&serviceStartupDeps{
		ctx:             serviceCtx,
		cfg:             cfg,
		logger:          logger,
		enabledServices: enabledServices,
		errCh:           errCh,
	})

	// Wait for shutdown signal or error
	return waitForShutdown(shutdownDeps{
		ctx:         serviceCtx,
		cancel:      cancel,
		errCh:       errCh,
		httpServer:  result.HTTPServer,
		logger:      logger,
		backgrounds: result.Background,
	})
}

func errorChannelCapacity(enabled map[config.ServiceMode]bool) int {
	modes := []config.ServiceMode{
		config.ServiceModeHTTP,
		config.ServiceModeDispatcher,
		config.ServiceModeReaper,
	}

	count := 0
	for _, mode := range modes {
		if enabled[mode] {
			count++
		}
	}
	return count
}

func errorChannelBufferSize(enabled map[config.ServiceMode]bool) int {
	size := errorChannelCapacity(enabled) + 1
	if size < 1 {
		return 1
	}
	return size
}

// shutdownDeps contains dependencies for graceful shutdown.
type shutdownDeps struct {
	ctx         context.Context
	cancel      context.CancelFunc
	errCh       <-chan error
	httpServer  *http.Server
	logger      *slog.Logger
	backgrounds []backgroundServiceHandle
}

// waitForShutdown waits for shutdown signal or service error.
func waitForShutdown(deps shutdownDeps) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		deps.logger.Info("shutting down services...")
		deps.cancel() // Cancel service context before waiting
		return gracefulStop(deps)
	case err := <-deps.errCh:
		deps.logger.Error("service error", "error", err)
		deps.cancel() // Cancel service context before waiting
		if stopErr := gracefulStop(deps); stopErr != nil {
			deps.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop attempts to gracefully stop all services.
func gracefulStop(deps shutdownDeps) error {
	// Gracefully stop HTTP server if running
	if deps.httpServer != nil {
		if err := ShutdownHTTPServer(ShutdownConfig{
			Context: context.Background(),
			Server:  deps.httpServer,
			Timeout: shutdownWaitTimeout,
			Logger:  deps.logger,
		}); err != nil {
			return err
		}
	}

	// Wait for background services to finish
	for _, svc := range deps.backgrounds {
		waitForService(svc.done, svc.name, deps.logger)
	}

	return nil
}

// waitForService waits for a service to finish with timeout.
func waitForService(done <-chan struct{}, name string, logger *slog.Logger) {
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info(name + " stopped")
	case <-time.After(shutdownWaitTimeout):
		logger.Warn("timeout waiting for " + name + " to stop")
	}
}
