package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ServiceMode represents the available service modes.
type ServiceMode string

const (
	// ServiceModeHTTP runs the HTTP API server.
	ServiceModeHTTP ServiceMode = "http"
	// ServiceModeDispatcher runs the offer dispatch loop.
	ServiceModeDispatcher ServiceMode = "dispatcher"
	// ServiceModeReaper runs the offer expiry loop.
	ServiceModeReaper ServiceMode = "reaper"
)

// ValidServiceModes returns all valid service mode names.
func ValidServiceModes() []ServiceMode {
	return []ServiceMode{
		ServiceModeHTTP,
		ServiceModeDispatcher,
		ServiceModeReaper,
	}
}

// ParseServices parses a comma-delimited string of service names and returns
// the enabled services. It validates that all service names are valid and
// returns an error if any are invalid.
func ParseServices(servicesStr string) (map[ServiceMode]bool, error) {
	services := make(map[ServiceMode]bool)

	if servicesStr == "" {
		return services, errors.New("at least one service must be specified")
	}

	parts := strings.Split(servicesStr, ",")
	for _, part := range parts {
		serviceName := strings.TrimSpace(part)
		if serviceName == "" {
			continue
		}

		mode := ServiceMode(serviceName)
		switch mode {
		case ServiceModeHTTP, ServiceModeDispatcher, ServiceModeReaper:
			services[mode] = true
		default:
			return nil, fmt.Errorf(
				"invalid service name: %q (valid options: http, dispatcher, reaper)",
				serviceName,
			)
		}
	}

	if len(services) == 0 {
		return nil, errors.New("at least one valid service must be specified")
	}

	return services, nil
}

// DispatchConfig contains offer dispatch service configuration.
type DispatchConfig struct {
	// Interval is the dispatch tick interval. Redis wakes shortcut the
	// wait; the ticker is the fallback.
	Interval time.Duration `env:"DISPATCH_INTERVAL" envDefault:"5s"`

	// MaxAttempts is how many times a dispatch task is retried before
	// being parked as failed.
	MaxAttempts int `env:"DISPATCH_MAX_ATTEMPTS" envDefault:"5"`

	// ConflictWindow is the assumed duration of a job when excluding
	// professionals with overlapping scheduled work from matching.
	ConflictWindow time.Duration `env:"DISPATCH_CONFLICT_WINDOW" envDefault:"4h"`
}

// Sanitize applies guardrails to dispatch configuration values.
func (d *DispatchConfig) Sanitize() {
	if d.Interval < time.Second {
		d.Interval = time.Second
	}
	if d.MaxAttempts < 1 {
		d.MaxAttempts = 1
	}
	if d.ConflictWindow < 0 {
		d.ConflictWindow = 0
	}
}

// ReaperConfig contains offer expiry service configuration.
type ReaperConfig struct {
	// Interval is the expiry sweep interval.
	Interval time.Duration `env:"REAPER_INTERVAL" envDefault:"10m"`

	// OfferMaxAge is how long a sent or viewed offer stays answerable
	// before the sweep expires it.
	OfferMaxAge time.Duration `env:"REAPER_OFFER_MAX_AGE" envDefault:"72h"`
}

// Sanitize applies guardrails to reaper configuration values.
func (r *ReaperConfig) Sanitize() {
	if r.Interval < time.Minute {
		r.Interval = time.Minute
	}
	if r.OfferMaxAge < time.Hour {
		r.OfferMaxAge = time.Hour
	}
}
