package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - database.go: Database and Redis configuration
//   - http.go: HTTP server configuration
//   - services.go: Service mode, dispatch, and reaper configuration
//   - payments.go: Payment provider configuration
//   - observability.go: Metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior. Set DEV=true for
	// development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Services is a comma-delimited list of enabled services.
	// Valid values: http, dispatcher, reaper
	Services string `env:"SERVICES" envDefault:"http,dispatcher,reaper"`

	// Dispatch configuration (offer fan-out loop)
	Dispatch DispatchConfig

	// Reaper configuration (offer expiry loop)
	Reaper ReaperConfig

	// Payments configuration
	Payments PaymentsConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Dispatch.Sanitize()
	c.Reaper.Sanitize()
	c.Payments.Sanitize()
	c.Observability.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks both DEV and APP_ENV environment variables.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		appEnv := strings.ToLower(os.Getenv("APP_ENV"))
		c.IsDev = appEnv == "development" || appEnv == "dev"
	}
}

// GetEnabledServices returns the enabled services based on the Services field.
func (c *AppConfig) GetEnabledServices() (map[ServiceMode]bool, error) {
	return ParseServices(c.Services)
}

// IsHTTPServerEnabled returns true if the HTTP server service is enabled.
func (c *AppConfig) IsHTTPServerEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeHTTP]
}

// IsDispatcherEnabled returns true if the offer dispatch service is enabled.
func (c *AppConfig) IsDispatcherEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeDispatcher]
}

// IsReaperEnabled returns true if the offer expiry service is enabled.
func (c *AppConfig) IsReaperEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeReaper]
}
