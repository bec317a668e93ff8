package config

import (
	"strings"
	"time"
)

// PaymentsConfig contains payment provider configuration.
type PaymentsConfig struct {
	// Currency is the charge currency for payment intents.
	Currency string `env:"PAYMENTS_CURRENCY" envDefault:"CAD"`

	// IntentTTL is how long a quoted payment intent stays redeemable.
	IntentTTL time.Duration `env:"PAYMENTS_INTENT_TTL" envDefault:"15m"`

	// DevOutcome is the outcome the development provider reports for
	// confirmed charges: succeeded, pending, or failed.
	DevOutcome string `env:"PAYMENTS_DEV_OUTCOME" envDefault:"succeeded"`
}

// Sanitize applies guardrails to payments configuration values.
func (p *PaymentsConfig) Sanitize() {
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	if p.Currency == "" {
		p.Currency = "CAD"
	}
	if p.IntentTTL < time.Minute {
		p.IntentTTL = time.Minute
	}
	p.DevOutcome = strings.ToLower(strings.TrimSpace(p.DevOutcome))
	if p.DevOutcome == "" {
		p.DevOutcome = "succeeded"
	}
}
