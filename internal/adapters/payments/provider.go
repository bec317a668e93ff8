// Package payments provides a config-driven PaymentProvider for local
// development and tests. It short-circuits the real charge flow: intents
// are held in memory and confirm to a configured outcome.
package payments

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/probook/probook-api/internal/core"
)

// Config controls the dev payment provider behavior.
type Config struct {
	// Outcome is what Confirm reports for every intent. Defaults to
	// succeeded.
	Outcome core.IntentStatus
}

// Provider implements core.PaymentProvider for local development. Intents
// live in process memory, so a restart forgets them the same way an expired
// provider intent would.
type Provider struct {
	outcome core.IntentStatus

	mu      sync.Mutex
	intents map[string]core.ChargeIntentParams
}

// NewProvider constructs a dev payment provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	outcome := cfg.Outcome
	if outcome == "" {
		outcome = core.IntentStatusSucceeded
	}
	switch outcome {
	case core.IntentStatusSucceeded, core.IntentStatusPending, core.IntentStatusFailed:
	default:
		return nil, fmt.Errorf("dev payments: unknown outcome %q", outcome)
	}
	return &Provider{
		outcome: outcome,
		intents: make(map[string]core.ChargeIntentParams),
	}, nil
}

// CreateChargeIntent registers a charge and returns a locally generated
// intent handle and client secret.
func (p *Provider) CreateChargeIntent(
	_ context.Context,
	params core.ChargeIntentParams,
) (*core.ChargeIntent, error) {
	if !params.Amount.IsPositive() {
		return nil, errors.New("dev payments: amount must be positive")
	}

	id, err := randomToken("pi_dev_")
	if err != nil {
		return nil, fmt.Errorf("generate intent id: %w", err)
	}
	secret, err := randomToken("cs_dev_")
	if err != nil {
		return nil, fmt.Errorf("generate client secret: %w", err)
	}

	p.mu.Lock()
	p.intents[id] = params
	p.mu.Unlock()

	return &core.ChargeIntent{IntentID: id, ClientSecret: secret}, nil
}

// Confirm reports the configured outcome for a known intent. Unknown
// intents are an error, matching a real provider rejecting a bad reference.
func (p *Provider) Confirm(_ context.Context, intentID string) (core.IntentStatus, error) {
	p.mu.Lock()
	_, ok := p.intents[intentID]
	p.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("dev payments: unknown intent %q", intentID)
	}
	return p.outcome, nil
}

func randomToken(prefix string) (string, error) {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return prefix + base64.RawURLEncoding.EncodeToString(buf), nil
}
