package payments

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probook/probook-api/internal/core"
)

func TestProviderChargeAndConfirm(t *testing.T) {
	p, err := NewProvider(Config{})
	require.NoError(t, err)
	ctx := context.Background()

	intent, err := p.CreateChargeIntent(ctx, core.ChargeIntentParams{
		Amount:   decimal.RequireFromString("25.00"),
		Currency: "CAD",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, intent.IntentID)
	assert.NotEmpty(t, intent.ClientSecret)
	assert.NotEqual(t, intent.IntentID, intent.ClientSecret)

	status, err := p.Confirm(ctx, intent.IntentID)
	require.NoError(t, err)
	assert.Equal(t, core.IntentStatusSucceeded, status)
}

func TestProviderConfiguredOutcome(t *testing.T) {
	p, err := NewProvider(Config{Outcome: core.IntentStatusFailed})
	require.NoError(t, err)
	ctx := context.Background()

	intent, err := p.CreateChargeIntent(ctx, core.ChargeIntentParams{
		Amount: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	status, err := p.Confirm(ctx, intent.IntentID)
	require.NoError(t, err)
	assert.Equal(t, core.IntentStatusFailed, status)
}

func TestProviderRejectsBadInput(t *testing.T) {
	_, err := NewProvider(Config{Outcome: "maybe"})
	assert.Error(t, err)

	p, err := NewProvider(Config{})
	require.NoError(t, err)

	_, err = p.CreateChargeIntent(context.Background(), core.ChargeIntentParams{
		Amount: decimal.Zero,
	})
	assert.Error(t, err)

	_, err = p.Confirm(context.Background(), "pi_unknown")
	assert.Error(t, err)
}
