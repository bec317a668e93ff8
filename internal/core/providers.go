package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ChargeIntentParams describes a charge to be prepared with the payment
// provider.
type ChargeIntentParams struct {
	Amount   decimal.Decimal
	Currency string
	// Metadata is attached to the provider object for reconciliation.
	Metadata map[string]string
}

// ChargeIntent is the provider's handle for a prepared charge.
type ChargeIntent struct {
	IntentID     string
	ClientSecret string
}

// IntentStatus is the provider-reported state of a charge intent.
type IntentStatus string

const (
	// IntentStatusSucceeded indicates the charge cleared.
	IntentStatusSucceeded IntentStatus = "succeeded"
	// IntentStatusPending indicates the charge is still processing.
	IntentStatusPending IntentStatus = "pending"
	// IntentStatusFailed indicates the charge did not clear.
	IntentStatusFailed IntentStatus = "failed"
)

// PaymentProvider is the opaque charge API consumed by the payment
// reconciler. The provider-specific integration lives behind this port and
// is never called while holding a job row lock.
type PaymentProvider interface {
	CreateChargeIntent(ctx context.Context, params ChargeIntentParams) (*ChargeIntent, error)
	Confirm(ctx context.Context, intentID string) (IntentStatus, error)
}

// QuotedIntent is what the intent cache stores between quoting and applying
// a payment.
type QuotedIntent struct {
	JobID    string          `json:"job_id"`
	OwnerID  string          `json:"owner_id"`
	Amount   decimal.Decimal `json:"amount"`
	IntentID string          `json:"intent_id"`
}

// IntentCache holds quoted payment intents keyed by handle until they are
// applied or expire.
type IntentCache interface {
	Put(ctx context.Context, handle string, intent QuotedIntent, ttl time.Duration) error
	Get(ctx context.Context, handle string) (*QuotedIntent, error)
	Delete(ctx context.Context, handle string) error
}

// DispatchWaker nudges the dispatch runner after a job is created so offer
// fan-out does not wait for the next poll tick. Best effort.
type DispatchWaker interface {
	Wake(ctx context.Context) error
}
