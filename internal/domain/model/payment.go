package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one applied partial payment against a job. The applied amount
// is capped so the sum of a job's payments never exceeds its total price.
type Payment struct {
	ID          string          `json:"id"           db:"id"`
	JobID       string          `json:"job_id"       db:"job_id"`
	Amount      decimal.Decimal `json:"amount"       db:"amount"`
	ProviderRef string          `json:"provider_ref" db:"provider_ref"`
	CreatedAt   time.Time       `json:"created_at"   db:"created_at"`
}

// PaymentQuote is the response to a payment-intent request: the balance
// still owed and the provider intent handle to pay it with.
type PaymentQuote struct {
	JobID        string          `json:"job_id"`
	Outstanding  decimal.Decimal `json:"outstanding_amount"`
	IntentHandle string          `json:"intent_handle"`
	ClientSecret string          `json:"client_secret,omitempty"`
}

// PaymentResult is the outcome of applying a payment.
type PaymentResult struct {
	JobID         string          `json:"job_id"`
	AppliedAmount decimal.Decimal `json:"applied_amount"`
	NewBalance    decimal.Decimal `json:"new_balance"`
	FullyPaid     bool            `json:"fully_paid"`
}
