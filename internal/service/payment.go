package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
	"github.com/probook/probook-api/internal/money"
)

const (
	// DefaultIntentTTL is how long a quoted payment intent stays redeemable.
	DefaultIntentTTL = 15 * time.Minute
	// DefaultCurrency is the charge currency when none is configured.
	DefaultCurrency = "CAD"
)

// PaymentServiceOptions groups dependencies for PaymentService.
type PaymentServiceOptions struct {
	Payments core.PaymentRepository
	Jobs     core.JobRepository
	Provider core.PaymentProvider
	Intents  core.IntentCache

	IntentTTL time.Duration
	Currency  string
	Logger    *slog.Logger
}

// PaymentService runs the two-step payment flow: Quote prepares a charge
// intent with the provider and caches it under an opaque handle, Apply
// confirms the charge and accrues it against the job. Provider calls happen
// outside any database transaction.
type PaymentService struct {
	payments core.PaymentRepository
	jobs     core.JobRepository
	provider core.PaymentProvider
	intents  core.IntentCache

	intentTTL time.Duration
	currency  string
	logger    *slog.Logger
}

// NewPaymentService constructs a new PaymentService.
func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.IntentTTL
	if ttl <= 0 {
		ttl = DefaultIntentTTL
	}
	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return &PaymentService{
		payments:  opts.Payments,
		jobs:      opts.Jobs,
		provider:  opts.Provider,
		intents:   opts.Intents,
		intentTTL: ttl,
		currency:  currency,
		logger:    logger,
	}
}

// Quote prepares a charge intent for a job's outstanding balance. A zero
// amount quotes the full balance; a positive amount is capped at it. The
// returned handle redeems the intent through Apply until the quote expires.
func (s *PaymentService) Quote(
	ctx context.Context,
	ownerID, jobID string,
	amount decimal.Decimal,
) (*model.PaymentQuote, error) {
	if amount.IsNegative() {
		return nil, apperrors.ValidationField("amount", "amount must not be negative")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != ownerID {
		return nil, apperrors.NotFoundf("job %s not found", jobID)
	}
	if job.Status.Terminal() {
		return nil, apperrors.Precondition("job is settled and cannot be paid", string(job.Status))
	}

	outstanding := money.Outstanding(job.TotalPrice, job.PaidAmount)
	if outstanding.IsZero() {
		return nil, apperrors.Precondition("job is already fully paid", string(job.Status))
	}
	charge := outstanding
	if amount.IsPositive() {
		charge = money.Clamp(money.Round2(amount), money.Zero, outstanding)
	}

	intent, err := s.provider.CreateChargeIntent(ctx, core.ChargeIntentParams{
		Amount:   charge,
		Currency: s.currency,
		Metadata: map[string]string{"job_id": job.ID},
	})
	if err != nil {
		return nil, apperrors.Upstream(err, "payment provider rejected the charge intent")
	}

	handle := uuid.New().String()
	err = s.intents.Put(ctx, handle, core.QuotedIntent{
		JobID:    job.ID,
		OwnerID:  ownerID,
		Amount:   charge,
		IntentID: intent.IntentID,
	}, s.intentTTL)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "payment quoted",
		"job_id", job.ID, "amount", charge.String(), "intent_id", intent.IntentID)
	return &model.PaymentQuote{
		JobID:        job.ID,
		Outstanding:  outstanding,
		IntentHandle: handle,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// Apply redeems a quoted intent: it confirms the charge with the provider
// and, once the provider reports success, accrues the amount against the
// job. The provider reference makes re-applying the same intent a conflict.
func (s *PaymentService) Apply(ctx context.Context, ownerID, handle string) (*model.PaymentResult, error) {
	intent, err := s.intents.Get(ctx, handle)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, apperrors.NotFound("payment intent not found or expired")
	}
	if intent.OwnerID != ownerID {
		return nil, apperrors.NotFound("payment intent not found or expired")
	}

	status, err := s.provider.Confirm(ctx, intent.IntentID)
	if err != nil {
		return nil, apperrors.Upstream(err, "payment provider confirmation failed")
	}
	switch status {
	case core.IntentStatusSucceeded:
	case core.IntentStatusPending:
		return nil, apperrors.PaymentRequired("charge has not settled yet")
	default:
		return nil, apperrors.PaymentRequired("charge did not clear")
	}

	result, err := s.payments.Apply(ctx, core.ApplyPaymentParams{
		JobID:       intent.JobID,
		OwnerID:     ownerID,
		Amount:      intent.Amount,
		ProviderRef: intent.IntentID,
	})
	if err != nil {
		return nil, err
	}

	if derr := s.intents.Delete(ctx, handle); derr != nil {
		s.logger.WarnContext(ctx, "failed to evict applied intent",
			"handle", handle, "error", derr)
	}
	s.logger.InfoContext(ctx, "payment applied",
		"job_id", result.JobID, "applied", result.AppliedAmount.String(),
		"balance", result.NewBalance.String(), "fully_paid", result.FullyPaid)
	return result, nil
}

// ListForJob returns a job's applied payments, oldest first. Only the owner
// may see them.
func (s *PaymentService) ListForJob(ctx context.Context, ownerID, jobID string) ([]*model.Payment, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != ownerID {
		return nil, apperrors.NotFoundf("job %s not found", jobID)
	}
	return s.payments.ListForJob(ctx, jobID)
}
