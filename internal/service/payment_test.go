package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
	"github.com/probook/probook-api/internal/mocks"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type paymentHarness struct {
	jobs     *mocks.MockJobRepository
	payments *mocks.MockPaymentRepository
	provider *mocks.MockPaymentProvider
	intents  *mocks.MockIntentCache
	svc      *PaymentService
}

func newPaymentHarness(t *testing.T) *paymentHarness {
	ctrl := gomock.NewController(t)
	h := &paymentHarness{
		jobs:     mocks.NewMockJobRepository(ctrl),
		payments: mocks.NewMockPaymentRepository(ctrl),
		provider: mocks.NewMockPaymentProvider(ctrl),
		intents:  mocks.NewMockIntentCache(ctrl),
	}
	h.svc = NewPaymentService(PaymentServiceOptions{
		Payments: h.payments,
		Jobs:     h.jobs,
		Provider: h.provider,
		Intents:  h.intents,
	})
	return h
}

func activeJob(total, paid string) *model.Job {
	return &model.Job{
		ID:         "job-1",
		OwnerID:    "owner-1",
		Status:     model.JobStatusInProgress,
		TotalPrice: dec(total),
		PaidAmount: dec(paid),
	}
}

func TestPaymentServiceQuoteFullBalance(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(activeJob("100.00", "40.00"), nil)
	h.provider.EXPECT().
		CreateChargeIntent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.ChargeIntentParams) (*core.ChargeIntent, error) {
			assert.True(t, params.Amount.Equal(dec("60.00")))
			assert.Equal(t, DefaultCurrency, params.Currency)
			assert.Equal(t, "job-1", params.Metadata["job_id"])
			return &core.ChargeIntent{IntentID: "pi_1", ClientSecret: "secret"}, nil
		})

	var stored core.QuotedIntent
	h.intents.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any(), DefaultIntentTTL).
		DoAndReturn(func(_ context.Context, _ string, intent core.QuotedIntent, _ time.Duration) error {
			stored = intent
			return nil
		})

	quote, err := h.svc.Quote(ctx, "owner-1", "job-1", decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "job-1", quote.JobID)
	assert.True(t, quote.Outstanding.Equal(dec("60.00")))
	assert.NotEmpty(t, quote.IntentHandle)
	assert.Equal(t, "secret", quote.ClientSecret)

	assert.Equal(t, "pi_1", stored.IntentID)
	assert.Equal(t, "owner-1", stored.OwnerID)
	assert.True(t, stored.Amount.Equal(dec("60.00")))
}

func TestPaymentServiceQuoteCapsRequestedAmount(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(activeJob("100.00", "40.00"), nil)
	h.provider.EXPECT().
		CreateChargeIntent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.ChargeIntentParams) (*core.ChargeIntent, error) {
			assert.True(t, params.Amount.Equal(dec("60.00")), "charge must be capped at the balance")
			return &core.ChargeIntent{IntentID: "pi_2"}, nil
		})
	h.intents.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := h.svc.Quote(ctx, "owner-1", "job-1", dec("500.00"))
	require.NoError(t, err)
}

func TestPaymentServiceQuotePartialAmount(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(activeJob("100.00", "40.00"), nil)
	h.provider.EXPECT().
		CreateChargeIntent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.ChargeIntentParams) (*core.ChargeIntent, error) {
			assert.True(t, params.Amount.Equal(dec("25.00")))
			return &core.ChargeIntent{IntentID: "pi_3"}, nil
		})
	h.intents.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	quote, err := h.svc.Quote(ctx, "owner-1", "job-1", dec("25.00"))
	require.NoError(t, err)
	assert.True(t, quote.Outstanding.Equal(dec("60.00")))
}

func TestPaymentServiceQuoteWrongOwner(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(activeJob("100.00", "0.00"), nil)

	_, err := h.svc.Quote(ctx, "someone-else", "job-1", decimal.Zero)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPaymentServiceQuoteFullyPaid(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(activeJob("100.00", "100.00"), nil)

	_, err := h.svc.Quote(ctx, "owner-1", "job-1", decimal.Zero)
	assert.True(t, apperrors.IsPrecondition(err))
}

func TestPaymentServiceQuoteSettledJob(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	job := activeJob("100.00", "20.00")
	job.Status = model.JobStatusCancelled
	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(job, nil)

	_, err := h.svc.Quote(ctx, "owner-1", "job-1", decimal.Zero)
	assert.True(t, apperrors.IsPrecondition(err))
}

func TestPaymentServiceQuoteProviderFailure(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(activeJob("100.00", "0.00"), nil)
	h.provider.EXPECT().
		CreateChargeIntent(ctx, gomock.Any()).
		Return(nil, errors.New("provider down"))

	_, err := h.svc.Quote(ctx, "owner-1", "job-1", decimal.Zero)
	assert.True(t, apperrors.IsUpstream(err))
}

func quotedIntent() *core.QuotedIntent {
	return &core.QuotedIntent{
		JobID:    "job-1",
		OwnerID:  "owner-1",
		Amount:   dec("60.00"),
		IntentID: "pi_1",
	}
}

func TestPaymentServiceApplySucceeds(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.intents.EXPECT().Get(ctx, "handle-1").Return(quotedIntent(), nil)
	h.provider.EXPECT().Confirm(ctx, "pi_1").Return(core.IntentStatusSucceeded, nil)
	h.payments.EXPECT().
		Apply(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.ApplyPaymentParams) (*model.PaymentResult, error) {
			assert.Equal(t, "job-1", params.JobID)
			assert.Equal(t, "owner-1", params.OwnerID)
			assert.Equal(t, "pi_1", params.ProviderRef)
			assert.True(t, params.Amount.Equal(dec("60.00")))
			return &model.PaymentResult{
				JobID:         "job-1",
				AppliedAmount: dec("60.00"),
				NewBalance:    dec("0.00"),
				FullyPaid:     true,
			}, nil
		})
	h.intents.EXPECT().Delete(ctx, "handle-1").Return(nil)

	result, err := h.svc.Apply(ctx, "owner-1", "handle-1")
	require.NoError(t, err)
	assert.True(t, result.FullyPaid)
	assert.True(t, result.NewBalance.IsZero())
}

func TestPaymentServiceApplyBalanceAlreadySettled(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	// the balance closed between quote and apply: the confirmed charge
	// still resolves cleanly with nothing accrued
	h.intents.EXPECT().Get(ctx, "handle-1").Return(quotedIntent(), nil)
	h.provider.EXPECT().Confirm(ctx, "pi_1").Return(core.IntentStatusSucceeded, nil)
	h.payments.EXPECT().
		Apply(ctx, gomock.Any()).
		Return(&model.PaymentResult{
			JobID:         "job-1",
			AppliedAmount: decimal.Zero,
			NewBalance:    decimal.Zero,
			FullyPaid:     true,
		}, nil)
	h.intents.EXPECT().Delete(ctx, "handle-1").Return(nil)

	result, err := h.svc.Apply(ctx, "owner-1", "handle-1")
	require.NoError(t, err)
	assert.True(t, result.AppliedAmount.IsZero())
	assert.True(t, result.FullyPaid)
}

func TestPaymentServiceApplyExpiredHandle(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.intents.EXPECT().Get(ctx, "gone").Return(nil, nil)

	_, err := h.svc.Apply(ctx, "owner-1", "gone")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPaymentServiceApplyWrongOwner(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.intents.EXPECT().Get(ctx, "handle-1").Return(quotedIntent(), nil)

	_, err := h.svc.Apply(ctx, "someone-else", "handle-1")
	assert.True(t, apperrors.IsNotFound(err), "another owner's handle must look expired")
}

func TestPaymentServiceApplyChargeNotSettled(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.intents.EXPECT().Get(ctx, "handle-1").Return(quotedIntent(), nil)
	h.provider.EXPECT().Confirm(ctx, "pi_1").Return(core.IntentStatusPending, nil)

	_, err := h.svc.Apply(ctx, "owner-1", "handle-1")
	assert.True(t, apperrors.IsPaymentRequired(err))
}

func TestPaymentServiceApplyChargeFailed(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.intents.EXPECT().Get(ctx, "handle-1").Return(quotedIntent(), nil)
	h.provider.EXPECT().Confirm(ctx, "pi_1").Return(core.IntentStatusFailed, nil)

	_, err := h.svc.Apply(ctx, "owner-1", "handle-1")
	assert.True(t, apperrors.IsPaymentRequired(err))
}

func TestPaymentServiceApplyEvictionFailureIsNotFatal(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.intents.EXPECT().Get(ctx, "handle-1").Return(quotedIntent(), nil)
	h.provider.EXPECT().Confirm(ctx, "pi_1").Return(core.IntentStatusSucceeded, nil)
	h.payments.EXPECT().Apply(ctx, gomock.Any()).Return(&model.PaymentResult{JobID: "job-1"}, nil)
	h.intents.EXPECT().Delete(ctx, "handle-1").Return(errors.New("redis gone"))

	result, err := h.svc.Apply(ctx, "owner-1", "handle-1")
	require.NoError(t, err)
	assert.Equal(t, "job-1", result.JobID)
}

func TestPaymentServiceListForJob(t *testing.T) {
	h := newPaymentHarness(t)
	ctx := context.Background()

	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(activeJob("100.00", "40.00"), nil)
	h.payments.EXPECT().ListForJob(ctx, "job-1").Return([]*model.Payment{{ID: "pay-1"}}, nil)

	payments, err := h.svc.ListForJob(ctx, "owner-1", "job-1")
	require.NoError(t, err)
	require.Len(t, payments, 1)

	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(activeJob("100.00", "40.00"), nil)
	_, err = h.svc.ListForJob(ctx, "someone-else", "job-1")
	assert.True(t, apperrors.IsNotFound(err))
}
