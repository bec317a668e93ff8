package data

import (
	"context"
	"database/sql"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/data/pgxutil"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
	"github.com/probook/probook-api/internal/money"
)

// PaymentRepo accrues partial payments against jobs and keeps the payment
// ledger.
type PaymentRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPaymentRepo creates a new PaymentRepo with a real time provider.
func NewPaymentRepo(db *sql.DB) *PaymentRepo {
	return &PaymentRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPaymentRepoWithTimeProvider creates a new PaymentRepo with a custom
// time provider (useful for tests).
func NewPaymentRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PaymentRepo {
	return &PaymentRepo{DB: db, timeProvider: tp}
}

// Apply accrues a payment against the job under its row lock. The total is
// recomputed from the service's current unit price before the submitted
// amount is capped at the outstanding balance, so a stale quote can never
// overpay a job.
func (r *PaymentRepo) Apply(ctx context.Context, params core.ApplyPaymentParams) (*model.PaymentResult, error) {
	if !params.Amount.IsPositive() {
		return nil, apperrors.ValidationField("amount", "amount must be greater than zero")
	}
	if params.ProviderRef == "" {
		return nil, apperrors.ValidationField("provider_ref", "provider reference is required")
	}

	var out *model.PaymentResult
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Opts: nil,
		Fn: func(tx *sql.Tx) error {
			job, jerr := lockJob(ctx, tx, params.JobID)
			if jerr != nil {
				return jerr
			}
			if job.OwnerID != params.OwnerID {
				return apperrors.NotFound("job not found")
			}
			if job.Status.Terminal() {
				return apperrors.Precondition("payments cannot be applied to a settled job", string(job.Status))
			}

			total := money.Total(job.UnitPrice, job.Quantity)
			outstanding := money.Outstanding(total, job.PaidAmount)
			if outstanding.IsZero() {
				// Already settled. Report success with nothing applied so a
				// repeated or late apply never errors after the provider has
				// taken the charge.
				out = &model.PaymentResult{
					JobID:         job.ID,
					AppliedAmount: money.Zero,
					NewBalance:    money.Zero,
					FullyPaid:     true,
				}
				return nil
			}

			applied := money.Round2(params.Amount)
			if applied.GreaterThan(outstanding) {
				applied = outstanding
			}
			newPaid := money.Round2(job.PaidAmount.Add(applied))
			isPaid := newPaid.GreaterThanOrEqual(total)

			now := r.timeProvider.Now().UTC()
			if _, uerr := tx.ExecContext(ctx, `
				UPDATE jobs SET paid_amount = $2, total_price = $3, is_paid = $4,
					provider_ref = $5, updated_at = $6
				WHERE id = $1`,
				job.ID, newPaid, total, isPaid, params.ProviderRef, now,
			); uerr != nil {
				return apperrors.MapDBError(uerr)
			}

			if _, ierr := tx.ExecContext(ctx, `
				INSERT INTO payments (job_id, amount, provider_ref, created_at)
				VALUES ($1, $2, $3, $4)`,
				job.ID, applied, params.ProviderRef, now,
			); ierr != nil {
				return apperrors.MapDBError(ierr)
			}

			out = &model.PaymentResult{
				JobID:         job.ID,
				AppliedAmount: applied,
				NewBalance:    money.Outstanding(total, newPaid),
				FullyPaid:     isPaid,
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListForJob lists a job's payment ledger, oldest first.
func (r *PaymentRepo) ListForJob(ctx context.Context, jobID string) ([]*model.Payment, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, job_id, amount, provider_ref, created_at
		FROM payments WHERE job_id = $1 ORDER BY created_at`, jobID)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	defer func() { _ = rows.Close() }()

	var payments []*model.Payment
	for rows.Next() {
		var p model.Payment
		if serr := rows.Scan(&p.ID, &p.JobID, &p.Amount, &p.ProviderRef, &p.CreatedAt); serr != nil {
			return nil, apperrors.MapDBError(serr)
		}
		payments = append(payments, &p)
	}
	if rerr := rows.Err(); rerr != nil {
		return nil, apperrors.MapDBError(rerr)
	}
	return payments, nil
}
