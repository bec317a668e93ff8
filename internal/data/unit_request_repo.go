package data

import (
	"context"
	"database/sql"
	"time"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/data/pgxutil"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
	"github.com/probook/probook-api/internal/money"
)

const unitRequestColumns = `id, job_id, professional_id, delta_quantity, status, created_at, updated_at`

// UnitRequestRepo provides database operations for unit-update requests.
type UnitRequestRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUnitRequestRepo creates a new UnitRequestRepo with a real time provider.
func NewUnitRequestRepo(db *sql.DB) *UnitRequestRepo {
	return &UnitRequestRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUnitRequestRepoWithTimeProvider creates a new UnitRequestRepo with a
// custom time provider (useful for tests).
func NewUnitRequestRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UnitRequestRepo {
	return &UnitRequestRepo{DB: db, timeProvider: tp}
}

func scanUnitRequest(s rowScanner) (*model.JobUnitUpdateRequest, error) {
	var u model.JobUnitUpdateRequest
	err := s.Scan(
		&u.ID, &u.JobID, &u.ProfessionalID, &u.DeltaQuantity,
		&u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Propose creates a pending request to increase the job's quantity. Only
// the assigned professional may propose, only while the job is in progress,
// and only one pending request per (job, professional) pair may exist.
func (r *UnitRequestRepo) Propose(
	ctx context.Context,
	params core.ProposeUnitAdjustmentParams,
) (*model.JobUnitUpdateRequest, error) {
	if !params.Delta.IsPositive() {
		return nil, apperrors.ValidationField("delta_quantity", "delta must be greater than zero")
	}

	var out *model.JobUnitUpdateRequest
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Opts: nil,
		Fn: func(tx *sql.Tx) error {
			job, jerr := lockJob(ctx, tx, params.JobID)
			if jerr != nil {
				return jerr
			}
			if job.ProfessionalID == nil || *job.ProfessionalID != params.ProfessionalID {
				return apperrors.Forbidden("only the assigned professional can request a quantity change")
			}
			if job.Status != model.JobStatusInProgress {
				return apperrors.Precondition("quantity can only be adjusted while the job is in progress", string(job.Status))
			}

			now := r.timeProvider.Now().UTC()
			row := tx.QueryRowContext(ctx, `
				INSERT INTO job_unit_update_requests (job_id, professional_id, delta_quantity, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $4)
				RETURNING `+unitRequestColumns,
				params.JobID, params.ProfessionalID, money.Round2(params.Delta), now,
			)
			req, serr := scanUnitRequest(row)
			if serr != nil {
				return apperrors.MapDBError(serr)
			}
			out = req
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID retrieves a unit-update request by ID.
func (r *UnitRequestRepo) GetByID(ctx context.Context, id string) (*model.JobUnitUpdateRequest, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+unitRequestColumns+` FROM job_unit_update_requests WHERE id = $1`, id)
	req, err := scanUnitRequest(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return req, nil
}

// ListForJob lists a job's unit-update requests, newest first.
func (r *UnitRequestRepo) ListForJob(ctx context.Context, jobID string) ([]*model.JobUnitUpdateRequest, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+unitRequestColumns+` FROM job_unit_update_requests
		WHERE job_id = $1 ORDER BY created_at DESC`, jobID)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	defer func() { _ = rows.Close() }()

	var reqs []*model.JobUnitUpdateRequest
	for rows.Next() {
		req, serr := scanUnitRequest(rows)
		if serr != nil {
			return nil, apperrors.MapDBError(serr)
		}
		reqs = append(reqs, req)
	}
	if rerr := rows.Err(); rerr != nil {
		return nil, apperrors.MapDBError(rerr)
	}
	return reqs, nil
}

// lockUnitRequest reads a request for update within tx.
func lockUnitRequest(ctx context.Context, tx *sql.Tx, id string) (*model.JobUnitUpdateRequest, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT `+unitRequestColumns+` FROM job_unit_update_requests WHERE id = $1 FOR UPDATE`, id)
	req, err := scanUnitRequest(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return req, nil
}

// Accept applies the delta to the job's quantity and recomputes the total
// and paid flag under the job row lock. Request and job mutations commit
// atomically.
func (r *UnitRequestRepo) Accept(ctx context.Context, requestID, ownerID string) (*model.JobUnitUpdateRequest, error) {
	var out *model.JobUnitUpdateRequest
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Opts: nil,
		Fn: func(tx *sql.Tx) error {
			req, rerr := lockUnitRequest(ctx, tx, requestID)
			if rerr != nil {
				return rerr
			}
			if req.Status != model.UnitRequestStatusPending {
				return apperrors.Precondition("request is already resolved", string(req.Status))
			}

			job, jerr := lockJob(ctx, tx, req.JobID)
			if jerr != nil {
				return jerr
			}
			if job.OwnerID != ownerID {
				return apperrors.NotFound("request not found")
			}
			if job.Status != model.JobStatusInProgress {
				return apperrors.Precondition("quantity can only be adjusted while the job is in progress", string(job.Status))
			}

			newQuantity := money.Round2(job.Quantity.Add(req.DeltaQuantity))
			if !newQuantity.IsPositive() {
				return apperrors.Precondition("adjusted quantity must stay above zero", string(req.Status))
			}
			newTotal := money.Total(job.UnitPrice, newQuantity)
			isPaid := money.Round2(job.PaidAmount).GreaterThanOrEqual(newTotal)

			now := r.timeProvider.Now().UTC()
			if _, uerr := tx.ExecContext(ctx, `
				UPDATE jobs SET quantity = $2, total_price = $3, is_paid = $4, updated_at = $5
				WHERE id = $1`,
				job.ID, newQuantity, newTotal, isPaid, now,
			); uerr != nil {
				return apperrors.MapDBError(uerr)
			}

			resolved, serr := r.resolve(ctx, tx, requestID, model.UnitRequestStatusAccepted, now)
			if serr != nil {
				return serr
			}
			out = resolved
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reject declines a pending request without touching the job.
func (r *UnitRequestRepo) Reject(ctx context.Context, requestID, ownerID string) (*model.JobUnitUpdateRequest, error) {
	var out *model.JobUnitUpdateRequest
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Opts: nil,
		Fn: func(tx *sql.Tx) error {
			req, rerr := lockUnitRequest(ctx, tx, requestID)
			if rerr != nil {
				return rerr
			}
			if req.Status != model.UnitRequestStatusPending {
				return apperrors.Precondition("request is already resolved", string(req.Status))
			}

			job, jerr := lockJob(ctx, tx, req.JobID)
			if jerr != nil {
				return jerr
			}
			if job.OwnerID != ownerID {
				return apperrors.NotFound("request not found")
			}

			resolved, serr := r.resolve(ctx, tx, requestID, model.UnitRequestStatusRejected, r.timeProvider.Now().UTC())
			if serr != nil {
				return serr
			}
			out = resolved
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel withdraws a pending request. Only the proposing professional may
// cancel.
func (r *UnitRequestRepo) Cancel(ctx context.Context, requestID, professionalID string) (*model.JobUnitUpdateRequest, error) {
	var out *model.JobUnitUpdateRequest
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Opts: nil,
		Fn: func(tx *sql.Tx) error {
			req, rerr := lockUnitRequest(ctx, tx, requestID)
			if rerr != nil {
				return rerr
			}
			if req.ProfessionalID != professionalID {
				return apperrors.Forbidden("only the proposing professional can withdraw the request")
			}
			if req.Status != model.UnitRequestStatusPending {
				return apperrors.Precondition("request is already resolved", string(req.Status))
			}

			resolved, serr := r.resolve(ctx, tx, requestID, model.UnitRequestStatusCancelled, r.timeProvider.Now().UTC())
			if serr != nil {
				return serr
			}
			out = resolved
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UnitRequestRepo) resolve(
	ctx context.Context,
	tx *sql.Tx,
	requestID string,
	status model.UnitRequestStatus,
	now time.Time,
) (*model.JobUnitUpdateRequest, error) {
	row := tx.QueryRowContext(ctx, `
		UPDATE job_unit_update_requests SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+unitRequestColumns,
		requestID, string(status), now,
	)
	req, err := scanUnitRequest(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return req, nil
}
