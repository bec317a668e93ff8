package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/data/database"
	"github.com/probook/probook-api/internal/data/pgxutil"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
	"github.com/probook/probook-api/internal/money"
)

// jobColumns is the job projection shared by every job read. The service
// join supplies the current unit price; it is never stored on the job row.
const jobColumns = `j.id, j.owner_id, j.professional_id, j.service_id, j.location_id,
	j.title, j.description, j.start_at, j.completed_date,
	j.quantity, j.total_price, j.paid_amount,
	j.status, j.is_paid, j.provider_ref,
	j.submitted_at, j.created_at, j.updated_at, s.unit_price`

const jobSelectBase = `SELECT ` + jobColumns + `
	FROM jobs j JOIN services s ON s.id = j.service_id`

// JobRepo provides database operations for jobs and owns their lifecycle
// transitions.
type JobRepo struct {
	DB           *sql.DB
	geo          *GeoRepo
	timeProvider TimeProvider
}

// NewJobRepo creates a new JobRepo with a real time provider.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, geo: NewGeoRepo(db), timeProvider: &RealTimeProvider{}}
}

// NewJobRepoWithTimeProvider creates a new JobRepo with a custom time
// provider (useful for tests).
func NewJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobRepo {
	return &JobRepo{DB: db, geo: NewGeoRepo(db), timeProvider: tp}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(s rowScanner) (*model.Job, error) {
	var j model.Job
	err := s.Scan(
		&j.ID, &j.OwnerID, &j.ProfessionalID, &j.ServiceID, &j.LocationID,
		&j.Title, &j.Description, &j.StartAt, &j.CompletedDate,
		&j.Quantity, &j.TotalPrice, &j.PaidAmount,
		&j.Status, &j.IsPaid, &j.ProviderRef,
		&j.SubmittedAt, &j.CreatedAt, &j.UpdatedAt, &j.UnitPrice,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create resolves the location, inserts the job at status pending, and
// writes the dispatch outbox row, all in one transaction. The total price
// is snapshotted from the service's current unit price.
func (r *JobRepo) Create(ctx context.Context, params core.CreateJobParams) (*model.Job, error) {
	if params.Req == nil {
		return nil, apperrors.Validation("create job request is required")
	}
	if err := params.Req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	req := params.Req

	var out *model.Job
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Opts: nil,
		Fn: func(tx *sql.Tx) error {
			var unitPrice model.Service
			serr := tx.QueryRowContext(ctx,
				`SELECT id, title, unit_price FROM services WHERE id = $1`,
				req.ServiceID,
			).Scan(&unitPrice.ID, &unitPrice.Title, &unitPrice.UnitPrice)
			if serr != nil {
				if errors.Is(serr, sql.ErrNoRows) {
					return apperrors.ValidationField("service_id", "unknown service")
				}
				return apperrors.MapDBError(serr)
			}

			loc, lerr := r.geo.ResolveLocation(ctx, tx, params.OwnerID, req.Location)
			if lerr != nil {
				return lerr
			}

			now := r.timeProvider.Now().UTC()
			total := money.Total(unitPrice.UnitPrice, req.Quantity)
			row := tx.QueryRowContext(ctx, `
				INSERT INTO jobs (
					owner_id, service_id, location_id, title, description, start_at,
					quantity, total_price, status, submitted_at, created_at, updated_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending', $9, $9, $9)
				RETURNING `+returningJobColumns(unitPrice.UnitPrice.String()),
				params.OwnerID, req.ServiceID, loc.ID, req.Title, req.Description,
				req.StartAt, req.Quantity, total, now,
			)
			job, jerr := scanJob(row)
			if jerr != nil {
				return apperrors.MapDBError(jerr)
			}

			if _, oerr := tx.ExecContext(ctx,
				`INSERT INTO dispatch_outbox (job_id) VALUES ($1)`,
				job.ID,
			); oerr != nil {
				return apperrors.MapDBError(oerr)
			}

			out = job
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// returningJobColumns builds the RETURNING clause for job writes. The
// unit price is inlined as a constant because RETURNING cannot join.
func returningJobColumns(unitPrice string) string {
	return fmt.Sprintf(`id, owner_id, professional_id, service_id, location_id,
		title, description, start_at, completed_date,
		quantity, total_price, paid_amount,
		status, is_paid, provider_ref,
		submitted_at, created_at, updated_at, %s::numeric AS unit_price`, mustNumericLiteral(unitPrice))
}

// mustNumericLiteral guards the inlined numeric against injection; decimal
// String output is always plain digits with an optional sign and point.
func mustNumericLiteral(s string) string {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '-' {
			//nolint:forbidigo // programming error, not a runtime condition
			panic(fmt.Sprintf("not a numeric literal: %q", s))
		}
	}
	return "'" + s + "'"
}

// GetByID retrieves a job by ID with its derived unit price.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	row := r.DB.QueryRowContext(ctx, jobSelectBase+` WHERE j.id = $1`, id)
	job, err := scanJob(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// ListForOwner lists an owner's jobs, newest first.
func (r *JobRepo) ListForOwner(
	ctx context.Context,
	ownerID string,
	filter model.JobListFilter,
) ([]*model.Job, error) {
	conds := []database.Condition{
		database.WhereCond("j.owner_id", database.Equal, ownerID),
	}
	return r.list(ctx, conds, filter)
}

// ListForProfessional lists the jobs assigned to a professional, newest
// first.
func (r *JobRepo) ListForProfessional(
	ctx context.Context,
	professionalID string,
	filter model.JobListFilter,
) ([]*model.Job, error) {
	conds := []database.Condition{
		database.WhereCond("j.professional_id", database.Equal, professionalID),
	}
	return r.list(ctx, conds, filter)
}

const defaultJobListLimit = 50

func (r *JobRepo) list(
	ctx context.Context,
	conds []database.Condition,
	filter model.JobListFilter,
) ([]*model.Job, error) {
	if filter.Status != "" {
		if !filter.Status.Valid() {
			return nil, apperrors.ValidationField("status", "unknown job status")
		}
		conds = append(conds, database.WhereCond("j.status", database.Equal, string(filter.Status)))
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultJobListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	opts := database.NewListQueryOptions("jobs",
		database.WithColumns(
			"j.id", "j.owner_id", "j.professional_id", "j.service_id", "j.location_id",
			"j.title", "j.description", "j.start_at", "j.completed_date",
			"j.quantity", "j.total_price", "j.paid_amount",
			"j.status", "j.is_paid", "j.provider_ref",
			"j.submitted_at", "j.created_at", "j.updated_at", "s.unit_price",
		),
		database.WithJoin("j JOIN services s ON s.id = j.service_id"),
		database.WithConditions(conds...),
		database.WithOrderBy("j.created_at", "DESC"),
		database.WithLimit(limit),
		database.WithOffset(offset),
	)
	query, args := database.BuildListQuery(opts)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	defer func() { _ = rows.Close() }()

	var jobs []*model.Job
	for rows.Next() {
		job, serr := scanJob(rows)
		if serr != nil {
			return nil, apperrors.MapDBError(serr)
		}
		jobs = append(jobs, job)
	}
	if rerr := rows.Err(); rerr != nil {
		return nil, apperrors.MapDBError(rerr)
	}
	return jobs, nil
}

// lockJob reads a job for update within tx. The services join is read
// without locking the service row.
func lockJob(ctx context.Context, tx *sql.Tx, id string) (*model.Job, error) {
	row := tx.QueryRowContext(ctx, jobSelectBase+` WHERE j.id = $1 FOR UPDATE OF j`, id)
	job, err := scanJob(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// Complete transitions in_progress → completed. The job must be assigned
// and fully paid against its recomputed total.
func (r *JobRepo) Complete(ctx context.Context, id, ownerID string) (*model.Job, error) {
	var out *model.Job
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Opts: nil,
		Fn: func(tx *sql.Tx) error {
			job, lerr := lockJob(ctx, tx, id)
			if lerr != nil {
				return lerr
			}
			if job.OwnerID != ownerID {
				return apperrors.NotFound("job not found")
			}
			if job.Status != model.JobStatusInProgress {
				return apperrors.Precondition("only an in-progress job can be completed", string(job.Status))
			}
			if job.ProfessionalID == nil {
				return apperrors.Precondition("job has no assigned professional", string(job.Status))
			}

			total := money.Total(job.UnitPrice, job.Quantity)
			outstanding := money.Outstanding(total, job.PaidAmount)
			if outstanding.IsPositive() {
				return apperrors.PaymentRequired(fmt.Sprintf(
					"outstanding balance of %s must be paid before completion",
					outstanding.StringFixed(2)))
			}

			now := r.timeProvider.Now().UTC()
			row := tx.QueryRowContext(ctx, `
				UPDATE jobs SET status = 'completed', completed_date = $2,
					total_price = $3, is_paid = TRUE, updated_at = $2
				WHERE id = $1
				RETURNING `+returningJobColumns(job.UnitPrice.String()),
				id, now, total,
			)
			updated, uerr := scanJob(row)
			if uerr != nil {
				return apperrors.MapDBError(uerr)
			}
			out = updated
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel transitions pending → cancelled. Assigned or paid jobs cannot be
// cancelled.
func (r *JobRepo) Cancel(ctx context.Context, id, ownerID string) (*model.Job, error) {
	var out *model.Job
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Opts: nil,
		Fn: func(tx *sql.Tx) error {
			job, lerr := lockJob(ctx, tx, id)
			if lerr != nil {
				return lerr
			}
			if job.OwnerID != ownerID {
				return apperrors.NotFound("job not found")
			}
			if job.Status != model.JobStatusPending {
				return apperrors.Precondition("only a pending job can be cancelled", string(job.Status))
			}
			if job.PaidAmount.IsPositive() {
				return apperrors.Precondition("a job with applied payments cannot be cancelled", string(job.Status))
			}

			now := r.timeProvider.Now().UTC()
			row := tx.QueryRowContext(ctx, `
				UPDATE jobs SET status = 'cancelled', updated_at = $2
				WHERE id = $1
				RETURNING `+returningJobColumns(job.UnitPrice.String()),
				id, now,
			)
			updated, uerr := scanJob(row)
			if uerr != nil {
				return apperrors.MapDBError(uerr)
			}

			// Outstanding offers for a cancelled job are dead.
			if _, oerr := tx.ExecContext(ctx, `
				UPDATE job_offers SET status = 'expired', updated_at = $2
				WHERE job_id = $1 AND status IN ('sent', 'viewed')`,
				id, now,
			); oerr != nil {
				return apperrors.MapDBError(oerr)
			}

			out = updated
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete hard-deletes a job and its satellites. Paid, in-progress and
// completed jobs are never deletable.
func (r *JobRepo) Delete(ctx context.Context, id, ownerID string) error {
	return pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Opts: nil,
		Fn: func(tx *sql.Tx) error {
			job, lerr := lockJob(ctx, tx, id)
			if lerr != nil {
				return lerr
			}
			if job.OwnerID != ownerID {
				return apperrors.NotFound("job not found")
			}
			if !job.Deletable() || job.PaidAmount.IsPositive() {
				return apperrors.Precondition("paid or active jobs cannot be deleted", string(job.Status))
			}
			if _, derr := tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id); derr != nil {
				return apperrors.MapDBError(derr)
			}
			return nil
		},
	})
}
