package data

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/probook/probook-api/internal/data/database"
	"github.com/probook/probook-api/internal/data/pgxutil"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
)

const offerColumns = `id, job_id, professional_id, status, distance_km,
	accepted_at, created_at, updated_at`

// OfferRepo provides database operations for job offers: fan-out and the
// exclusive acceptance path.
type OfferRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewOfferRepo creates a new OfferRepo with a real time provider.
func NewOfferRepo(db *sql.DB) *OfferRepo {
	return &OfferRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewOfferRepoWithTimeProvider creates a new OfferRepo with a custom time
// provider (useful for tests).
func NewOfferRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *OfferRepo {
	return &OfferRepo{DB: db, timeProvider: tp}
}

func scanOffer(s rowScanner) (*model.JobOffer, error) {
	var (
		o    model.JobOffer
		dist decimal.NullDecimal
	)
	err := s.Scan(
		&o.ID, &o.JobID, &o.ProfessionalID, &o.Status, &dist,
		&o.AcceptedAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dist.Valid {
		d := dist.Decimal
		o.DistanceKM = &d
	}
	return &o, nil
}

// FanOut creates one sent offer per professional. Re-dispatch for the same
// job is absorbed by the (job, professional) uniqueness, so the count only
// reflects offers actually created.
func (r *OfferRepo) FanOut(ctx context.Context, jobID string, professionalIDs []string) (int, error) {
	if len(professionalIDs) == 0 {
		return 0, nil
	}
	now := r.timeProvider.Now().UTC()
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO job_offers (job_id, professional_id, created_at, updated_at)
		SELECT $1::uuid, p::uuid, $3, $3 FROM unnest($2::text[]) AS p
		ON CONFLICT (job_id, professional_id) DO NOTHING`,
		jobID, professionalIDs, now,
	)
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	created, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return int(created), nil
}

// GetByID retrieves an offer by ID.
func (r *OfferRepo) GetByID(ctx context.Context, id string) (*model.JobOffer, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+offerColumns+` FROM job_offers WHERE id = $1`, id)
	offer, err := scanOffer(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return offer, nil
}

const defaultOfferListLimit = 50

// ListForProfessional lists a professional's offers, newest first.
func (r *OfferRepo) ListForProfessional(
	ctx context.Context,
	professionalID string,
	filter model.OfferListFilter,
) ([]*model.JobOffer, error) {
	conds := []database.Condition{
		database.WhereCond("professional_id", database.Equal, professionalID),
	}
	if filter.Status != "" {
		if !filter.Status.Valid() {
			return nil, apperrors.ValidationField("status", "unknown offer status")
		}
		conds = append(conds, database.WhereCond("status", database.Equal, string(filter.Status)))
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultOfferListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	opts := database.NewListQueryOptions("job_offers",
		database.WithColumns(
			"id", "job_id", "professional_id", "status", "distance_km",
			"accepted_at", "created_at", "updated_at",
		),
		database.WithConditions(conds...),
		database.WithOrderBy("created_at", "DESC"),
		database.WithLimit(limit),
		database.WithOffset(offset),
	)
	query, args := database.BuildListQuery(opts)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	defer func() { _ = rows.Close() }()

	var offers []*model.JobOffer
	for rows.Next() {
		offer, serr := scanOffer(rows)
		if serr != nil {
			return nil, apperrors.MapDBError(serr)
		}
		offers = append(offers, offer)
	}
	if rerr := rows.Err(); rerr != nil {
		return nil, apperrors.MapDBError(rerr)
	}
	return offers, nil
}

// lockOffer reads an offer for update within tx, scoped to the
// professional it was sent to.
func lockOffer(ctx context.Context, tx *sql.Tx, offerID, professionalID string) (*model.JobOffer, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT `+offerColumns+` FROM job_offers WHERE id = $1 FOR UPDATE`, offerID)
	offer, err := scanOffer(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	if offer.ProfessionalID != professionalID {
		return nil, apperrors.NotFound("offer not found")
	}
	return offer, nil
}

// Accept assigns the job to the offer's professional and marks the offer
// accepted. The job row lock is taken before the job is inspected, so two
// racing acceptances serialize; the loser sees the job already assigned.
func (r *OfferRepo) Accept(ctx context.Context, offerID, professionalID string) (*model.JobOffer, error) {
	var out *model.JobOffer
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Opts: nil,
		Fn: func(tx *sql.Tx) error {
			offer, oerr := lockOffer(ctx, tx, offerID, professionalID)
			if oerr != nil {
				return oerr
			}
			if !offer.Status.Acceptable() {
				return apperrors.Precondition("offer can no longer be accepted", string(offer.Status))
			}

			job, jerr := lockJob(ctx, tx, offer.JobID)
			if jerr != nil {
				return jerr
			}
			if job.Status != model.JobStatusPending || job.ProfessionalID != nil {
				return apperrors.Conflict("job is no longer available")
			}

			now := r.timeProvider.Now().UTC()
			if _, uerr := tx.ExecContext(ctx, `
				UPDATE jobs SET professional_id = $2, status = 'in_progress', updated_at = $3
				WHERE id = $1`,
				job.ID, professionalID, now,
			); uerr != nil {
				return apperrors.MapDBError(uerr)
			}

			row := tx.QueryRowContext(ctx, `
				UPDATE job_offers SET status = 'accepted', accepted_at = $2, updated_at = $2
				WHERE id = $1
				RETURNING `+offerColumns,
				offerID, now,
			)
			accepted, aerr := scanOffer(row)
			if aerr != nil {
				return apperrors.MapDBError(aerr)
			}

			// Sibling offers keep their sent/viewed status; the expiry
			// sweep retires them on its own schedule.
			out = accepted
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkViewed records that the professional opened the offer. Marking an
// already-viewed offer is a no-op.
func (r *OfferRepo) MarkViewed(ctx context.Context, offerID, professionalID string) (*model.JobOffer, error) {
	return r.transition(ctx, offerID, professionalID, model.OfferStatusViewed)
}

// Decline marks a sent or viewed offer declined.
func (r *OfferRepo) Decline(ctx context.Context, offerID, professionalID string) (*model.JobOffer, error) {
	return r.transition(ctx, offerID, professionalID, model.OfferStatusDeclined)
}

func (r *OfferRepo) transition(
	ctx context.Context,
	offerID, professionalID string,
	target model.OfferStatus,
) (*model.JobOffer, error) {
	var out *model.JobOffer
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Opts: nil,
		Fn: func(tx *sql.Tx) error {
			offer, oerr := lockOffer(ctx, tx, offerID, professionalID)
			if oerr != nil {
				return oerr
			}
			if offer.Status == target {
				out = offer
				return nil
			}
			if !offer.Status.Acceptable() {
				return apperrors.Precondition("offer is already settled", string(offer.Status))
			}

			now := r.timeProvider.Now().UTC()
			row := tx.QueryRowContext(ctx, `
				UPDATE job_offers SET status = $2, updated_at = $3
				WHERE id = $1
				RETURNING `+offerColumns,
				offerID, string(target), now,
			)
			updated, uerr := scanOffer(row)
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

// ExpireOlderThan expires every sent or viewed offer created before the
// cutoff. Returns the number of offers expired.
func (r *OfferRepo) ExpireOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	now := r.timeProvider.Now().UTC()
	res, err := r.DB.ExecContext(ctx, `
		UPDATE job_offers SET status = 'expired', updated_at = $2
		WHERE status IN ('sent', 'viewed') AND created_at < $1`,
		cutoff.UTC(), now,
	)
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	expired, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return expired, nil
}
