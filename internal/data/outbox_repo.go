package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/probook/probook-api/internal/core"
	apperrors "github.com/probook/probook-api/internal/errors"
)

// dispatchLease is how long a claimed outbox task is protected from other
// runners before it becomes claimable again.
const dispatchLease = 60 * time.Second

// OutboxRepo owns the dispatch outbox written at job creation.
type OutboxRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewOutboxRepo creates a new OutboxRepo with a real time provider.
func NewOutboxRepo(db *sql.DB) *OutboxRepo {
	return &OutboxRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewOutboxRepoWithTimeProvider creates a new OutboxRepo with a custom time
// provider (useful for tests).
func NewOutboxRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *OutboxRepo {
	return &OutboxRepo{DB: db, timeProvider: tp}
}

// ClaimNext atomically claims the oldest pending task under a lease.
// FOR UPDATE SKIP LOCKED lets concurrent runners claim disjoint tasks.
// Returns nil when nothing is claimable.
func (r *OutboxRepo) ClaimNext(ctx context.Context, maxAttempts int) (*core.DispatchTask, error) {
	now := r.timeProvider.Now().UTC()
	row := r.DB.QueryRowContext(ctx, `
		UPDATE dispatch_outbox SET attempts = attempts + 1, leased_until = $3, updated_at = $2
		WHERE id = (
			SELECT id FROM dispatch_outbox
			WHERE status = 'pending'
			  AND attempts < $1
			  AND (leased_until IS NULL OR leased_until < $2)
			ORDER BY created_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, job_id, attempts`,
		maxAttempts, now, now.Add(dispatchLease),
	)

	var task core.DispatchTask
	if err := row.Scan(&task.ID, &task.JobID, &task.Attempts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.MapDBError(err)
	}
	return &task, nil
}

// MarkDispatched settles a claimed task after successful fan-out.
func (r *OutboxRepo) MarkDispatched(ctx context.Context, taskID string, offersCreated int) error {
	now := r.timeProvider.Now().UTC()
	res, err := r.DB.ExecContext(ctx, `
		UPDATE dispatch_outbox
		SET status = 'dispatched', dispatched_at = $2, leased_until = NULL,
			offers_created = $3, last_error = NULL, updated_at = $2
		WHERE id = $1`,
		taskID, now, offersCreated,
	)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if affected == 0 {
		return apperrors.NotFoundf("dispatch task %s not found", taskID)
	}
	return nil
}

// MarkFailed records a failed attempt and releases the lease so the task
// can be retried. Tasks that exhaust their attempts are parked as failed.
func (r *OutboxRepo) MarkFailed(ctx context.Context, taskID string, cause error, maxAttempts int) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	now := r.timeProvider.Now().UTC()
	res, err := r.DB.ExecContext(ctx, `
		UPDATE dispatch_outbox
		SET status = CASE WHEN attempts >= $3 THEN 'failed' ELSE 'pending' END,
			last_error = $2, leased_until = NULL, updated_at = $4
		WHERE id = $1`,
		taskID, msg, maxAttempts, now,
	)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if affected == 0 {
		return apperrors.NotFoundf("dispatch task %s not found", taskID)
	}
	return nil
}
