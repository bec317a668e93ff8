// Package core defines the ports between the service layer and its
// collaborators: repositories, the payment provider, and caches. Services
// depend on these interfaces, never on concrete implementations.
package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/probook/probook-api/internal/domain/model"
)

// CreateJobParams groups the inputs for creating a job.
type CreateJobParams struct {
	OwnerID string
	Req     *model.CreateJobRequest
}

// JobRepository owns job rows and their lifecycle transitions. Each
// mutating method runs its own transaction and takes the job row lock where
// a read-modify-write sequence requires it.
type JobRepository interface {
	// Create resolves the location, inserts the job at status pending, and
	// writes the dispatch outbox row in the same transaction.
	Create(ctx context.Context, params CreateJobParams) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	ListForOwner(ctx context.Context, ownerID string, filter model.JobListFilter) ([]*model.Job, error)
	ListForProfessional(ctx context.Context, professionalID string, filter model.JobListFilter) ([]*model.Job, error)
	// Complete transitions in_progress → completed for the owner, requiring
	// an assigned professional and a zero outstanding balance.
	Complete(ctx context.Context, id, ownerID string) (*model.Job, error)
	// Cancel transitions pending → cancelled for the owner, requiring no
	// assignment and no applied payment.
	Cancel(ctx context.Context, id, ownerID string) (*model.Job, error)
	// Delete removes an unpaid, non-active job and its satellites.
	Delete(ctx context.Context, id, ownerID string) error
}

// OfferRepository owns job offer rows: fan-out and exclusive acceptance.
type OfferRepository interface {
	// FanOut creates one offer per professional at status sent. Duplicate
	// (job, professional) pairs are absorbed without error. Returns the
	// number of offers actually created.
	FanOut(ctx context.Context, jobID string, professionalIDs []string) (int, error)
	GetByID(ctx context.Context, id string) (*model.JobOffer, error)
	ListForProfessional(ctx context.Context, professionalID string, filter model.OfferListFilter) ([]*model.JobOffer, error)
	// Accept assigns the job to the offer's professional under a job row
	// lock and marks the offer accepted. A lost acceptance race surfaces as
	// a conflict.
	Accept(ctx context.Context, offerID, professionalID string) (*model.JobOffer, error)
	MarkViewed(ctx context.Context, offerID, professionalID string) (*model.JobOffer, error)
	Decline(ctx context.Context, offerID, professionalID string) (*model.JobOffer, error)
	// ExpireOlderThan expires all sent/viewed offers created before the
	// cutoff. Returns the number of offers expired.
	ExpireOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ProposeUnitAdjustmentParams groups the inputs for proposing a quantity change.
type ProposeUnitAdjustmentParams struct {
	JobID          string
	ProfessionalID string
	Delta          decimal.Decimal
}

// UnitRequestRepository owns unit-update request rows.
type UnitRequestRepository interface {
	Propose(ctx context.Context, params ProposeUnitAdjustmentParams) (*model.JobUnitUpdateRequest, error)
	GetByID(ctx context.Context, id string) (*model.JobUnitUpdateRequest, error)
	ListForJob(ctx context.Context, jobID string) ([]*model.JobUnitUpdateRequest, error)
	// Accept applies the delta to the job quantity and recomputes the total
	// under a job row lock; both mutations commit atomically.
	Accept(ctx context.Context, requestID, ownerID string) (*model.JobUnitUpdateRequest, error)
	Reject(ctx context.Context, requestID, ownerID string) (*model.JobUnitUpdateRequest, error)
	// Cancel withdraws a pending request; only the proposing professional
	// may do so.
	Cancel(ctx context.Context, requestID, professionalID string) (*model.JobUnitUpdateRequest, error)
}

// ApplyPaymentParams groups the inputs for applying a payment to a job.
type ApplyPaymentParams struct {
	JobID       string
	OwnerID     string
	Amount      decimal.Decimal
	ProviderRef string
}

// PaymentRepository accrues partial payments against a job's recomputed
// total.
type PaymentRepository interface {
	// Apply recomputes the total, caps the submitted amount at the
	// outstanding balance, accrues it, and records the payment row — all
	// under a job row lock in one transaction.
	Apply(ctx context.Context, params ApplyPaymentParams) (*model.PaymentResult, error)
	ListForJob(ctx context.Context, jobID string) ([]*model.Payment, error)
}

// EligibilityParams describes a job for candidate matching.
type EligibilityParams struct {
	JobID     string
	ServiceID string
	CityID    string
	StartAt   *time.Time
	// ConflictWindow is the assumed duration of a job when excluding
	// professionals with overlapping scheduled work.
	ConflictWindow time.Duration
}

// LocationReader resolves stored locations back to the geo directory.
type LocationReader interface {
	CityForLocation(ctx context.Context, locationID string) (string, error)
}

// ProfessionalRepository reads professional capability and verification
// data for matching.
type ProfessionalRepository interface {
	// EligibleForJob returns the deduplicated professional IDs that match
	// the job's city, verification gate, and service capability, excluding
	// professionals with a conflicting scheduled job.
	EligibleForJob(ctx context.Context, params EligibilityParams) ([]string, error)
	GetByID(ctx context.Context, id string) (*model.Professional, error)
	GetByUserID(ctx context.Context, userID string) (*model.Professional, error)
	ServiceCapabilities(ctx context.Context, professionalID string) ([]string, error)
}

// DispatchTask is one claimed outbox row: a job awaiting offer fan-out.
type DispatchTask struct {
	ID       string
	JobID    string
	Attempts int
}

// OutboxRepository owns the dispatch outbox written at job creation.
type OutboxRepository interface {
	// ClaimNext locks and returns the next pending task, or nil when none
	// is available.
	ClaimNext(ctx context.Context, maxAttempts int) (*DispatchTask, error)
	MarkDispatched(ctx context.Context, taskID string, offersCreated int) error
	// MarkFailed bumps the attempt count and records the error; tasks that
	// exhaust their attempts are parked as failed.
	MarkFailed(ctx context.Context, taskID string, cause error, maxAttempts int) error
}
