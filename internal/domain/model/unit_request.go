package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitRequestStatus represents the state of a unit-update request.
type UnitRequestStatus string

const (
	// UnitRequestStatusPending indicates the request awaits the owner.
	UnitRequestStatusPending UnitRequestStatus = "pending"
	// UnitRequestStatusAccepted indicates the owner applied the change. Terminal.
	UnitRequestStatusAccepted UnitRequestStatus = "accepted"
	// UnitRequestStatusRejected indicates the owner declined. Terminal.
	UnitRequestStatusRejected UnitRequestStatus = "rejected"
	// UnitRequestStatusCancelled indicates the professional withdrew the
	// request before resolution. Terminal.
	UnitRequestStatusCancelled UnitRequestStatus = "cancelled"
)

// Valid returns true if the UnitRequestStatus is a known state.
func (s UnitRequestStatus) Valid() bool {
	switch s {
	case UnitRequestStatusPending, UnitRequestStatusAccepted,
		UnitRequestStatusRejected, UnitRequestStatusCancelled:
		return true
	}
	return false
}

// JobUnitUpdateRequest is a professional's proposal to increase the job's
// contracted quantity. Only the assigned professional may propose; only the
// job owner may resolve. At most one pending request exists per
// (job, professional) pair.
type JobUnitUpdateRequest struct {
	ID             string            `json:"id"              db:"id"`
	JobID          string            `json:"job_id"          db:"job_id"`
	ProfessionalID string            `json:"professional_id" db:"professional_id"`
	// DeltaQuantity is a positive increment added to the job's current
	// quantity when the request is accepted.
	DeltaQuantity decimal.Decimal   `json:"delta_quantity" db:"delta_quantity"`
	Status        UnitRequestStatus `json:"status"         db:"status"`
	CreatedAt     time.Time         `json:"created_at"     db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"     db:"updated_at"`
}
