// Package model defines the core data types of the job marketplace: jobs,
// offers, unit-update requests, professionals, services, and payments.
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/probook/probook-api/internal/money"
)

// JobStatus represents the lifecycle state of a job.
type JobStatus string

const (
	// JobStatusPending indicates a job is waiting for a professional.
	JobStatusPending JobStatus = "pending"
	// JobStatusInProgress indicates a professional accepted the job.
	JobStatusInProgress JobStatus = "in_progress"
	// JobStatusCompleted indicates the job finished and was fully paid.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusCancelled indicates the owner cancelled the job before assignment.
	JobStatusCancelled JobStatus = "cancelled"
)

// Valid returns true if the JobStatus is a known state.
func (s JobStatus) Valid() bool {
	return s == JobStatusPending || s == JobStatusInProgress ||
		s == JobStatusCompleted || s == JobStatusCancelled
}

// Terminal returns true for states that admit no further transitions.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// Job is the aggregate root: a requested unit of work with a quantity,
// price, and lifecycle status. Offers and unit-update requests reference it
// and are meaningless without it.
type Job struct {
	ID             string     `json:"id"                        db:"id"`
	OwnerID        string     `json:"owner_id"                  db:"owner_id"`
	ProfessionalID *string    `json:"professional_id,omitempty" db:"professional_id"`
	ServiceID      string     `json:"service_id"                db:"service_id"`
	LocationID     string     `json:"location_id"               db:"location_id"`
	Title          string     `json:"title"                     db:"title"`
	Description    *string    `json:"description,omitempty"     db:"description"`
	StartAt        *time.Time `json:"start_at,omitempty"        db:"start_at"`
	CompletedDate  *time.Time `json:"completed_date,omitempty"  db:"completed_date"`

	Quantity   decimal.Decimal `json:"quantity"    db:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price" db:"total_price"`
	PaidAmount decimal.Decimal `json:"paid_amount" db:"paid_amount"`
	// UnitPrice is the service's current price, captured when the job row is
	// read. It is never stored on the job itself.
	UnitPrice decimal.Decimal `json:"unit_price" db:"-"`

	Status JobStatus `json:"status"  db:"status"`
	IsPaid bool      `json:"is_paid" db:"is_paid"`
	// ProviderRef is the most recent payment-provider reference applied to
	// this job, if any.
	ProviderRef *string `json:"provider_ref,omitempty" db:"provider_ref"`

	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"   db:"updated_at"`
}

// ComputedTotal returns unit price × quantity at 2dp, half up.
func (j *Job) ComputedTotal() decimal.Decimal {
	return money.Total(j.UnitPrice, j.Quantity)
}

// OutstandingAmount returns the unpaid remainder, floored at zero.
func (j *Job) OutstandingAmount() decimal.Decimal {
	return money.Outstanding(j.TotalPrice, j.PaidAmount)
}

// PaidUnits derives how many units the paid amount covers, clamped to
// [0, quantity].
func (j *Job) PaidUnits() decimal.Decimal {
	if j.UnitPrice.IsZero() {
		return money.Zero
	}
	units := money.Round2(j.PaidAmount.Div(j.UnitPrice))
	return money.Clamp(units, money.Zero, j.Quantity)
}

// RemainingUnits returns quantity − paid units, floored at zero.
func (j *Job) RemainingUnits() decimal.Decimal {
	rem := j.Quantity.Sub(j.PaidUnits())
	if rem.IsNegative() {
		return money.Zero
	}
	return rem
}

// Deletable reports whether the job may be hard-deleted. Paid, in-progress,
// and completed jobs must never be removed.
func (j *Job) Deletable() bool {
	return !j.IsPaid && j.Status != JobStatusInProgress && j.Status != JobStatusCompleted
}

// LocationInput is the free-text address a job owner submits. The geo
// directory resolves it to stable identifiers, creating the city if needed.
type LocationInput struct {
	StreetNumber string `json:"street_number"`
	StreetName   string `json:"street_name"`
	UnitSuite    string `json:"unit_suite,omitempty"`
	CityName     string `json:"city_name"`
	ProvinceName string `json:"province_name"`
	CountryName  string `json:"country_name"`
	PostalCode   string `json:"postal_code"`
}

// Validate validates the LocationInput fields.
func (l *LocationInput) Validate() error {
	if strings.TrimSpace(l.CountryName) == "" {
		return errors.New("country name is required")
	}
	if strings.TrimSpace(l.ProvinceName) == "" {
		return errors.New("province name is required")
	}
	if strings.TrimSpace(l.CityName) == "" {
		return errors.New("city name is required")
	}
	if strings.TrimSpace(l.StreetName) == "" {
		return errors.New("street name is required")
	}
	return nil
}

// CreateJobRequest represents a request to create a new job.
type CreateJobRequest struct {
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	ServiceID   string          `json:"service_id"`
	Location    LocationInput   `json:"location"`
	Quantity    decimal.Decimal `json:"quantity,omitempty"`
	StartAt     *time.Time      `json:"start_at,omitempty"`
}

const maxJobTitleLen = 100

// Validate validates the CreateJobRequest fields and applies the default
// quantity of one unit.
func (r *CreateJobRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if len(r.Title) > maxJobTitleLen {
		return errors.New("title is too long")
	}
	if r.ServiceID == "" {
		return errors.New("service id is required")
	}
	if r.Quantity.IsZero() {
		r.Quantity = decimal.NewFromInt(1)
	}
	if !r.Quantity.IsPositive() {
		return errors.New("quantity must be greater than zero")
	}
	// A minute of clock skew keeps "starting now" submissions valid.
	if r.StartAt != nil && r.StartAt.Before(time.Now().Add(-time.Minute)) {
		return errors.New("start date must not be in the past")
	}
	return r.Location.Validate()
}

// JobListFilter narrows job listings.
type JobListFilter struct {
	Status JobStatus
	Limit  int
	Offset int
}
