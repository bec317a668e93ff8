package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VerificationStatus represents a professional's vetting state.
type VerificationStatus string

const (
	// VerificationPending indicates vetting has not concluded.
	VerificationPending VerificationStatus = "pending"
	// VerificationApproved indicates the professional passed vetting.
	VerificationApproved VerificationStatus = "approved"
	// VerificationRejected indicates the professional failed vetting.
	VerificationRejected VerificationStatus = "rejected"
)

// Valid returns true if the VerificationStatus is a known state.
func (s VerificationStatus) Valid() bool {
	return s == VerificationPending || s == VerificationApproved || s == VerificationRejected
}

// Professional is a vetted service provider. Only approved and verified
// professionals in the job's city who offer the job's service are eligible
// for offers.
type Professional struct {
	ID                 string             `json:"id"                  db:"id"`
	UserID             string             `json:"user_id"             db:"user_id"`
	LicenseNumber      string             `json:"license_number"      db:"license_number"`
	CityID             *string            `json:"city_id,omitempty"   db:"city_id"`
	IsVerified         bool               `json:"is_verified"         db:"is_verified"`
	VerificationStatus VerificationStatus `json:"verification_status" db:"verification_status"`
	CreatedAt          time.Time          `json:"created_at"          db:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"          db:"updated_at"`
}

// Eligible reports whether the professional clears the verification gate
// for receiving offers.
func (p *Professional) Eligible() bool {
	return p.IsVerified && p.VerificationStatus == VerificationApproved
}

// Service is a billable service with a unit price. Jobs derive their unit
// price from the service at computation time.
type Service struct {
	ID        string          `json:"id"         db:"id"`
	Title     string          `json:"title"      db:"title"`
	UnitPrice decimal.Decimal `json:"unit_price" db:"unit_price"`
	Unit      *string         `json:"unit,omitempty" db:"unit"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
