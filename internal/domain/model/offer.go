package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferStatus represents the state of a job offer.
type OfferStatus string

const (
	// OfferStatusSent indicates the offer was created and not yet seen.
	OfferStatusSent OfferStatus = "sent"
	// OfferStatusViewed indicates the professional opened the offer.
	OfferStatusViewed OfferStatus = "viewed"
	// OfferStatusAccepted indicates the professional took the job. Terminal.
	OfferStatusAccepted OfferStatus = "accepted"
	// OfferStatusDeclined indicates the professional passed. Terminal.
	OfferStatusDeclined OfferStatus = "declined"
	// OfferStatusExpired indicates the offer lapsed unanswered. Terminal.
	OfferStatusExpired OfferStatus = "expired"
)

// Valid returns true if the OfferStatus is a known state.
func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusSent, OfferStatusViewed, OfferStatusAccepted,
		OfferStatusDeclined, OfferStatusExpired:
		return true
	}
	return false
}

// Acceptable reports whether an offer in this state may still be accepted.
// No edge re-enters sent or viewed, and accepted never transitions backward.
func (s OfferStatus) Acceptable() bool {
	return s == OfferStatusSent || s == OfferStatusViewed
}

// JobOffer is one professional's invitation to take a job. At most one
// offer exists per (job, professional) pair, and at most one offer per job
// may ever be accepted.
type JobOffer struct {
	ID             string           `json:"id"                    db:"id"`
	JobID          string           `json:"job_id"                db:"job_id"`
	ProfessionalID string           `json:"professional_id"       db:"professional_id"`
	Status         OfferStatus      `json:"status"                db:"status"`
	DistanceKM     *decimal.Decimal `json:"distance_km,omitempty" db:"distance_km"`
	AcceptedAt     *time.Time       `json:"accepted_at,omitempty" db:"accepted_at"`
	CreatedAt      time.Time        `json:"created_at"            db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"            db:"updated_at"`
}

// OfferListFilter narrows offer listings for a professional.
type OfferListFilter struct {
	Status OfferStatus
	Limit  int
	Offset int
}
