package model

import "time"

// Country is a seeded top-level geo entity. Countries and provinces are
// reference data; cities are created on demand.
type Country struct {
	ID   string `json:"id"   db:"id"`
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`
}

// Province is a second-level geo entity under a country.
type Province struct {
	ID        string `json:"id"         db:"id"`
	CountryID string `json:"country_id" db:"country_id"`
	Name      string `json:"name"       db:"name"`
	Code      string `json:"code"       db:"code"`
}

// City is the locality used for eligibility matching. Cities are upserted
// idempotently when a job references one that does not exist yet.
type City struct {
	ID         string `json:"id"          db:"id"`
	ProvinceID string `json:"province_id" db:"province_id"`
	Name       string `json:"name"        db:"name"`
}

// Location is a resolved street address belonging to a job owner.
type Location struct {
	ID           string    `json:"id"            db:"id"`
	OwnerID      string    `json:"owner_id"      db:"owner_id"`
	CityID       string    `json:"city_id"       db:"city_id"`
	StreetNumber string    `json:"street_number" db:"street_number"`
	StreetName   string    `json:"street_name"   db:"street_name"`
	UnitSuite    *string   `json:"unit_suite,omitempty" db:"unit_suite"`
	PostalCode   string    `json:"postal_code"   db:"postal_code"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
}
