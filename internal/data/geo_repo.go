package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so geo lookups can run
// inside a caller-owned transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// GeoRepo resolves free-text addresses against the geo directory. Countries
// and provinces are seeded reference data and must already exist; cities are
// upserted on demand.
type GeoRepo struct {
	DB *sql.DB
}

// NewGeoRepo creates a new GeoRepo.
func NewGeoRepo(db *sql.DB) *GeoRepo {
	return &GeoRepo{DB: db}
}

// CountryByName looks up a country case-insensitively.
func (r *GeoRepo) CountryByName(ctx context.Context, q DBTX, name string) (*model.Country, error) {
	var c model.Country
	err := q.QueryRowContext(ctx, `
		SELECT id, name, code FROM countries WHERE lower(name) = lower($1)`,
		strings.TrimSpace(name),
	).Scan(&c.ID, &c.Name, &c.Code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ValidationField("location.country_name",
				fmt.Sprintf("unknown country %q", name))
		}
		return nil, apperrors.MapDBError(err)
	}
	return &c, nil
}

// ProvinceByName looks up a province within a country case-insensitively.
func (r *GeoRepo) ProvinceByName(
	ctx context.Context,
	q DBTX,
	countryID, name string,
) (*model.Province, error) {
	var p model.Province
	err := q.QueryRowContext(ctx, `
		SELECT id, country_id, name, code FROM provinces
		WHERE country_id = $1 AND lower(name) = lower($2)`,
		countryID, strings.TrimSpace(name),
	).Scan(&p.ID, &p.CountryID, &p.Name, &p.Code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ValidationField("location.province_name",
				fmt.Sprintf("unknown province %q", name))
		}
		return nil, apperrors.MapDBError(err)
	}
	return &p, nil
}

// UpsertCity finds or creates a city within a province. The upsert is
// idempotent under concurrent job creation for the same new city.
func (r *GeoRepo) UpsertCity(
	ctx context.Context,
	q DBTX,
	provinceID, name string,
) (*model.City, error) {
	trimmed := strings.TrimSpace(name)
	var c model.City
	err := q.QueryRowContext(ctx, `
		INSERT INTO cities (province_id, name) VALUES ($1, $2)
		ON CONFLICT (province_id, lower(name)) DO UPDATE SET name = cities.name
		RETURNING id, province_id, name`,
		provinceID, trimmed,
	).Scan(&c.ID, &c.ProvinceID, &c.Name)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &c, nil
}

// CityForLocation returns the city ID of a stored location.
func (r *GeoRepo) CityForLocation(ctx context.Context, locationID string) (string, error) {
	var cityID string
	err := r.DB.QueryRowContext(ctx,
		`SELECT city_id FROM locations WHERE id = $1`, locationID,
	).Scan(&cityID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", apperrors.NotFoundf("location %s not found", locationID)
		}
		return "", apperrors.MapDBError(err)
	}
	return cityID, nil
}

// ResolveLocation turns a free-text address into a stored location row,
// creating the city when needed. It is intended to run inside the job
// creation transaction.
func (r *GeoRepo) ResolveLocation(
	ctx context.Context,
	q DBTX,
	ownerID string,
	in model.LocationInput,
) (*model.Location, error) {
	if err := in.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	country, err := r.CountryByName(ctx, q, in.CountryName)
	if err != nil {
		return nil, err
	}
	province, err := r.ProvinceByName(ctx, q, country.ID, in.ProvinceName)
	if err != nil {
		return nil, err
	}
	city, err := r.UpsertCity(ctx, q, province.ID, in.CityName)
	if err != nil {
		return nil, err
	}

	loc := model.Location{
		OwnerID:      ownerID,
		CityID:       city.ID,
		StreetNumber: strings.TrimSpace(in.StreetNumber),
		StreetName:   strings.TrimSpace(in.StreetName),
		PostalCode:   strings.TrimSpace(in.PostalCode),
	}
	if s := strings.TrimSpace(in.UnitSuite); s != "" {
		loc.UnitSuite = &s
	}
	err = q.QueryRowContext(ctx, `
		INSERT INTO locations (owner_id, city_id, street_number, street_name, unit_suite, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		loc.OwnerID, loc.CityID, loc.StreetNumber, loc.StreetName, loc.UnitSuite, loc.PostalCode,
	).Scan(&loc.ID, &loc.CreatedAt)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &loc, nil
}
