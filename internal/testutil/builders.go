package testutil

import (
	"context"
	"database/sql"
)

// Geo holds the IDs of a seeded country/province/city chain.
type Geo struct {
	CountryID  string
	ProvinceID string
	CityID     string
}

// SeedGeo inserts a country, province, and city and returns their IDs.
func SeedGeo(t TestingTB, db *sql.DB, country, province, city string) Geo {
	t.Helper()
	ctx := context.Background()

	var g Geo
	err := db.QueryRowContext(ctx, `
		INSERT INTO countries (name, code) VALUES ($1, $2) RETURNING id`,
		country, country[:2],
	).Scan(&g.CountryID)
	if err != nil {
		t.Fatalf("seed country: %v", err)
	}
	err = db.QueryRowContext(ctx, `
		INSERT INTO provinces (country_id, name) VALUES ($1, $2) RETURNING id`,
		g.CountryID, province,
	).Scan(&g.ProvinceID)
	if err != nil {
		t.Fatalf("seed province: %v", err)
	}
	err = db.QueryRowContext(ctx, `
		INSERT INTO cities (province_id, name) VALUES ($1, $2) RETURNING id`,
		g.ProvinceID, city,
	).Scan(&g.CityID)
	if err != nil {
		t.Fatalf("seed city: %v", err)
	}
	return g
}

// SeedService inserts a service and returns its ID.
func SeedService(t TestingTB, db *sql.DB, title, unitPrice string) string {
	t.Helper()

	var id string
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO services (title, unit_price) VALUES ($1, $2::numeric) RETURNING id`,
		title, unitPrice,
	).Scan(&id)
	if err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return id
}

// ProfessionalSeed describes a professional to insert.
type ProfessionalSeed struct {
	UserID     string
	CityID     string
	Verified   bool
	Status     string
	ServiceIDs []string
}

// SeedProfessional inserts a professional with capabilities and returns
// its ID. Status defaults to approved for verified professionals and
// pending otherwise, keeping the verification consistency check happy.
func SeedProfessional(t TestingTB, db *sql.DB, seed ProfessionalSeed) string {
	t.Helper()
	ctx := context.Background()

	status := seed.Status
	if status == "" {
		if seed.Verified {
			status = "approved"
		} else {
			status = "pending"
		}
	}
	var cityID any
	if seed.CityID != "" {
		cityID = seed.CityID
	}

	var id string
	err := db.QueryRowContext(ctx, `
		INSERT INTO professionals (user_id, city_id, is_verified, verification_status)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		seed.UserID, cityID, seed.Verified, status,
	).Scan(&id)
	if err != nil {
		t.Fatalf("seed professional: %v", err)
	}
	for _, serviceID := range seed.ServiceIDs {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO professional_services (professional_id, service_id) VALUES ($1, $2)`,
			id, serviceID,
		); err != nil {
			t.Fatalf("seed capability: %v", err)
		}
	}
	return id
}
