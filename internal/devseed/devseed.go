// Package devseed loads a small development dataset: the Canadian geo
// directory entries, a service catalog, and a few verified professionals
// ready to receive offers.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

type seedService struct {
	Title     string
	Unit      string
	UnitPrice string
}

type seedProfessional struct {
	UserID   string
	License  string
	City     string
	Services []string
}

var seedCities = map[string][]string{
	"Nova Scotia": {"Halifax", "Dartmouth"},
	"Ontario":     {"Toronto", "Ottawa"},
}

var seedServices = []seedService{
	{Title: "Interior Painting", Unit: "room", UnitPrice: "180.00"},
	{Title: "Lawn Mowing", Unit: "visit", UnitPrice: "45.00"},
	{Title: "Gutter Cleaning", Unit: "storey", UnitPrice: "95.00"},
	{Title: "Snow Removal", Unit: "visit", UnitPrice: "60.00"},
}

var seedProfessionals = []seedProfessional{
	{
		UserID:   "seed-pro-halifax-1",
		License:  "NS-1001",
		City:     "Halifax",
		Services: []string{"Interior Painting", "Gutter Cleaning"},
	},
	{
		UserID:   "seed-pro-halifax-2",
		License:  "NS-1002",
		City:     "Halifax",
		Services: []string{"Lawn Mowing", "Snow Removal"},
	},
	{
		UserID:   "seed-pro-toronto-1",
		License:  "ON-2001",
		City:     "Toronto",
		Services: []string{"Interior Painting", "Lawn Mowing"},
	},
}

// Run executes the full development seeding workflow against the provided
// DB. Every insert is idempotent, so reruns are safe.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := seedGeo(ctx, db); err != nil {
		return fmt.Errorf("seed geo directory: %w", err)
	}
	if err := seedCatalog(ctx, db); err != nil {
		return fmt.Errorf("seed service catalog: %w", err)
	}
	if err := seedPros(ctx, db); err != nil {
		return fmt.Errorf("seed professionals: %w", err)
	}

	logger.InfoContext(ctx, "development seed completed",
		"provinces", len(seedCities),
		"services", len(seedServices),
		"professionals", len(seedProfessionals),
	)
	return nil
}

func seedGeo(ctx context.Context, db *sql.DB) error {
	var countryID string
	err := db.QueryRowContext(ctx, `
		INSERT INTO countries (name, code) VALUES ('Canada', 'CA')
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`).Scan(&countryID)
	if err != nil {
		return fmt.Errorf("upsert country: %w", err)
	}

	for province, cities := range seedCities {
		var provinceID string
		err = db.QueryRowContext(ctx, `
			INSERT INTO provinces (country_id, name) VALUES ($1, $2)
			ON CONFLICT (country_id, lower(name)) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`, countryID, province).Scan(&provinceID)
		if err != nil {
			return fmt.Errorf("upsert province %s: %w", province, err)
		}

		for _, city := range cities {
			if _, err = db.ExecContext(ctx, `
				INSERT INTO cities (province_id, name) VALUES ($1, $2)
				ON CONFLICT (province_id, lower(name)) DO NOTHING`,
				provinceID, city); err != nil {
				return fmt.Errorf("upsert city %s: %w", city, err)
			}
		}
	}
	return nil
}

func seedCatalog(ctx context.Context, db *sql.DB) error {
	for _, svc := range seedServices {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO services (title, unit, unit_price) VALUES ($1, $2, $3)
			ON CONFLICT (title) DO UPDATE SET unit = EXCLUDED.unit, unit_price = EXCLUDED.unit_price`,
			svc.Title, svc.Unit, svc.UnitPrice); err != nil {
			return fmt.Errorf("upsert service %s: %w", svc.Title, err)
		}
	}
	return nil
}

func seedPros(ctx context.Context, db *sql.DB) error {
	for _, pro := range seedProfessionals {
		var proID string
		err := db.QueryRowContext(ctx, `
			INSERT INTO professionals (user_id, license_number, city_id, is_verified, verification_status)
			SELECT $1, $2, c.id, TRUE, 'approved'
			FROM cities c WHERE c.name = $3
			ON CONFLICT (user_id) DO UPDATE
			SET license_number = EXCLUDED.license_number,
			    is_verified = TRUE,
			    verification_status = 'approved'
			RETURNING id`, pro.UserID, pro.License, pro.City).Scan(&proID)
		if err != nil {
			return fmt.Errorf("upsert professional %s: %w", pro.UserID, err)
		}

		for _, title := range pro.Services {
			if _, err = db.ExecContext(ctx, `
				INSERT INTO professional_services (professional_id, service_id)
				SELECT $1, s.id FROM services s WHERE s.title = $2
				ON CONFLICT DO NOTHING`, proID, title); err != nil {
				return fmt.Errorf("link professional %s to %s: %w", pro.UserID, title, err)
			}
		}
	}
	return nil
}
