package data

import (
	"context"
	"database/sql"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
)

const professionalColumns = `id, user_id, license_number, city_id, is_verified,
	verification_status, created_at, updated_at`

// ProfessionalRepo reads professional capability and verification data.
type ProfessionalRepo struct {
	DB *sql.DB
}

// NewProfessionalRepo creates a new ProfessionalRepo.
func NewProfessionalRepo(db *sql.DB) *ProfessionalRepo {
	return &ProfessionalRepo{DB: db}
}

func scanProfessional(s rowScanner) (*model.Professional, error) {
	var p model.Professional
	err := s.Scan(
		&p.ID, &p.UserID, &p.LicenseNumber, &p.CityID, &p.IsVerified,
		&p.VerificationStatus, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// eligibleBaseSQL selects verified, approved professionals in the job's
// city who offer the job's service. DISTINCT guards against capability
// rows duplicating a candidate.
const eligibleBaseSQL = `
	SELECT DISTINCT p.id
	FROM professionals p
	JOIN professional_services ps ON ps.professional_id = p.id
	WHERE p.city_id = $1
	  AND p.is_verified
	  AND p.verification_status = 'approved'
	  AND ps.service_id = $2`

// eligibleScheduleFilterSQL excludes professionals already committed to an
// in-progress job whose start lands inside the conflict window around the
// new job's start.
const eligibleScheduleFilterSQL = `
	  AND NOT EXISTS (
		SELECT 1 FROM jobs j
		WHERE j.professional_id = p.id
		  AND j.status = 'in_progress'
		  AND j.start_at IS NOT NULL
		  AND j.start_at BETWEEN $3 AND $4
	  )`

// EligibleForJob returns the deduplicated IDs of professionals eligible to
// receive an offer for the described job. When the job has no start time
// the schedule filter is skipped.
func (r *ProfessionalRepo) EligibleForJob(ctx context.Context, params core.EligibilityParams) ([]string, error) {
	if params.CityID == "" || params.ServiceID == "" {
		return nil, apperrors.Validation("city and service are required for matching")
	}

	query := eligibleBaseSQL
	args := []any{params.CityID, params.ServiceID}
	if params.StartAt != nil && params.ConflictWindow > 0 {
		query += eligibleScheduleFilterSQL
		start := params.StartAt.UTC()
		args = append(args, start.Add(-params.ConflictWindow), start.Add(params.ConflictWindow))
	}
	query += ` ORDER BY p.id`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if serr := rows.Scan(&id); serr != nil {
			return nil, apperrors.MapDBError(serr)
		}
		ids = append(ids, id)
	}
	if rerr := rows.Err(); rerr != nil {
		return nil, apperrors.MapDBError(rerr)
	}
	return ids, nil
}

// GetByID retrieves a professional by ID.
func (r *ProfessionalRepo) GetByID(ctx context.Context, id string) (*model.Professional, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+professionalColumns+` FROM professionals WHERE id = $1`, id)
	p, err := scanProfessional(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return p, nil
}

// GetByUserID retrieves a professional by the external user identity.
func (r *ProfessionalRepo) GetByUserID(ctx context.Context, userID string) (*model.Professional, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+professionalColumns+` FROM professionals WHERE user_id = $1`, userID)
	p, err := scanProfessional(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return p, nil
}

// ServiceCapabilities returns the service IDs a professional offers.
func (r *ProfessionalRepo) ServiceCapabilities(ctx context.Context, professionalID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT service_id FROM professional_services
		WHERE professional_id = $1 ORDER BY service_id`, professionalID)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if serr := rows.Scan(&id); serr != nil {
			return nil, apperrors.MapDBError(serr)
		}
		ids = append(ids, id)
	}
	if rerr := rows.Err(); rerr != nil {
		return nil, apperrors.MapDBError(rerr)
	}
	return ids, nil
}
