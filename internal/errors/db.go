package errors

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// reKeyField extracts the field name from a unique violation detail:
// "Key (field)=(value) already exists.".
var reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)

// Constraint names whose violation signals a lost race rather than bad
// input. The partial unique index on accepted offers is the last line of
// defense against concurrent acceptance (spec of the offer ledger), and the
// pending unit-request index guards duplicate proposals.
var racyConstraints = map[string]string{
	"uniq_single_accepted_offer_per_job":            "Another offer was accepted for this job just now. Refresh and try again.",
	"uniq_pending_unit_update_per_job_professional": "A pending unit update already exists for this job.",
}

// MapDBError maps database errors to AppError instances:
//   - sql.ErrNoRows / pgx.ErrNoRows → NotFound
//   - unique constraint violations → Conflict
//   - foreign key violations → ForeignKey
//   - check / NOT NULL violations → Validation
//   - context deadline / cancel → Timeout / Canceled
//
// Unrecognized errors are returned unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{Code: ErrCodeCanceled, Message: "request was canceled", Cause: err}
	}

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return &AppError{Code: ErrCodeNotFound, Message: "resource not found", Cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	return err
}

func mapPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return mapUniqueViolation(pgErr)
	case pgerrcode.ForeignKeyViolation:
		return &AppError{
			Code:    ErrCodeForeignKey,
			Message: "operation violates a reference to another record",
			Cause:   pgErr,
		}
	case pgerrcode.CheckViolation:
		return &AppError{
			Code:    ErrCodeValidation,
			Message: "value violates constraint " + pgErr.ConstraintName,
			Cause:   pgErr,
		}
	case pgerrcode.NotNullViolation:
		return &AppError{
			Code:    ErrCodeValidation,
			Message: "required field is missing",
			Field:   pgErr.ColumnName,
			Cause:   pgErr,
		}
	default:
		return &AppError{
			Code:    ErrCodeInternal,
			Message: "a database error occurred",
			Cause:   pgErr,
		}
	}
}

func mapUniqueViolation(pgErr *pgconn.PgError) error {
	if msg, ok := racyConstraints[pgErr.ConstraintName]; ok {
		return &AppError{Code: ErrCodeConflict, Message: msg, Cause: pgErr}
	}

	field := pgErr.ColumnName
	if field == "" && pgErr.Detail != "" {
		if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
			field = m[1]
		}
	}
	if field == "" {
		field = inferFieldFromConstraint(pgErr.ConstraintName)
	}

	return &AppError{
		Code:    ErrCodeConflict,
		Message: "this value already exists",
		Field:   field,
		Cause:   pgErr,
	}
}

// inferFieldFromConstraint infers the field name from constraint names of
// the form "table_field_key". Multi-column constraints are left blank.
func inferFieldFromConstraint(constraintName string) string {
	parts := strings.Split(constraintName, "_")
	if len(parts) != 3 {
		return ""
	}
	return parts[1]
}

// IsUniqueViolation reports whether err is a PostgreSQL unique violation on
// the named constraint. An empty name matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
