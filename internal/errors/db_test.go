package errors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pgErr(code, constraint, detail string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: constraint, Detail: detail}
}

func TestMapDBErrorNil(t *testing.T) {
	require.NoError(t, MapDBError(nil))
}

func TestMapDBErrorContext(t *testing.T) {
	assert.Equal(t, ErrCodeTimeout, GetCode(MapDBError(context.DeadlineExceeded)))
	assert.Equal(t, ErrCodeCanceled, GetCode(MapDBError(context.Canceled)))
}

func TestMapDBErrorNoRows(t *testing.T) {
	err := MapDBError(fmt.Errorf("get job: %w", sql.ErrNoRows))
	assert.True(t, IsNotFound(err))
}

func TestMapDBErrorAcceptedOfferRace(t *testing.T) {
	// The partial unique index on accepted offers losing a race must surface
	// as a conflict, never as a generic duplicate-value error.
	err := MapDBError(pgErr(pgerrcode.UniqueViolation, "uniq_single_accepted_offer_per_job", ""))
	require.True(t, IsConflict(err))

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Message, "Another offer was accepted")
}

func TestMapDBErrorUniqueViolationFieldInference(t *testing.T) {
	t.Run("from detail", func(t *testing.T) {
		err := MapDBError(pgErr(pgerrcode.UniqueViolation, "", `Key (license_number)=(x) already exists.`))
		assert.True(t, IsConflict(err))
		assert.Equal(t, "license_number", GetField(err))
	})

	t.Run("from constraint name", func(t *testing.T) {
		err := MapDBError(pgErr(pgerrcode.UniqueViolation, "services_title_key", ""))
		assert.Equal(t, "title", GetField(err))
	})
}

func TestMapDBErrorOtherViolations(t *testing.T) {
	assert.True(t, IsForeignKey(MapDBError(pgErr(pgerrcode.ForeignKeyViolation, "jobs_service_id_fkey", ""))))
	assert.True(t, IsValidation(MapDBError(pgErr(pgerrcode.CheckViolation, "chk_job_quantity_gt_zero", ""))))
	assert.True(t, IsValidation(MapDBError(pgErr(pgerrcode.NotNullViolation, "", ""))))
	assert.True(t, IsInternal(MapDBError(pgErr(pgerrcode.SerializationFailure, "", ""))))
}

func TestMapDBErrorPassthrough(t *testing.T) {
	plain := errors.New("not a db error")
	assert.Equal(t, plain, MapDBError(plain))
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("accept offer: %w", pgErr(pgerrcode.UniqueViolation, "uniq_single_accepted_offer_per_job", ""))

	assert.True(t, IsUniqueViolation(err, "uniq_single_accepted_offer_per_job"))
	assert.True(t, IsUniqueViolation(err, ""))
	assert.False(t, IsUniqueViolation(err, "uniq_job_offer"))
	assert.False(t, IsUniqueViolation(errors.New("plain"), ""))
}
