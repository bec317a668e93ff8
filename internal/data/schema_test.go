package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probook/probook-api/internal/testutil"
)

// The check constraints are the last line of defense behind the repo
// validations, so each one gets poked directly.
func TestSchema_CheckConstraints(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		fx := seedFixture(t, db)
		job := createTestJob(t, db, fx, "owner-1")
		pro := seedPro(t, db, fx, "pro-a")

		t.Run("verification consistency", func(t *testing.T) {
			_, err := db.ExecContext(ctx, `
				INSERT INTO professionals (user_id, is_verified, verification_status)
				VALUES ('pro-bad', TRUE, 'pending')`)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "chk_professional_verified_consistent")
		})

		t.Run("active job requires professional", func(t *testing.T) {
			_, err := db.ExecContext(ctx, `
				UPDATE jobs SET status = 'in_progress' WHERE id = $1`, job.ID)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "chk_job_pro_required_for_active")
		})

		t.Run("completed job requires date", func(t *testing.T) {
			_, err := db.ExecContext(ctx, `
				UPDATE jobs SET status = 'completed', professional_id = $2
				WHERE id = $1`, job.ID, pro)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "chk_job_completed_has_date")
		})

		t.Run("total price non-negative", func(t *testing.T) {
			_, err := db.ExecContext(ctx, `
				UPDATE jobs SET total_price = -1 WHERE id = $1`, job.ID)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "chk_job_total_price_gte_zero")
		})

		t.Run("offer distance non-negative", func(t *testing.T) {
			_, err := db.ExecContext(ctx, `
				INSERT INTO job_offers (job_id, professional_id, distance_km)
				VALUES ($1, $2, -0.5)`, job.ID, pro)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "chk_offer_distance_non_negative")
		})
	})
}
