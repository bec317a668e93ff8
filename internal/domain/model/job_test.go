package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestJobStatusValid(t *testing.T) {
	for _, s := range []JobStatus{JobStatusPending, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, JobStatus("running").Valid())
}

func TestJobStatusTerminal(t *testing.T) {
	assert.True(t, JobStatusCompleted.Terminal())
	assert.True(t, JobStatusCancelled.Terminal())
	assert.False(t, JobStatusPending.Terminal())
	assert.False(t, JobStatusInProgress.Terminal())
}

func TestJobDerivedAmounts(t *testing.T) {
	job := &Job{
		Quantity:   dec("2.00"),
		UnitPrice:  dec("25.00"),
		TotalPrice: dec("50.00"),
		PaidAmount: dec("30.00"),
	}

	assert.Equal(t, "20.00", job.OutstandingAmount().StringFixed(2))
	assert.Equal(t, "1.20", job.PaidUnits().StringFixed(2))
	assert.Equal(t, "0.80", job.RemainingUnits().StringFixed(2))
	assert.Equal(t, "50.00", job.ComputedTotal().StringFixed(2))
}

func TestJobPaidUnitsClamped(t *testing.T) {
	job := &Job{
		Quantity:   dec("2.00"),
		UnitPrice:  dec("10.00"),
		TotalPrice: dec("20.00"),
		PaidAmount: dec("35.00"), // more than the total can ever be
	}
	assert.Equal(t, "2.00", job.PaidUnits().StringFixed(2))
	assert.Equal(t, "0.00", job.RemainingUnits().StringFixed(2))
}

func TestJobPaidUnitsZeroPrice(t *testing.T) {
	job := &Job{Quantity: dec("3.00"), PaidAmount: dec("10.00")}
	assert.True(t, job.PaidUnits().IsZero())
}

func TestJobDeletable(t *testing.T) {
	cases := []struct {
		name string
		job  Job
		want bool
	}{
		{"pending unpaid", Job{Status: JobStatusPending}, true},
		{"cancelled unpaid", Job{Status: JobStatusCancelled}, true},
		{"pending paid", Job{Status: JobStatusPending, IsPaid: true}, false},
		{"in progress", Job{Status: JobStatusInProgress}, false},
		{"completed", Job{Status: JobStatusCompleted, IsPaid: true}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.job.Deletable())
		})
	}
}

func validCreateJobRequest() CreateJobRequest {
	return CreateJobRequest{
		Title:     "Fence repair",
		ServiceID: "b2f8c3a0-0000-0000-0000-000000000001",
		Location: LocationInput{
			StreetNumber: "12",
			StreetName:   "Main St",
			CityName:     "Springfield",
			ProvinceName: "Ontario",
			CountryName:  "Canada",
			PostalCode:   "A1A1A1",
		},
	}
}

func TestCreateJobRequestValidate(t *testing.T) {
	t.Run("valid with default quantity", func(t *testing.T) {
		req := validCreateJobRequest()
		require.NoError(t, req.Validate())
		assert.Equal(t, "1.00", req.Quantity.StringFixed(2))
	})

	t.Run("missing title", func(t *testing.T) {
		req := validCreateJobRequest()
		req.Title = "  "
		require.Error(t, req.Validate())
	})

	t.Run("missing service", func(t *testing.T) {
		req := validCreateJobRequest()
		req.ServiceID = ""
		require.Error(t, req.Validate())
	})

	t.Run("negative quantity", func(t *testing.T) {
		req := validCreateJobRequest()
		req.Quantity = dec("-1.00")
		require.Error(t, req.Validate())
	})

	t.Run("missing geo fields", func(t *testing.T) {
		req := validCreateJobRequest()
		req.Location.CityName = ""
		require.Error(t, req.Validate())
	})

	t.Run("past start date", func(t *testing.T) {
		req := validCreateJobRequest()
		past := time.Now().Add(-48 * time.Hour)
		req.StartAt = &past
		require.Error(t, req.Validate())
	})

	t.Run("future start date", func(t *testing.T) {
		req := validCreateJobRequest()
		future := time.Now().Add(48 * time.Hour)
		req.StartAt = &future
		require.NoError(t, req.Validate())
	})
}

func TestOfferStatusAcceptable(t *testing.T) {
	assert.True(t, OfferStatusSent.Acceptable())
	assert.True(t, OfferStatusViewed.Acceptable())
	assert.False(t, OfferStatusAccepted.Acceptable())
	assert.False(t, OfferStatusDeclined.Acceptable())
	assert.False(t, OfferStatusExpired.Acceptable())
}

func TestProfessionalEligible(t *testing.T) {
	p := Professional{IsVerified: true, VerificationStatus: VerificationApproved}
	assert.True(t, p.Eligible())

	p.IsVerified = false
	assert.False(t, p.Eligible())

	p = Professional{IsVerified: true, VerificationStatus: VerificationPending}
	assert.False(t, p.Eligible())
}
