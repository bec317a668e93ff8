package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
	"github.com/probook/probook-api/internal/mocks"
)

type unitAdjustmentHarness struct {
	unitRequests  *mocks.MockUnitRequestRepository
	jobs          *mocks.MockJobRepository
	professionals *mocks.MockProfessionalRepository
	svc           *UnitAdjustmentService
}

func newUnitAdjustmentHarness(t *testing.T) *unitAdjustmentHarness {
	ctrl := gomock.NewController(t)
	h := &unitAdjustmentHarness{
		unitRequests:  mocks.NewMockUnitRequestRepository(ctrl),
		jobs:          mocks.NewMockJobRepository(ctrl),
		professionals: mocks.NewMockProfessionalRepository(ctrl),
	}
	h.svc = NewUnitAdjustmentService(UnitAdjustmentServiceOptions{
		UnitRequests:  h.unitRequests,
		Jobs:          h.jobs,
		Professionals: h.professionals,
	})
	return h
}

func TestUnitAdjustmentPropose(t *testing.T) {
	h := newUnitAdjustmentHarness(t)
	ctx := context.Background()

	h.professionals.EXPECT().GetByUserID(ctx, "user-1").Return(testProfessional(), nil)
	h.unitRequests.EXPECT().
		Propose(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.ProposeUnitAdjustmentParams) (*model.JobUnitUpdateRequest, error) {
			assert.Equal(t, "job-1", params.JobID)
			assert.Equal(t, "pro-1", params.ProfessionalID)
			assert.True(t, params.Delta.Equal(dec("1.50")))
			return &model.JobUnitUpdateRequest{
				ID: "req-1", JobID: "job-1", Status: model.UnitRequestStatusPending,
			}, nil
		})

	req, err := h.svc.Propose(ctx, "user-1", "job-1", dec("1.50"))
	require.NoError(t, err)
	assert.Equal(t, model.UnitRequestStatusPending, req.Status)
}

func TestUnitAdjustmentProposeNonProfessional(t *testing.T) {
	h := newUnitAdjustmentHarness(t)
	ctx := context.Background()

	h.professionals.EXPECT().GetByUserID(ctx, "stranger").
		Return(nil, apperrors.NotFound("professional not found"))

	_, err := h.svc.Propose(ctx, "stranger", "job-1", dec("1.00"))
	assert.True(t, apperrors.IsForbidden(err))
}

func TestUnitAdjustmentListForJobVisibility(t *testing.T) {
	h := newUnitAdjustmentHarness(t)
	ctx := context.Background()
	proID := "pro-1"
	job := &model.Job{ID: "job-1", OwnerID: "owner-1", ProfessionalID: &proID}

	// Owner sees the requests.
	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(job, nil)
	h.unitRequests.EXPECT().ListForJob(ctx, "job-1").
		Return([]*model.JobUnitUpdateRequest{{ID: "req-1"}}, nil)
	reqs, err := h.svc.ListForJob(ctx, "owner-1", "job-1")
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	// So does the assigned professional, identified by user ID.
	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(job, nil)
	h.professionals.EXPECT().GetByUserID(ctx, "user-1").Return(testProfessional(), nil)
	h.unitRequests.EXPECT().ListForJob(ctx, "job-1").
		Return([]*model.JobUnitUpdateRequest{{ID: "req-1"}}, nil)
	reqs, err = h.svc.ListForJob(ctx, "user-1", "job-1")
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	// Anyone else gets the same answer as for a missing job.
	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(job, nil)
	h.professionals.EXPECT().GetByUserID(ctx, "stranger").
		Return(nil, apperrors.NotFound("professional not found"))
	_, err = h.svc.ListForJob(ctx, "stranger", "job-1")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUnitAdjustmentResolve(t *testing.T) {
	h := newUnitAdjustmentHarness(t)
	ctx := context.Background()

	h.unitRequests.EXPECT().Accept(ctx, "req-1", "owner-1").
		Return(&model.JobUnitUpdateRequest{ID: "req-1", JobID: "job-1", Status: model.UnitRequestStatusAccepted}, nil)
	accepted, err := h.svc.Accept(ctx, "owner-1", "req-1")
	require.NoError(t, err)
	assert.Equal(t, model.UnitRequestStatusAccepted, accepted.Status)

	h.unitRequests.EXPECT().Reject(ctx, "req-2", "owner-1").
		Return(&model.JobUnitUpdateRequest{ID: "req-2", Status: model.UnitRequestStatusRejected}, nil)
	rejected, err := h.svc.Reject(ctx, "owner-1", "req-2")
	require.NoError(t, err)
	assert.Equal(t, model.UnitRequestStatusRejected, rejected.Status)
}

func TestUnitAdjustmentCancel(t *testing.T) {
	h := newUnitAdjustmentHarness(t)
	ctx := context.Background()

	h.professionals.EXPECT().GetByUserID(ctx, "user-1").Return(testProfessional(), nil)
	h.unitRequests.EXPECT().Cancel(ctx, "req-1", "pro-1").
		Return(&model.JobUnitUpdateRequest{ID: "req-1", Status: model.UnitRequestStatusCancelled}, nil)

	cancelled, err := h.svc.Cancel(ctx, "user-1", "req-1")
	require.NoError(t, err)
	assert.Equal(t, model.UnitRequestStatusCancelled, cancelled.Status)
}
