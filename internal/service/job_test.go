package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
	"github.com/probook/probook-api/internal/mocks"
)

type jobHarness struct {
	jobs  *mocks.MockJobRepository
	pros  *mocks.MockProfessionalRepository
	waker *mocks.MockDispatchWaker
	svc   *JobService
}

func newJobHarness(t *testing.T) *jobHarness {
	ctrl := gomock.NewController(t)
	h := &jobHarness{
		jobs:  mocks.NewMockJobRepository(ctrl),
		pros:  mocks.NewMockProfessionalRepository(ctrl),
		waker: mocks.NewMockDispatchWaker(ctrl),
	}
	h.svc = NewJobService(JobServiceOptions{Jobs: h.jobs, Professionals: h.pros, Waker: h.waker})
	return h
}

func TestJobServiceCreateWakesDispatcher(t *testing.T) {
	h := newJobHarness(t)
	ctx := context.Background()
	req := &model.CreateJobRequest{Title: "Paint the fence", ServiceID: "svc-1"}

	h.jobs.EXPECT().
		Create(ctx, core.CreateJobParams{OwnerID: "owner-1", Req: req}).
		Return(&model.Job{ID: "job-1", OwnerID: "owner-1"}, nil)
	h.waker.EXPECT().Wake(ctx).Return(nil)

	job, err := h.svc.Create(ctx, "owner-1", req)
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)
}

func TestJobServiceCreateSurvivesWakeFailure(t *testing.T) {
	h := newJobHarness(t)
	ctx := context.Background()
	req := &model.CreateJobRequest{Title: "Paint the fence", ServiceID: "svc-1"}

	h.jobs.EXPECT().Create(ctx, gomock.Any()).Return(&model.Job{ID: "job-1"}, nil)
	h.waker.EXPECT().Wake(ctx).Return(errors.New("redis unavailable"))

	job, err := h.svc.Create(ctx, "owner-1", req)
	require.NoError(t, err, "the poll loop picks the job up later")
	assert.Equal(t, "job-1", job.ID)
}

func TestJobServiceGetForActor(t *testing.T) {
	h := newJobHarness(t)
	ctx := context.Background()
	proID := "pro-1"
	job := &model.Job{ID: "job-1", OwnerID: "owner-1", ProfessionalID: &proID}

	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(job, nil).Times(3)

	got, err := h.svc.GetForActor(ctx, "job-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "job-1", got.ID)

	h.pros.EXPECT().GetByUserID(ctx, "pro-user").
		Return(&model.Professional{ID: "pro-1", UserID: "pro-user"}, nil)
	got, err = h.svc.GetForActor(ctx, "job-1", "pro-user")
	require.NoError(t, err)
	assert.Equal(t, "job-1", got.ID)

	h.pros.EXPECT().GetByUserID(ctx, "stranger").
		Return(nil, apperrors.NotFound("professional not found"))
	_, err = h.svc.GetForActor(ctx, "job-1", "stranger")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobServiceListAssigned(t *testing.T) {
	h := newJobHarness(t)
	ctx := context.Background()
	filter := model.JobListFilter{Status: model.JobStatusInProgress}

	h.pros.EXPECT().GetByUserID(ctx, "pro-user").
		Return(&model.Professional{ID: "pro-1", UserID: "pro-user"}, nil)
	h.jobs.EXPECT().ListForProfessional(ctx, "pro-1", filter).
		Return([]*model.Job{{ID: "job-1"}}, nil)

	jobs, err := h.svc.ListAssigned(ctx, "pro-user", filter)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	h.pros.EXPECT().GetByUserID(ctx, "nobody").
		Return(nil, apperrors.NotFound("professional not found"))
	_, err = h.svc.ListAssigned(ctx, "nobody", filter)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestJobServiceDelegates(t *testing.T) {
	h := newJobHarness(t)
	ctx := context.Background()
	filter := model.JobListFilter{Status: model.JobStatusPending}

	h.jobs.EXPECT().ListForOwner(ctx, "owner-1", filter).Return([]*model.Job{{ID: "job-1"}}, nil)
	jobs, err := h.svc.ListForOwner(ctx, "owner-1", filter)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	h.jobs.EXPECT().Complete(ctx, "job-1", "owner-1").
		Return(&model.Job{ID: "job-1", Status: model.JobStatusCompleted}, nil)
	completed, err := h.svc.Complete(ctx, "job-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCompleted, completed.Status)

	h.jobs.EXPECT().Delete(ctx, "job-1", "owner-1").Return(nil)
	require.NoError(t, h.svc.Delete(ctx, "job-1", "owner-1"))
}
