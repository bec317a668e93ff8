package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/domain/model"
	"github.com/probook/probook-api/internal/mocks"
)

type dispatchHarness struct {
	jobs          *mocks.MockJobRepository
	offers        *mocks.MockOfferRepository
	outbox        *mocks.MockOutboxRepository
	professionals *mocks.MockProfessionalRepository
	locations     *mocks.MockLocationReader
	svc           *DispatchService
}

func newDispatchHarness(t *testing.T) *dispatchHarness {
	ctrl := gomock.NewController(t)
	h := &dispatchHarness{
		jobs:          mocks.NewMockJobRepository(ctrl),
		offers:        mocks.NewMockOfferRepository(ctrl),
		outbox:        mocks.NewMockOutboxRepository(ctrl),
		professionals: mocks.NewMockProfessionalRepository(ctrl),
		locations:     mocks.NewMockLocationReader(ctrl),
	}
	matcher := NewMatcherService(MatcherServiceOptions{
		Professionals: h.professionals,
		Locations:     h.locations,
	})
	h.svc = NewDispatchService(DispatchServiceOptions{
		Jobs:    h.jobs,
		Offers:  h.offers,
		Outbox:  h.outbox,
		Matcher: matcher,
	})
	return h
}

func pendingJob() *model.Job {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &model.Job{
		ID:         "job-1",
		OwnerID:    "owner-1",
		ServiceID:  "svc-1",
		LocationID: "loc-1",
		Status:     model.JobStatusPending,
		StartAt:    &start,
	}
}

func TestDispatchRunOnceEmptyOutbox(t *testing.T) {
	h := newDispatchHarness(t)
	ctx := context.Background()

	h.outbox.EXPECT().ClaimNext(ctx, DefaultDispatchMaxAttempts).Return(nil, nil)

	claimed, err := h.svc.RunOnce(ctx)
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestDispatchRunOnceFansOut(t *testing.T) {
	h := newDispatchHarness(t)
	ctx := context.Background()
	job := pendingJob()

	h.outbox.EXPECT().ClaimNext(ctx, DefaultDispatchMaxAttempts).
		Return(&core.DispatchTask{ID: "task-1", JobID: "job-1", Attempts: 1}, nil)
	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(job, nil)
	h.locations.EXPECT().CityForLocation(ctx, "loc-1").Return("city-1", nil)
	h.professionals.EXPECT().
		EligibleForJob(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.EligibilityParams) ([]string, error) {
			assert.Equal(t, "job-1", params.JobID)
			assert.Equal(t, "svc-1", params.ServiceID)
			assert.Equal(t, "city-1", params.CityID)
			require.NotNil(t, params.StartAt)
			assert.Equal(t, DefaultConflictWindow, params.ConflictWindow)
			return []string{"pro-1", "pro-2", "pro-3"}, nil
		})
	h.offers.EXPECT().FanOut(ctx, "job-1", []string{"pro-1", "pro-2", "pro-3"}).Return(3, nil)
	h.outbox.EXPECT().MarkDispatched(ctx, "task-1", 3).Return(nil)

	claimed, err := h.svc.RunOnce(ctx)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestDispatchRunOnceSettledJobNeedsNoOffers(t *testing.T) {
	h := newDispatchHarness(t)
	ctx := context.Background()
	job := pendingJob()
	job.Status = model.JobStatusCancelled

	h.outbox.EXPECT().ClaimNext(ctx, DefaultDispatchMaxAttempts).
		Return(&core.DispatchTask{ID: "task-1", JobID: "job-1"}, nil)
	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(job, nil)
	h.outbox.EXPECT().MarkDispatched(ctx, "task-1", 0).Return(nil)

	claimed, err := h.svc.RunOnce(ctx)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestDispatchRunOnceNoCandidates(t *testing.T) {
	h := newDispatchHarness(t)
	ctx := context.Background()

	h.outbox.EXPECT().ClaimNext(ctx, DefaultDispatchMaxAttempts).
		Return(&core.DispatchTask{ID: "task-1", JobID: "job-1"}, nil)
	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(pendingJob(), nil)
	h.locations.EXPECT().CityForLocation(ctx, "loc-1").Return("city-1", nil)
	h.professionals.EXPECT().EligibleForJob(ctx, gomock.Any()).Return(nil, nil)
	h.outbox.EXPECT().MarkDispatched(ctx, "task-1", 0).Return(nil)

	claimed, err := h.svc.RunOnce(ctx)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestDispatchRunOnceFailureMarksTask(t *testing.T) {
	h := newDispatchHarness(t)
	ctx := context.Background()
	boom := errors.New("matching query failed")

	h.outbox.EXPECT().ClaimNext(ctx, DefaultDispatchMaxAttempts).
		Return(&core.DispatchTask{ID: "task-1", JobID: "job-1", Attempts: 2}, nil)
	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(pendingJob(), nil)
	h.locations.EXPECT().CityForLocation(ctx, "loc-1").Return("", boom)
	h.outbox.EXPECT().MarkFailed(ctx, "task-1", boom, DefaultDispatchMaxAttempts).Return(nil)

	claimed, err := h.svc.RunOnce(ctx)
	assert.True(t, claimed)
	assert.ErrorIs(t, err, boom)
}

func TestDispatchDrainStopsWhenEmpty(t *testing.T) {
	h := newDispatchHarness(t)
	ctx := context.Background()
	job := pendingJob()

	gomock.InOrder(
		h.outbox.EXPECT().ClaimNext(ctx, DefaultDispatchMaxAttempts).
			Return(&core.DispatchTask{ID: "task-1", JobID: "job-1"}, nil),
		h.outbox.EXPECT().ClaimNext(ctx, DefaultDispatchMaxAttempts).Return(nil, nil),
	)
	h.jobs.EXPECT().GetByID(ctx, "job-1").Return(job, nil)
	h.locations.EXPECT().CityForLocation(ctx, "loc-1").Return("city-1", nil)
	h.professionals.EXPECT().EligibleForJob(ctx, gomock.Any()).Return([]string{"pro-1"}, nil)
	h.offers.EXPECT().FanOut(ctx, "job-1", []string{"pro-1"}).Return(1, nil)
	h.outbox.EXPECT().MarkDispatched(ctx, "task-1", 1).Return(nil)

	require.NoError(t, h.svc.Drain(ctx))
}

func TestMatcherServiceCustomWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	professionals := mocks.NewMockProfessionalRepository(ctrl)
	locations := mocks.NewMockLocationReader(ctrl)
	matcher := NewMatcherService(MatcherServiceOptions{
		Professionals:  professionals,
		Locations:      locations,
		ConflictWindow: 2 * time.Hour,
	})
	ctx := context.Background()

	locations.EXPECT().CityForLocation(ctx, "loc-1").Return("city-1", nil)
	professionals.EXPECT().
		EligibleForJob(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.EligibilityParams) ([]string, error) {
			assert.Equal(t, 2*time.Hour, params.ConflictWindow)
			return []string{"pro-1"}, nil
		})

	ids, err := matcher.CandidatesForJob(ctx, pendingJob())
	require.NoError(t, err)
	assert.Equal(t, []string{"pro-1"}, ids)
}
