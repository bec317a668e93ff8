// Package service contains the business orchestration between the HTTP
// surface and the repositories.
package service

import (
	"context"
	"log/slog"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Jobs          core.JobRepository
	Professionals core.ProfessionalRepository
	Waker         core.DispatchWaker
	Logger        *slog.Logger
}

// JobService orchestrates the job lifecycle.
type JobService struct {
	jobs          core.JobRepository
	professionals core.ProfessionalRepository
	waker         core.DispatchWaker
	logger        *slog.Logger
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{
		jobs:          opts.Jobs,
		professionals: opts.Professionals,
		waker:         opts.Waker,
		logger:        logger,
	}
}

// Create creates a job for the owner. The repository writes the dispatch
// outbox row transactionally; the waker only shortens the runner's poll
// latency, so its failure never surfaces to the caller.
func (s *JobService) Create(ctx context.Context, ownerID string, req *model.CreateJobRequest) (*model.Job, error) {
	job, err := s.jobs.Create(ctx, core.CreateJobParams{OwnerID: ownerID, Req: req})
	if err != nil {
		return nil, err
	}
	if s.waker != nil {
		if wakeErr := s.waker.Wake(ctx); wakeErr != nil {
			s.logger.WarnContext(ctx, "dispatch wake failed",
				"job_id", job.ID, "err", wakeErr)
		}
	}
	return job, nil
}

// GetForActor retrieves a job visible to the actor: its owner or its
// assigned professional. Actors with no claim on the job get a not-found
// rather than a forbidden, so job IDs are not probeable.
func (s *JobService) GetForActor(ctx context.Context, jobID, actorID string) (*model.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID == actorID {
		return job, nil
	}
	if job.ProfessionalID != nil && s.professionals != nil {
		pro, proErr := s.professionals.GetByUserID(ctx, actorID)
		if proErr == nil && pro.ID == *job.ProfessionalID {
			return job, nil
		}
	}
	return nil, apperrors.NotFound("job not found")
}

// ListForOwner lists the owner's jobs.
func (s *JobService) ListForOwner(ctx context.Context, ownerID string, filter model.JobListFilter) ([]*model.Job, error) {
	return s.jobs.ListForOwner(ctx, ownerID, filter)
}

// ListAssigned lists the jobs assigned to the professional behind the
// given user account.
func (s *JobService) ListAssigned(ctx context.Context, userID string, filter model.JobListFilter) ([]*model.Job, error) {
	pro, err := s.professionals.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Forbidden("caller is not a registered professional")
		}
		return nil, err
	}
	return s.jobs.ListForProfessional(ctx, pro.ID, filter)
}

// Complete marks an in-progress, fully paid job completed.
func (s *JobService) Complete(ctx context.Context, jobID, ownerID string) (*model.Job, error) {
	return s.jobs.Complete(ctx, jobID, ownerID)
}

// Cancel cancels a pending job.
func (s *JobService) Cancel(ctx context.Context, jobID, ownerID string) (*model.Job, error) {
	return s.jobs.Cancel(ctx, jobID, ownerID)
}

// Delete removes an unpaid, non-active job.
func (s *JobService) Delete(ctx context.Context, jobID, ownerID string) error {
	return s.jobs.Delete(ctx, jobID, ownerID)
}
