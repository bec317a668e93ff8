package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
)

// UnitAdjustmentServiceOptions groups dependencies for UnitAdjustmentService.
type UnitAdjustmentServiceOptions struct {
	UnitRequests  core.UnitRequestRepository
	Jobs          core.JobRepository
	Professionals core.ProfessionalRepository
	Logger        *slog.Logger
}

// UnitAdjustmentService mediates quantity-change requests between the
// assigned professional who proposes them and the owner who resolves them.
type UnitAdjustmentService struct {
	unitRequests  core.UnitRequestRepository
	jobs          core.JobRepository
	professionals core.ProfessionalRepository
	logger        *slog.Logger
}

// NewUnitAdjustmentService constructs a new UnitAdjustmentService.
func NewUnitAdjustmentService(opts UnitAdjustmentServiceOptions) *UnitAdjustmentService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &UnitAdjustmentService{
		unitRequests:  opts.UnitRequests,
		jobs:          opts.Jobs,
		professionals: opts.Professionals,
		logger:        logger,
	}
}

func (s *UnitAdjustmentService) resolveProfessional(ctx context.Context, userID string) (*model.Professional, error) {
	pro, err := s.professionals.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Forbidden("caller is not a registered professional")
		}
		return nil, err
	}
	return pro, nil
}

// Propose files a quantity increase for a job on behalf of the acting
// professional. Only the assigned professional of an in-progress job may
// propose, and only one pending request per (job, professional) may exist.
func (s *UnitAdjustmentService) Propose(
	ctx context.Context,
	userID, jobID string,
	delta decimal.Decimal,
) (*model.JobUnitUpdateRequest, error) {
	pro, err := s.resolveProfessional(ctx, userID)
	if err != nil {
		return nil, err
	}
	req, err := s.unitRequests.Propose(ctx, core.ProposeUnitAdjustmentParams{
		JobID:          jobID,
		ProfessionalID: pro.ID,
		Delta:          delta,
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "unit adjustment proposed",
		"request_id", req.ID, "job_id", jobID, "delta", delta.String())
	return req, nil
}

// ListForJob returns a job's adjustment requests, newest first. Only the
// owner and the assigned professional can see them; anyone else gets the
// same answer as for a job that does not exist.
func (s *UnitAdjustmentService) ListForJob(ctx context.Context, actorID, jobID string) ([]*model.JobUnitUpdateRequest, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !s.canSee(ctx, job, actorID) {
		return nil, apperrors.NotFoundf("job %s not found", jobID)
	}
	return s.unitRequests.ListForJob(ctx, jobID)
}

func (s *UnitAdjustmentService) canSee(ctx context.Context, job *model.Job, actorID string) bool {
	if job.OwnerID == actorID {
		return true
	}
	if job.ProfessionalID == nil {
		return false
	}
	pro, err := s.professionals.GetByUserID(ctx, actorID)
	if err != nil {
		return false
	}
	return pro.ID == *job.ProfessionalID
}

// Accept applies a pending request to the job on behalf of the owner,
// growing the quantity and recomputing the total.
func (s *UnitAdjustmentService) Accept(ctx context.Context, ownerID, requestID string) (*model.JobUnitUpdateRequest, error) {
	req, err := s.unitRequests.Accept(ctx, requestID, ownerID)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "unit adjustment accepted",
		"request_id", req.ID, "job_id", req.JobID)
	return req, nil
}

// Reject declines a pending request on behalf of the owner, leaving the job
// untouched.
func (s *UnitAdjustmentService) Reject(ctx context.Context, ownerID, requestID string) (*model.JobUnitUpdateRequest, error) {
	return s.unitRequests.Reject(ctx, requestID, ownerID)
}

// Cancel withdraws a pending request on behalf of the professional who
// proposed it.
func (s *UnitAdjustmentService) Cancel(ctx context.Context, userID, requestID string) (*model.JobUnitUpdateRequest, error) {
	pro, err := s.resolveProfessional(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.unitRequests.Cancel(ctx, requestID, pro.ID)
}
