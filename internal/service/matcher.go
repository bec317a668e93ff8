package service

import (
	"context"
	"time"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/domain/model"
)

// DefaultConflictWindow is how far on either side of a job's start another
// committed job counts as a schedule conflict.
const DefaultConflictWindow = 4 * time.Hour

// MatcherServiceOptions groups dependencies for MatcherService.
type MatcherServiceOptions struct {
	Professionals  core.ProfessionalRepository
	Locations      core.LocationReader
	ConflictWindow time.Duration
}

// MatcherService selects the professionals eligible to receive offers for
// a job.
type MatcherService struct {
	professionals  core.ProfessionalRepository
	locations      core.LocationReader
	conflictWindow time.Duration
}

// NewMatcherService constructs a new MatcherService.
func NewMatcherService(opts MatcherServiceOptions) *MatcherService {
	window := opts.ConflictWindow
	if window <= 0 {
		window = DefaultConflictWindow
	}
	return &MatcherService{
		professionals:  opts.Professionals,
		locations:      opts.Locations,
		conflictWindow: window,
	}
}

// CandidatesForJob returns the professional IDs eligible for the job. An
// empty result is a valid outcome, not an error.
func (s *MatcherService) CandidatesForJob(ctx context.Context, job *model.Job) ([]string, error) {
	cityID, err := s.locations.CityForLocation(ctx, job.LocationID)
	if err != nil {
		return nil, err
	}
	return s.professionals.EligibleForJob(ctx, core.EligibilityParams{
		JobID:          job.ID,
		ServiceID:      job.ServiceID,
		CityID:         cityID,
		StartAt:        job.StartAt,
		ConflictWindow: s.conflictWindow,
	})
}
