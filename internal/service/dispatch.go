package service

import (
	"context"
	"log/slog"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/domain/model"
)

// DefaultDispatchMaxAttempts is how many times a dispatch task is retried
// before it is parked as failed.
const DefaultDispatchMaxAttempts = 5

// DispatchServiceOptions groups dependencies for DispatchService.
type DispatchServiceOptions struct {
	Jobs   core.JobRepository
	Offers core.OfferRepository
	Outbox core.OutboxRepository

	Matcher     *MatcherService
	MaxAttempts int
	Logger      *slog.Logger
}

// DispatchService drains the dispatch outbox: for each newly created job it
// matches eligible professionals and fans offers out to them.
type DispatchService struct {
	jobs        core.JobRepository
	offers      core.OfferRepository
	outbox      core.OutboxRepository
	matcher     *MatcherService
	maxAttempts int
	logger      *slog.Logger
}

// NewDispatchService constructs a new DispatchService.
func NewDispatchService(opts DispatchServiceOptions) *DispatchService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultDispatchMaxAttempts
	}
	return &DispatchService{
		jobs:        opts.Jobs,
		offers:      opts.Offers,
		outbox:      opts.Outbox,
		matcher:     opts.Matcher,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// RunOnce claims and processes a single outbox task. It returns true when a
// task was claimed, so callers can keep draining until the outbox is empty.
func (s *DispatchService) RunOnce(ctx context.Context) (bool, error) {
	task, err := s.outbox.ClaimNext(ctx, s.maxAttempts)
	if err != nil {
		return false, err
	}
	if task == nil {
		return false, nil
	}

	created, err := s.dispatch(ctx, task)
	if err != nil {
		s.logger.ErrorContext(ctx, "dispatch failed",
			"task_id", task.ID, "job_id", task.JobID,
			"attempts", task.Attempts, "error", err)
		if merr := s.outbox.MarkFailed(ctx, task.ID, err, s.maxAttempts); merr != nil {
			s.logger.ErrorContext(ctx, "mark failed errored",
				"task_id", task.ID, "error", merr)
		}
		return true, err
	}

	if err := s.outbox.MarkDispatched(ctx, task.ID, created); err != nil {
		return true, err
	}
	s.logger.InfoContext(ctx, "job dispatched",
		"job_id", task.JobID, "offers_created", created)
	return true, nil
}

// Drain processes outbox tasks until none remain or the context ends. Task
// failures are recorded on the task and do not stop the drain.
func (s *DispatchService) Drain(ctx context.Context) error {
	for {
		claimed, err := s.RunOnce(ctx)
		if err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		if !claimed {
			return nil
		}
	}
}

func (s *DispatchService) dispatch(ctx context.Context, task *core.DispatchTask) (int, error) {
	job, err := s.jobs.GetByID(ctx, task.JobID)
	if err != nil {
		return 0, err
	}
	// Jobs cancelled or assigned between creation and dispatch no longer
	// need offers; the task is settled with zero fan-out.
	if job.Status != model.JobStatusPending {
		s.logger.InfoContext(ctx, "skipping dispatch for settled job",
			"job_id", job.ID, "status", job.Status)
		return 0, nil
	}

	candidates, err := s.matcher.CandidatesForJob(ctx, job)
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		s.logger.WarnContext(ctx, "no eligible professionals for job",
			"job_id", job.ID, "service_id", job.ServiceID)
		return 0, nil
	}

	return s.offers.FanOut(ctx, job.ID, candidates)
}
