package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/probook/probook-api/internal/core"
	"github.com/probook/probook-api/internal/domain/model"
	apperrors "github.com/probook/probook-api/internal/errors"
)

// OfferServiceOptions groups dependencies for OfferService.
type OfferServiceOptions struct {
	Offers        core.OfferRepository
	Professionals core.ProfessionalRepository
	Logger        *slog.Logger
}

// OfferService exposes the offer lifecycle to acting professionals. Callers
// identify themselves by user ID; the service resolves that to a
// professional before any repository call.
type OfferService struct {
	offers        core.OfferRepository
	professionals core.ProfessionalRepository
	logger        *slog.Logger
}

// NewOfferService constructs a new OfferService.
func NewOfferService(opts OfferServiceOptions) *OfferService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &OfferService{
		offers:        opts.Offers,
		professionals: opts.Professionals,
		logger:        logger,
	}
}

func (s *OfferService) resolveProfessional(ctx context.Context, userID string) (*model.Professional, error) {
	pro, err := s.professionals.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Forbidden("caller is not a registered professional")
		}
		return nil, err
	}
	return pro, nil
}

// List returns the acting professional's offers, optionally narrowed by
// status.
func (s *OfferService) List(ctx context.Context, userID string, filter model.OfferListFilter) ([]*model.JobOffer, error) {
	pro, err := s.resolveProfessional(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.offers.ListForProfessional(ctx, pro.ID, filter)
}

// View marks an offer viewed on behalf of the acting professional. Viewing
// an already viewed offer is a no-op.
func (s *OfferService) View(ctx context.Context, userID, offerID string) (*model.JobOffer, error) {
	pro, err := s.resolveProfessional(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.offers.MarkViewed(ctx, offerID, pro.ID)
}

// Accept accepts an offer on behalf of the acting professional and
// assigns the job to them. Sibling offers are left for the expiry sweep.
func (s *OfferService) Accept(ctx context.Context, userID, offerID string) (*model.JobOffer, error) {
	pro, err := s.resolveProfessional(ctx, userID)
	if err != nil {
		return nil, err
	}
	offer, err := s.offers.Accept(ctx, offerID, pro.ID)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "offer accepted",
		"offer_id", offer.ID, "job_id", offer.JobID, "professional_id", pro.ID)
	return offer, nil
}

// Decline declines an offer on behalf of the acting professional.
func (s *OfferService) Decline(ctx context.Context, userID, offerID string) (*model.JobOffer, error) {
	pro, err := s.resolveProfessional(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.offers.Decline(ctx, offerID, pro.ID)
}

// ExpireStale expires every answerable offer older than the given age and
// returns the number expired.
func (s *OfferService) ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	expired, err := s.offers.ExpireOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		s.logger.InfoContext(ctx, "expired stale offers", "count", expired)
	}
	return expired, nil
}
