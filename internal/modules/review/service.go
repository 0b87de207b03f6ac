package review

import (
	"context"
	"errors"
	"log"

	"creatortrust/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	reviews   ReviewRepositoryInterface
	campaigns CampaignReader
	brands    BrandProfileReader
	creators  CreatorRatingUpdater
}

func NewService(
	reviews ReviewRepositoryInterface,
	campaigns CampaignReader,
	brands BrandProfileReader,
	creators CreatorRatingUpdater,
) *Service {
	return &Service{
		reviews:   reviews,
		campaigns: campaigns,
		brands:    brands,
		creators:  creators,
	}
}

// Create stores the brand's review of the creator on a completed campaign
// and rolls the new average into the creator's profile rating.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*domain.Review, error) {
	profile, err := s.brands.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandProfileRequired
		}
		return nil, err
	}

	c, err := s.campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	if c.BrandID != profile.ID {
		return nil, ErrNotOwner
	}
	if c.CreatorID == nil {
		return nil, ErrNoCreator
	}
	if c.Status != domain.CampaignCompleted {
		return nil, ErrNotCompleted
	}

	r := &domain.Review{
		CampaignID: req.CampaignID,
		CreatorID:  *c.CreatorID,
		BrandID:    profile.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, err
	}

	if avg, err := s.reviews.AverageRating(ctx, r.CreatorID); err == nil {
		if err := s.creators.SetRating(ctx, r.CreatorID, avg); err != nil {
			log.Printf("rating rollup for creator %d failed: %v", r.CreatorID, err)
		}
	}

	return r, nil
}

func (s *Service) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Review, error) {
	return s.reviews.ListByCreator(ctx, creatorID)
}
