package review

import (
	"context"

	"creatortrust/internal/domain"
)

type ReviewRepositoryInterface interface {
	Create(ctx context.Context, r *domain.Review) error
	ListByCreator(ctx context.Context, creatorID int64) ([]domain.Review, error)
	AverageRating(ctx context.Context, creatorID int64) (float64, error)
}

type CampaignReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
}

type BrandProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.BrandProfile, error)
}

// CreatorRatingUpdater rolls the review average into the creator profile.
type CreatorRatingUpdater interface {
	SetRating(ctx context.Context, id int64, rating float64) error
}
