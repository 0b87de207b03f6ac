package analytics

import (
	"context"

	"creatortrust/internal/domain"
)

type CampaignReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	ListByBrand(ctx context.Context, brandID int64) ([]domain.Campaign, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]domain.Campaign, error)
}

type SubmissionReader interface {
	GetCurrentByCampaign(ctx context.Context, campaignID int64) (*domain.Submission, error)
}

type PaymentReader interface {
	ListByBrand(ctx context.Context, brandID int64) ([]domain.Payment, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]domain.Payment, error)
}

type BrandProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.BrandProfile, error)
}

type CreatorProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.CreatorProfile, error)
}
