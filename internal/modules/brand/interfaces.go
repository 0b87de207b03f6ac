package brand

import (
	"context"

	"creatortrust/internal/domain"
)

type ProfileRepositoryInterface interface {
	Create(ctx context.Context, p *domain.BrandProfile) error
	Update(ctx context.Context, p *domain.BrandProfile) error
	GetByUserID(ctx context.Context, userID int64) (*domain.BrandProfile, error)
	GetByID(ctx context.Context, id int64) (*domain.BrandProfile, error)
}

type CampaignReader interface {
	ListByBrand(ctx context.Context, brandID int64) ([]domain.Campaign, error)
}

type PaymentReader interface {
	ListByBrand(ctx context.Context, brandID int64) ([]domain.Payment, error)
}
