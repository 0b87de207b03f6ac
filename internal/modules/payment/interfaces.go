package payment

import (
	"context"

	"creatortrust/internal/domain"
)

type PaymentRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByCampaign(ctx context.Context, campaignID int64) (*domain.Payment, error)
	Release(ctx context.Context, id int64) error
	ListByBrand(ctx context.Context, brandID int64) ([]domain.Payment, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]domain.Payment, error)
}

type CampaignReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
}

type BrandProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.BrandProfile, error)
}

type CreatorProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.CreatorProfile, error)
}

// CheckoutProvider turns a ledger entry into a hosted payment page URL.
type CheckoutProvider interface {
	CheckoutLink(orderRef string, amount float64) (string, error)
}
