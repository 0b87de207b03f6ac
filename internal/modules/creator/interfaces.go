package creator

import (
	"context"

	"creatortrust/internal/domain"
	"creatortrust/internal/repository"
)

type ProfileRepositoryInterface interface {
	Create(ctx context.Context, p *domain.CreatorProfile) error
	Update(ctx context.Context, p *domain.CreatorProfile) error
	GetByUserID(ctx context.Context, userID int64) (*domain.CreatorProfile, error)
	GetByID(ctx context.Context, id int64) (*domain.CreatorProfile, error)
	Search(ctx context.Context, f repository.SearchFilters) ([]domain.CreatorProfile, error)
}

type CampaignReader interface {
	ListByCreator(ctx context.Context, creatorID int64) ([]domain.Campaign, error)
}

type PaymentReader interface {
	ListByCreator(ctx context.Context, creatorID int64) ([]domain.Payment, error)
}
