package campaign

import (
	"context"

	"creatortrust/internal/domain"
	"creatortrust/internal/repository"
)

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Campaign) error
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	List(ctx context.Context, f repository.ListFilters) ([]domain.Campaign, error)
	Update(ctx context.Context, c *domain.Campaign) error
	UpdateStatus(ctx context.Context, id int64, status domain.CampaignStatus) error
	Assign(ctx context.Context, id, creatorID int64) error
}

type ApplicationRepositoryInterface interface {
	Create(ctx context.Context, a *domain.Application) error
	ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Application, error)
	Exists(ctx context.Context, campaignID, creatorID int64) (bool, error)
	CountByCampaign(ctx context.Context, campaignID int64) (int64, error)
}

type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Submission) error
	GetCurrentByCampaign(ctx context.Context, campaignID int64) (*domain.Submission, error)
}

type BrandProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.BrandProfile, error)
	GetByID(ctx context.Context, id int64) (*domain.BrandProfile, error)
}

type CreatorProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.CreatorProfile, error)
	GetByID(ctx context.Context, id int64) (*domain.CreatorProfile, error)
	IncrementTotalCampaigns(ctx context.Context, id int64) error
}

// PaymentReleaser releases the escrowed ledger entry when a brand approves.
type PaymentReleaser interface {
	ReleaseForCampaign(ctx context.Context, campaignID int64) (*domain.Payment, error)
}

// Notifier delivers in-app notifications; failures are logged, never fatal.
type Notifier interface {
	CampaignApplied(ctx context.Context, brandUserID, campaignID int64, creatorName string)
	CampaignAssigned(ctx context.Context, creatorUserID, campaignID int64, title string)
	CampaignSubmitted(ctx context.Context, brandUserID, campaignID int64, title string)
	CampaignApproved(ctx context.Context, creatorUserID, campaignID int64, title string)
}
