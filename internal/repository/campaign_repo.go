package repository

import (
	"context"
	"time"

	"creatortrust/internal/domain"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	tx := r.db.WithContext(ctx).First(&c, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

// ListFilters narrows the public campaign feed; zero values mean "any".
type ListFilters struct {
	Status    string
	Niche     string
	BudgetMin float64
	BudgetMax float64
}

func (r *CampaignRepository) List(ctx context.Context, f ListFilters) ([]domain.Campaign, error) {
	q := r.db.WithContext(ctx).Model(&domain.Campaign{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Niche != "" {
		q = q.Where("niche = ?", f.Niche)
	}
	if f.BudgetMin > 0 {
		q = q.Where("budget >= ?", f.BudgetMin)
	}
	if f.BudgetMax > 0 {
		q = q.Where("budget <= ?", f.BudgetMax)
	}

	var campaigns []domain.Campaign
	if err := q.Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *CampaignRepository) ListByBrand(ctx context.Context, brandID int64) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	tx := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Find(&campaigns)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return campaigns, nil
}

func (r *CampaignRepository) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	tx := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&campaigns)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return campaigns, nil
}

func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CampaignRepository) UpdateStatus(ctx context.Context, id int64, status domain.CampaignStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Campaign{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

// Assign sets the creator and moves the campaign to assigned in one update.
func (r *CampaignRepository) Assign(ctx context.Context, id, creatorID int64) error {
	return r.db.WithContext(ctx).Model(&domain.Campaign{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"creator_id": creatorID,
			"status":     domain.CampaignAssigned,
			"updated_at": time.Now(),
		}).Error
}
