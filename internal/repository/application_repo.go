package repository

import (
	"context"

	"creatortrust/internal/domain"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Application, error) {
	var apps []domain.Application
	tx := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC").
		Find(&apps)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return apps, nil
}

func (r *ApplicationRepository) Exists(ctx context.Context, campaignID, creatorID int64) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("campaign_id = ? AND creator_id = ?", campaignID, creatorID).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *ApplicationRepository) CountByCampaign(ctx context.Context, campaignID int64) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("campaign_id = ?", campaignID).
		Count(&count)
	return count, tx.Error
}
