package repository

import (
	"context"

	"creatortrust/internal/domain"

	"gorm.io/gorm"
)

type BrandProfileRepository struct {
	db *gorm.DB
}

func NewBrandProfileRepository(db *gorm.DB) *BrandProfileRepository {
	return &BrandProfileRepository{db: db}
}

func (r *BrandProfileRepository) Create(ctx context.Context, p *domain.BrandProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *BrandProfileRepository) Update(ctx context.Context, p *domain.BrandProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *BrandProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.BrandProfile, error) {
	var p domain.BrandProfile
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *BrandProfileRepository) GetByID(ctx context.Context, id int64) (*domain.BrandProfile, error) {
	var p domain.BrandProfile
	tx := r.db.WithContext(ctx).First(&p, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}
