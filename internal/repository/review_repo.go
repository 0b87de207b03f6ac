package repository

import (
	"context"

	"creatortrust/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	tx := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&reviews)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return reviews, nil
}

// AverageRating returns 0 when the creator has no reviews yet.
func (r *ReviewRepository) AverageRating(ctx context.Context, creatorID int64) (float64, error) {
	var avg *float64
	tx := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("creator_id = ?", creatorID).
		Select("AVG(rating)").
		Scan(&avg)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
