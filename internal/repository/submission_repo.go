package repository

import (
	"context"

	"creatortrust/internal/domain"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// GetCurrentByCampaign returns the latest submission for a campaign; a
// resubmission supersedes earlier rows.
func (r *SubmissionRepository) GetCurrentByCampaign(ctx context.Context, campaignID int64) (*domain.Submission, error) {
	var s domain.Submission
	tx := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("submitted_at DESC").
		First(&s)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}
