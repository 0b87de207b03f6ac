package repository

import (
	"context"

	"creatortrust/internal/domain"

	"gorm.io/gorm"
)

type CreatorProfileRepository struct {
	db *gorm.DB
}

func NewCreatorProfileRepository(db *gorm.DB) *CreatorProfileRepository {
	return &CreatorProfileRepository{db: db}
}

func (r *CreatorProfileRepository) Create(ctx context.Context, p *domain.CreatorProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *CreatorProfileRepository) Update(ctx context.Context, p *domain.CreatorProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *CreatorProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.CreatorProfile, error) {
	var p domain.CreatorProfile
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *CreatorProfileRepository) GetByID(ctx context.Context, id int64) (*domain.CreatorProfile, error) {
	var p domain.CreatorProfile
	tx := r.db.WithContext(ctx).First(&p, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// SearchFilters narrows the creator search; zero values mean "any".
type SearchFilters struct {
	Niche        string
	MinFollowers int
	Platform     string
	Location     string
}

func (r *CreatorProfileRepository) Search(ctx context.Context, f SearchFilters) ([]domain.CreatorProfile, error) {
	q := r.db.WithContext(ctx).Model(&domain.CreatorProfile{})

	if f.Niche != "" {
		q = q.Where("niche = ?", f.Niche)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	if f.MinFollowers > 0 {
		q = q.Where("followers_instagram + followers_youtube + followers_tiktok >= ?", f.MinFollowers)
	}
	switch f.Platform {
	case "instagram":
		q = q.Where("instagram_handle <> ''")
	case "youtube":
		q = q.Where("youtube_handle <> ''")
	case "tiktok":
		q = q.Where("tiktok_handle <> ''")
	}

	var profiles []domain.CreatorProfile
	if err := q.Order("rating DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// IncrementTotalCampaigns bumps the completed-campaign counter on approval.
func (r *CreatorProfileRepository) IncrementTotalCampaigns(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.CreatorProfile{}).
		Where("id = ?", id).
		UpdateColumn("total_campaigns", gorm.Expr("total_campaigns + 1")).Error
}

func (r *CreatorProfileRepository) SetRating(ctx context.Context, id int64, rating float64) error {
	return r.db.WithContext(ctx).Model(&domain.CreatorProfile{}).
		Where("id = ?", id).
		Update("rating", rating).Error
}
