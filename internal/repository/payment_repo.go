package repository

import (
	"context"
	"time"

	"creatortrust/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	tx := r.db.WithContext(ctx).First(&p, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PaymentRepository) GetByCampaign(ctx context.Context, campaignID int64) (*domain.Payment, error) {
	var p domain.Payment
	tx := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// Release flips an escrowed payment to released. The guard on status keeps
// the transition monotonic: a released payment is never touched again.
func (r *PaymentRepository) Release(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("id = ? AND status = ?", id, domain.PaymentEscrowed).
		Updates(map[string]any{
			"status":      domain.PaymentReleased,
			"released_at": now,
		}).Error
}

// ListByBrand returns ledger entries for every campaign owned by the brand
// profile, newest first.
func (r *PaymentRepository) ListByBrand(ctx context.Context, brandID int64) ([]domain.Payment, error) {
	var payments []domain.Payment
	tx := r.db.WithContext(ctx).
		Joins("JOIN campaigns ON campaigns.id = payments.campaign_id").
		Where("campaigns.brand_id = ?", brandID).
		Order("payments.created_at DESC").
		Find(&payments)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return payments, nil
}

func (r *PaymentRepository) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Payment, error) {
	var payments []domain.Payment
	tx := r.db.WithContext(ctx).
		Joins("JOIN campaigns ON campaigns.id = payments.campaign_id").
		Where("campaigns.creator_id = ?", creatorID).
		Order("payments.created_at DESC").
		Find(&payments)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return payments, nil
}
