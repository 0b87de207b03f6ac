package payment

import (
	"context"
	"errors"
	"log"

	"creatortrust/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	payments  PaymentRepositoryInterface
	campaigns CampaignReader
	brands    BrandProfileReader
	creators  CreatorProfileReader
	checkout  CheckoutProvider
}

func NewService(
	payments PaymentRepositoryInterface,
	campaigns CampaignReader,
	brands BrandProfileReader,
	creators CreatorProfileReader,
	checkout CheckoutProvider,
) *Service {
	return &Service{
		payments:  payments,
		campaigns: campaigns,
		brands:    brands,
		creators:  creators,
		checkout:  checkout,
	}
}

// Escrow records funds for a campaign as held. One escrowed entry per
// campaign; a repeat call fails instead of stacking ledger rows.
func (s *Service) Escrow(ctx context.Context, userID int64, req EscrowRequest) (*EscrowResult, error) {
	profile, err := s.brands.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandProfileRequired
		}
		return nil, err
	}

	c, err := s.campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	if c.BrandID != profile.ID {
		return nil, ErrNotOwner
	}

	if existing, err := s.payments.GetByCampaign(ctx, req.CampaignID); err == nil {
		if existing.Status == domain.PaymentEscrowed || existing.Status == domain.PaymentReleased {
			return nil, ErrAlreadyEscrowed
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	amount := req.Amount
	if amount <= 0 {
		amount = c.Budget
	}

	p := &domain.Payment{
		CampaignID:       req.CampaignID,
		Amount:           amount,
		Status:           domain.PaymentEscrowed,
		PaymentReference: "escrow-" + uuid.NewString(),
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	url, err := s.checkout.CheckoutLink(p.PaymentReference, amount)
	if err != nil {
		// The ledger entry stands even when the gateway is down; the brand
		// can retry the checkout page later.
		log.Printf("checkout link for %s failed: %v", p.PaymentReference, err)
	}

	return &EscrowResult{Payment: p, PaymentURL: url}, nil
}

// Release moves a specific payment out of escrow. Only the brand that owns
// the underlying campaign may release, and a released payment stays released.
func (s *Service) Release(ctx context.Context, userID, paymentID int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	profile, err := s.brands.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandProfileRequired
		}
		return nil, err
	}

	c, err := s.campaigns.GetByID(ctx, p.CampaignID)
	if err != nil {
		return nil, err
	}
	if c.BrandID != profile.ID {
		return nil, ErrNotOwner
	}

	if p.Status == domain.PaymentReleased {
		return p, nil
	}
	if p.Status != domain.PaymentEscrowed {
		return nil, ErrNotEscrowed
	}

	if err := s.payments.Release(ctx, paymentID); err != nil {
		return nil, err
	}
	return s.payments.GetByID(ctx, paymentID)
}

// ReleaseForCampaign releases the campaign's escrowed entry during approval.
// An already-released entry is returned unchanged.
func (s *Service) ReleaseForCampaign(ctx context.Context, campaignID int64) (*domain.Payment, error) {
	p, err := s.payments.GetByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if p.Status == domain.PaymentReleased {
		return p, nil
	}
	if p.Status != domain.PaymentEscrowed {
		return nil, ErrNotEscrowed
	}

	if err := s.payments.Release(ctx, p.ID); err != nil {
		return nil, err
	}
	return s.payments.GetByID(ctx, p.ID)
}

// History lists the caller's ledger entries, scoped by role: brands see what
// they funded, creators see what flowed to their campaigns.
func (s *Service) History(ctx context.Context, userID int64, role domain.Role) (*History, error) {
	var (
		payments []domain.Payment
		err      error
	)

	switch role {
	case domain.RoleBrand:
		var profile *domain.BrandProfile
		profile, err = s.brands.GetByUserID(ctx, userID)
		if err == nil {
			payments, err = s.payments.ListByBrand(ctx, profile.ID)
		}
	case domain.RoleCreator:
		var profile *domain.CreatorProfile
		profile, err = s.creators.GetByUserID(ctx, userID)
		if err == nil {
			payments, err = s.payments.ListByCreator(ctx, profile.ID)
		}
	default:
		return &History{Payments: []domain.Payment{}}, nil
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &History{Payments: []domain.Payment{}}, nil
		}
		return nil, err
	}

	h := &History{Payments: payments}
	for _, p := range payments {
		if p.Status == domain.PaymentReleased || p.Status == domain.PaymentEscrowed {
			h.Total += p.Amount
		}
	}
	return h, nil
}
