package brand

import (
	"context"
	"errors"

	"creatortrust/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	profiles  ProfileRepositoryInterface
	campaigns CampaignReader
	payments  PaymentReader
}

func NewService(profiles ProfileRepositoryInterface, campaigns CampaignReader, payments PaymentReader) *Service {
	return &Service{
		profiles:  profiles,
		campaigns: campaigns,
		payments:  payments,
	}
}

func (s *Service) UpsertProfile(ctx context.Context, userID int64, req UpsertProfileRequest) (*domain.BrandProfile, error) {
	existing, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing == nil {
		p := &domain.BrandProfile{
			UserID:      userID,
			CompanyName: req.CompanyName,
			Industry:    req.Industry,
			Website:     req.Website,
			Description: req.Description,
		}
		if err := s.profiles.Create(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}

	existing.CompanyName = req.CompanyName
	existing.Industry = req.Industry
	existing.Website = req.Website
	existing.Description = req.Description

	if err := s.profiles.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) GetProfileByUserID(ctx context.Context, userID int64) (*domain.BrandProfile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) GetDashboard(ctx context.Context, userID int64) (*Dashboard, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	campaigns, err := s.campaigns.ListByBrand(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	payments, err := s.payments.ListByBrand(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	var spent, pending float64
	for _, p := range payments {
		switch p.Status {
		case domain.PaymentReleased:
			spent += p.Amount
		case domain.PaymentEscrowed:
			pending += p.Amount
		}
	}

	active := 0
	for _, c := range campaigns {
		if c.Status.Active() {
			active++
		}
	}

	return &Dashboard{
		Profile:         profile,
		Campaigns:       campaigns,
		TotalSpent:      spent,
		PendingAmount:   pending,
		TotalCampaigns:  len(campaigns),
		ActiveCampaigns: active,
	}, nil
}
