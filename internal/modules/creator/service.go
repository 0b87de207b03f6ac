package creator

import (
	"context"
	"errors"

	"creatortrust/internal/domain"
	"creatortrust/internal/repository"

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

// UpsertProfile creates the profile on first submission and updates display
// fields afterwards. Rating and campaign counters are server-owned and never
// taken from the request.
func (s *Service) UpsertProfile(ctx context.Context, userID int64, req UpsertProfileRequest) (*domain.CreatorProfile, error) {
	existing, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing == nil {
		p := &domain.CreatorProfile{
			UserID:             userID,
			Name:               req.Name,
			Bio:                req.Bio,
			Niche:              req.Niche,
			Location:           req.Location,
			InstagramHandle:    req.InstagramHandle,
			YoutubeHandle:      req.YoutubeHandle,
			TiktokHandle:       req.TiktokHandle,
			FollowersInstagram: req.FollowersInstagram,
			FollowersYoutube:   req.FollowersYoutube,
			FollowersTiktok:    req.FollowersTiktok,
			EngagementRate:     req.EngagementRate,
			SubscriptionTier:   domain.TierFree,
		}
		if err := s.profiles.Create(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}

	existing.Name = req.Name
	existing.Bio = req.Bio
	existing.Niche = req.Niche
	existing.Location = req.Location
	existing.InstagramHandle = req.InstagramHandle
	existing.YoutubeHandle = req.YoutubeHandle
	existing.TiktokHandle = req.TiktokHandle
	existing.FollowersInstagram = req.FollowersInstagram
	existing.FollowersYoutube = req.FollowersYoutube
	existing.FollowersTiktok = req.FollowersTiktok
	existing.EngagementRate = req.EngagementRate

	if err := s.profiles.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) GetProfileByUserID(ctx context.Context, userID int64) (*domain.CreatorProfile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Search(ctx context.Context, f repository.SearchFilters) ([]domain.CreatorProfile, error) {
	return s.profiles.Search(ctx, f)
}

func (s *Service) GetDashboard(ctx context.Context, userID int64) (*Dashboard, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	campaigns, err := s.campaigns.ListByCreator(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	payments, err := s.payments.ListByCreator(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	var total, pending float64
	for _, p := range payments {
		switch p.Status {
		case domain.PaymentReleased:
			total += p.Amount
		case domain.PaymentEscrowed:
			pending += p.Amount
		}
	}

	return &Dashboard{
		Profile:         profile,
		Campaigns:       campaigns,
		TotalEarnings:   total,
		PendingEarnings: pending,
		TotalCampaigns:  len(campaigns),
		Rating:          profile.Rating,
	}, nil
}
