package analytics

import (
	"context"
	"errors"

	"creatortrust/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	campaigns   CampaignReader
	submissions SubmissionReader
	payments    PaymentReader
	brands      BrandProfileReader
	creators    CreatorProfileReader
}

func NewService(
	campaigns CampaignReader,
	submissions SubmissionReader,
	payments PaymentReader,
	brands BrandProfileReader,
	creators CreatorProfileReader,
) *Service {
	return &Service{
		campaigns:   campaigns,
		submissions: submissions,
		payments:    payments,
		brands:      brands,
		creators:    creators,
	}
}

// CampaignReport reports the current submission's numbers for one campaign.
// Campaigns without content report zeros rather than an error.
func (s *Service) CampaignReport(ctx context.Context, campaignID int64) (*CampaignReport, error) {
	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}

	report := &CampaignReport{Campaign: c}
	if sub, err := s.submissions.GetCurrentByCampaign(ctx, campaignID); err == nil {
		report.HasData = true
		report.Metrics = ContentMetrics{
			Views:          sub.Views,
			Likes:          sub.Likes,
			Comments:       sub.Comments,
			EngagementRate: sub.EngagementRate,
		}
	}
	return report, nil
}

func (s *Service) CreatorReport(ctx context.Context, userID int64) (*CreatorReport, error) {
	profile, err := s.creators.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	campaigns, err := s.campaigns.ListByCreator(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	report := &CreatorReport{TotalCampaigns: len(campaigns)}
	var rated int
	for _, c := range campaigns {
		switch {
		case c.Status == domain.CampaignCompleted:
			report.CompletedCampaigns++
		case c.Status.Active():
			report.ActiveCampaigns++
		}

		sub, err := s.submissions.GetCurrentByCampaign(ctx, c.ID)
		if err != nil {
			continue
		}
		report.Metrics.Views += sub.Views
		report.Metrics.Likes += sub.Likes
		report.Metrics.Comments += sub.Comments
		if sub.EngagementRate > 0 {
			report.Metrics.EngagementRate += sub.EngagementRate
			rated++
		}
	}
	if rated > 0 {
		report.Metrics.EngagementRate /= float64(rated)
	}

	payments, err := s.payments.ListByCreator(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if p.Status == domain.PaymentReleased {
			report.TotalEarnings += p.Amount
		}
	}

	return report, nil
}

func (s *Service) BrandReport(ctx context.Context, userID int64) (*BrandReport, error) {
	profile, err := s.brands.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	campaigns, err := s.campaigns.ListByBrand(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	report := &BrandReport{
		TotalCampaigns: len(campaigns),
		ByStatus:       make(map[string]int),
	}
	var rated int
	for _, c := range campaigns {
		report.ByStatus[string(c.Status)]++
		report.TotalBudget += c.Budget
		if c.Status.Active() {
			report.ActiveCampaigns++
		}

		sub, err := s.submissions.GetCurrentByCampaign(ctx, c.ID)
		if err != nil {
			continue
		}
		report.TotalReach += sub.Views
		report.Metrics.Views += sub.Views
		report.Metrics.Likes += sub.Likes
		report.Metrics.Comments += sub.Comments
		if sub.EngagementRate > 0 {
			report.Metrics.EngagementRate += sub.EngagementRate
			rated++
		}
	}
	if rated > 0 {
		report.Metrics.EngagementRate /= float64(rated)
	}

	payments, err := s.payments.ListByBrand(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if p.Status == domain.PaymentReleased {
			report.TotalSpent += p.Amount
		}
	}

	return report, nil
}
