package campaign

import (
	"context"
	"errors"
	"time"

	"creatortrust/internal/domain"
	"creatortrust/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	campaigns    CampaignRepositoryInterface
	applications ApplicationRepositoryInterface
	submissions  SubmissionRepositoryInterface
	brands       BrandProfileReader
	creators     CreatorProfileReader
	payments     PaymentReleaser
	notifier     Notifier
}

func NewService(
	campaigns CampaignRepositoryInterface,
	applications ApplicationRepositoryInterface,
	submissions SubmissionRepositoryInterface,
	brands BrandProfileReader,
	creators CreatorProfileReader,
	payments PaymentReleaser,
	notifier Notifier,
) *Service {
	return &Service{
		campaigns:    campaigns,
		applications: applications,
		submissions:  submissions,
		brands:       brands,
		creators:     creators,
		payments:     payments,
		notifier:     notifier,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*domain.Campaign, error) {
	profile, err := s.brands.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandProfileRequired
		}
		return nil, err
	}

	c := &domain.Campaign{
		BrandID:             profile.ID,
		Title:               req.Title,
		Description:         req.Description,
		Budget:              req.Budget,
		Platforms:           req.Platforms,
		DurationDays:        req.DurationDays,
		Status:              domain.CampaignOpen,
		Niche:               req.Niche,
		MinFollowers:        req.MinFollowers,
		ContentRequirements: req.ContentRequirements,
		Deadline:            time.Now().AddDate(0, 0, req.DurationDays),
	}

	if err := s.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, f repository.ListFilters) ([]domain.Campaign, error) {
	return s.campaigns.List(ctx, f)
}

func (s *Service) GetDetail(ctx context.Context, id int64) (*Detail, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	detail := &Detail{Campaign: c}

	if brand, err := s.brands.GetByID(ctx, c.BrandID); err == nil {
		detail.Brand = brand
	}

	if c.CreatorID != nil {
		if creator, err := s.creators.GetByID(ctx, *c.CreatorID); err == nil {
			detail.Creator = creator
		}
	}

	if sub, err := s.submissions.GetCurrentByCampaign(ctx, id); err == nil {
		detail.Submission = sub
	}

	if count, err := s.applications.CountByCampaign(ctx, id); err == nil {
		detail.Applicants = count
	}

	return detail, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateRequest) (*domain.Campaign, error) {
	c, err := s.ownedCampaign(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		c.Title = req.Title
	}
	if req.Description != "" {
		c.Description = req.Description
	}
	if req.Budget > 0 {
		c.Budget = req.Budget
	}
	if len(req.Platforms) > 0 {
		c.Platforms = req.Platforms
	}
	if req.Niche != "" {
		c.Niche = req.Niche
	}
	if req.MinFollowers > 0 {
		c.MinFollowers = req.MinFollowers
	}
	if req.ContentRequirements != "" {
		c.ContentRequirements = req.ContentRequirements
	}
	if req.Status != "" {
		c.Status = domain.CampaignStatus(req.Status)
	}

	if err := s.campaigns.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply records a creator's application against an open campaign. The
// original flow accepted applications without persisting them; here each one
// becomes a row so the brand can pick an applicant later.
func (s *Service) Apply(ctx context.Context, userID, campaignID int64, req ApplyRequest) (*domain.Application, error) {
	profile, err := s.creators.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreatorProfileRequired
		}
		return nil, err
	}

	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if c.Status != domain.CampaignOpen {
		return nil, ErrNotOpen
	}

	exists, err := s.applications.Exists(ctx, campaignID, profile.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	app := &domain.Application{
		CampaignID: campaignID,
		CreatorID:  profile.ID,
		Message:    req.Message,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}

	if brand, err := s.brands.GetByID(ctx, c.BrandID); err == nil {
		s.notifier.CampaignApplied(ctx, brand.UserID, campaignID, profile.Name)
	}

	return app, nil
}

func (s *Service) ListApplicants(ctx context.Context, userID, campaignID int64) ([]Applicant, error) {
	if _, err := s.ownedCampaign(ctx, userID, campaignID); err != nil {
		return nil, err
	}

	apps, err := s.applications.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	applicants := make([]Applicant, 0, len(apps))
	for _, app := range apps {
		profile, err := s.creators.GetByID(ctx, app.CreatorID)
		if err != nil {
			continue
		}
		applicants = append(applicants, Applicant{Application: app, Profile: *profile})
	}
	return applicants, nil
}

func (s *Service) Assign(ctx context.Context, userID, campaignID int64, req AssignRequest) (*domain.Campaign, error) {
	c, err := s.ownedCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	if c.Status != domain.CampaignOpen {
		return nil, ErrNotOpen
	}

	creator, err := s.creators.GetByID(ctx, req.CreatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreatorProfileRequired
		}
		return nil, err
	}

	if err := s.campaigns.Assign(ctx, campaignID, creator.ID); err != nil {
		return nil, err
	}

	s.notifier.CampaignAssigned(ctx, creator.UserID, campaignID, c.Title)

	return s.campaigns.GetByID(ctx, campaignID)
}

// Submit attaches deliverables. Resubmission is allowed while the campaign
// is in flight; the newest submission becomes the current one.
func (s *Service) Submit(ctx context.Context, userID, campaignID int64, req SubmitRequest) (*domain.Submission, error) {
	profile, err := s.creators.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreatorProfileRequired
		}
		return nil, err
	}

	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if c.CreatorID == nil || *c.CreatorID != profile.ID {
		return nil, ErrNotAssignedCreator
	}

	switch c.Status {
	case domain.CampaignAssigned, domain.CampaignInProgress, domain.CampaignSubmitted:
	default:
		return nil, ErrNotAssignedCreator
	}

	sub := &domain.Submission{
		CampaignID:   campaignID,
		ContentLinks: req.ContentLinks,
		Notes:        req.Notes,
		SubmittedAt:  time.Now(),
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, err
	}

	if c.Status != domain.CampaignSubmitted {
		if err := s.campaigns.UpdateStatus(ctx, campaignID, domain.CampaignSubmitted); err != nil {
			return nil, err
		}
	}

	if brand, err := s.brands.GetByID(ctx, c.BrandID); err == nil {
		s.notifier.CampaignSubmitted(ctx, brand.UserID, campaignID, c.Title)
	}

	return sub, nil
}

// Approve completes the campaign, releases the escrowed payment and credits
// the creator's completed-campaign counter.
func (s *Service) Approve(ctx context.Context, userID, campaignID int64) (*ApproveResult, error) {
	c, err := s.ownedCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	if c.Status != domain.CampaignSubmitted {
		return nil, ErrNotSubmitted
	}

	if err := s.campaigns.UpdateStatus(ctx, campaignID, domain.CampaignCompleted); err != nil {
		return nil, err
	}

	payment, err := s.payments.ReleaseForCampaign(ctx, campaignID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if c.CreatorID != nil {
		if err := s.creators.IncrementTotalCampaigns(ctx, *c.CreatorID); err == nil {
			if creator, err := s.creators.GetByID(ctx, *c.CreatorID); err == nil {
				s.notifier.CampaignApproved(ctx, creator.UserID, campaignID, c.Title)
			}
		}
	}

	updated, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return &ApproveResult{Campaign: updated, Payment: payment}, nil
}

func (s *Service) ownedCampaign(ctx context.Context, userID, campaignID int64) (*domain.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, campaignID)
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

	if profile.ID != c.BrandID {
		return nil, ErrNotOwner
	}
	return c, nil
}
