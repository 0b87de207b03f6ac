package analytics

import (
	"context"
	"testing"

	"creatortrust/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockCampaignReader struct {
	mock.Mock
}

func (m *MockCampaignReader) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *MockCampaignReader) ListByBrand(ctx context.Context, brandID int64) ([]domain.Campaign, error) {
	args := m.Called(ctx, brandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *MockCampaignReader) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Campaign, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

type MockSubmissionReader struct {
	mock.Mock
}

func (m *MockSubmissionReader) GetCurrentByCampaign(ctx context.Context, campaignID int64) (*domain.Submission, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

type MockPaymentReader struct {
	mock.Mock
}

func (m *MockPaymentReader) ListByBrand(ctx context.Context, brandID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, brandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentReader) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockBrandProfileReader struct {
	mock.Mock
}

func (m *MockBrandProfileReader) GetByUserID(ctx context.Context, userID int64) (*domain.BrandProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BrandProfile), args.Error(1)
}

type MockCreatorProfileReader struct {
	mock.Mock
}

func (m *MockCreatorProfileReader) GetByUserID(ctx context.Context, userID int64) (*domain.CreatorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreatorProfile), args.Error(1)
}

func newTestService() (*Service, *MockCampaignReader, *MockSubmissionReader, *MockPaymentReader, *MockBrandProfileReader, *MockCreatorProfileReader) {
	campaigns := new(MockCampaignReader)
	submissions := new(MockSubmissionReader)
	payments := new(MockPaymentReader)
	brands := new(MockBrandProfileReader)
	creators := new(MockCreatorProfileReader)

	svc := NewService(campaigns, submissions, payments, brands, creators)
	return svc, campaigns, submissions, payments, brands, creators
}

func TestService_CampaignReport_NoSubmissionIsZeros(t *testing.T) {
	svc, campaigns, submissions, _, _, _ := newTestService()

	campaigns.On("GetByID", mock.Anything, int64(100)).Return(&domain.Campaign{ID: 100, Status: domain.CampaignOpen}, nil)
	submissions.On("GetCurrentByCampaign", mock.Anything, int64(100)).Return(nil, gorm.ErrRecordNotFound)

	report, err := svc.CampaignReport(context.Background(), 100)

	assert.NoError(t, err)
	assert.False(t, report.HasData)
	assert.Equal(t, ContentMetrics{}, report.Metrics)
}

func TestService_CampaignReport_WithSubmission(t *testing.T) {
	svc, campaigns, submissions, _, _, _ := newTestService()

	campaigns.On("GetByID", mock.Anything, int64(100)).Return(&domain.Campaign{ID: 100, Status: domain.CampaignSubmitted}, nil)
	submissions.On("GetCurrentByCampaign", mock.Anything, int64(100)).Return(&domain.Submission{
		CampaignID: 100, Views: 1200, Likes: 90, Comments: 12, EngagementRate: 8.5,
	}, nil)

	report, err := svc.CampaignReport(context.Background(), 100)

	assert.NoError(t, err)
	assert.True(t, report.HasData)
	assert.Equal(t, 1200, report.Metrics.Views)
	assert.Equal(t, 8.5, report.Metrics.EngagementRate)
}

func TestService_CreatorReport_AggregatesAcrossCampaigns(t *testing.T) {
	svc, campaigns, submissions, payments, _, creators := newTestService()

	creators.On("GetByUserID", mock.Anything, int64(2)).Return(&domain.CreatorProfile{ID: 20, UserID: 2}, nil)
	campaigns.On("ListByCreator", mock.Anything, int64(20)).Return([]domain.Campaign{
		{ID: 1, Status: domain.CampaignCompleted},
		{ID: 2, Status: domain.CampaignInProgress},
	}, nil)
	submissions.On("GetCurrentByCampaign", mock.Anything, int64(1)).Return(&domain.Submission{
		Views: 1000, Likes: 50, Comments: 5, EngagementRate: 6.0,
	}, nil)
	submissions.On("GetCurrentByCampaign", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)
	payments.On("ListByCreator", mock.Anything, int64(20)).Return([]domain.Payment{
		{Amount: 500, Status: domain.PaymentReleased},
		{Amount: 300, Status: domain.PaymentEscrowed},
	}, nil)

	report, err := svc.CreatorReport(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, 2, report.TotalCampaigns)
	assert.Equal(t, 1, report.CompletedCampaigns)
	assert.Equal(t, 1, report.ActiveCampaigns)
	assert.Equal(t, 500.0, report.TotalEarnings)
	assert.Equal(t, 1000, report.Metrics.Views)
	assert.Equal(t, 6.0, report.Metrics.EngagementRate)
}

func TestService_BrandReport_StatusBreakdownAndSpend(t *testing.T) {
	svc, campaigns, submissions, payments, brands, _ := newTestService()

	brands.On("GetByUserID", mock.Anything, int64(1)).Return(&domain.BrandProfile{ID: 10, UserID: 1}, nil)
	campaigns.On("ListByBrand", mock.Anything, int64(10)).Return([]domain.Campaign{
		{ID: 1, Status: domain.CampaignOpen, Budget: 100},
		{ID: 2, Status: domain.CampaignCompleted, Budget: 400},
	}, nil)
	submissions.On("GetCurrentByCampaign", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)
	submissions.On("GetCurrentByCampaign", mock.Anything, int64(2)).Return(&domain.Submission{Views: 2500}, nil)
	payments.On("ListByBrand", mock.Anything, int64(10)).Return([]domain.Payment{
		{Amount: 400, Status: domain.PaymentReleased},
	}, nil)

	report, err := svc.BrandReport(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 2, report.TotalCampaigns)
	assert.Equal(t, 1, report.ByStatus["open"])
	assert.Equal(t, 1, report.ByStatus["completed"])
	assert.Equal(t, 500.0, report.TotalBudget)
	assert.Equal(t, 400.0, report.TotalSpent)
	assert.Equal(t, 2500, report.TotalReach)
}
