package payment

import (
	"context"
	"testing"
	"time"

	"creatortrust/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 5
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByCampaign(ctx context.Context, campaignID int64) (*domain.Payment, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Release(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByBrand(ctx context.Context, brandID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, brandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

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

func newTestService() (*Service, *MockPaymentRepository, *MockCampaignReader, *MockBrandProfileReader, *MockCreatorProfileReader) {
	payments := new(MockPaymentRepository)
	campaigns := new(MockCampaignReader)
	brands := new(MockBrandProfileReader)
	creators := new(MockCreatorProfileReader)

	svc := NewService(payments, campaigns, brands, creators, LocalCheckout{})
	return svc, payments, campaigns, brands, creators
}

func TestService_Escrow_Success(t *testing.T) {
	svc, payments, campaigns, brands, _ := newTestService()

	brands.On("GetByUserID", mock.Anything, int64(1)).Return(&domain.BrandProfile{ID: 10, UserID: 1}, nil)
	campaigns.On("GetByID", mock.Anything, int64(100)).Return(&domain.Campaign{ID: 100, BrandID: 10, Budget: 750}, nil)
	payments.On("GetByCampaign", mock.Anything, int64(100)).Return(nil, gorm.ErrRecordNotFound)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Escrow(context.Background(), 1, EscrowRequest{CampaignID: 100})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentEscrowed, result.Payment.Status)
	assert.Equal(t, 750.0, result.Payment.Amount)
	assert.NotEmpty(t, result.Payment.PaymentReference)
	assert.NotEmpty(t, result.PaymentURL)
}

func TestService_Escrow_NotOwner(t *testing.T) {
	svc, _, campaigns, brands, _ := newTestService()

	brands.On("GetByUserID", mock.Anything, int64(9)).Return(&domain.BrandProfile{ID: 99, UserID: 9}, nil)
	campaigns.On("GetByID", mock.Anything, int64(100)).Return(&domain.Campaign{ID: 100, BrandID: 10}, nil)

	_, err := svc.Escrow(context.Background(), 9, EscrowRequest{CampaignID: 100})

	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestService_Escrow_AlreadyFunded(t *testing.T) {
	svc, payments, campaigns, brands, _ := newTestService()

	brands.On("GetByUserID", mock.Anything, int64(1)).Return(&domain.BrandProfile{ID: 10, UserID: 1}, nil)
	campaigns.On("GetByID", mock.Anything, int64(100)).Return(&domain.Campaign{ID: 100, BrandID: 10, Budget: 750}, nil)
	payments.On("GetByCampaign", mock.Anything, int64(100)).Return(&domain.Payment{
		ID: 5, CampaignID: 100, Status: domain.PaymentEscrowed,
	}, nil)

	_, err := svc.Escrow(context.Background(), 1, EscrowRequest{CampaignID: 100})

	assert.ErrorIs(t, err, ErrAlreadyEscrowed)
}

func TestService_Release_Idempotent(t *testing.T) {
	svc, payments, campaigns, brands, _ := newTestService()

	released := time.Now()
	payments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Payment{
		ID: 5, CampaignID: 100, Status: domain.PaymentReleased, ReleasedAt: &released,
	}, nil)
	brands.On("GetByUserID", mock.Anything, int64(1)).Return(&domain.BrandProfile{ID: 10, UserID: 1}, nil)
	campaigns.On("GetByID", mock.Anything, int64(100)).Return(&domain.Campaign{ID: 100, BrandID: 10}, nil)

	p, err := svc.Release(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentReleased, p.Status)
	payments.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestService_ReleaseForCampaign_MovesEscrowToReleased(t *testing.T) {
	svc, payments, _, _, _ := newTestService()

	escrowed := &domain.Payment{ID: 5, CampaignID: 100, Amount: 750, Status: domain.PaymentEscrowed}
	releasedAt := time.Now()
	payments.On("GetByCampaign", mock.Anything, int64(100)).Return(escrowed, nil)
	payments.On("Release", mock.Anything, int64(5)).Return(nil)
	payments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Payment{
		ID: 5, CampaignID: 100, Amount: 750, Status: domain.PaymentReleased, ReleasedAt: &releasedAt,
	}, nil)

	p, err := svc.ReleaseForCampaign(context.Background(), 100)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentReleased, p.Status)
	assert.NotNil(t, p.ReleasedAt)
}

func TestService_ReleaseForCampaign_RefundedFails(t *testing.T) {
	svc, payments, _, _, _ := newTestService()

	payments.On("GetByCampaign", mock.Anything, int64(100)).Return(&domain.Payment{
		ID: 5, CampaignID: 100, Status: domain.PaymentRefunded,
	}, nil)

	_, err := svc.ReleaseForCampaign(context.Background(), 100)

	assert.ErrorIs(t, err, ErrNotEscrowed)
}

func TestService_History_BrandTotals(t *testing.T) {
	svc, payments, _, brands, _ := newTestService()

	brands.On("GetByUserID", mock.Anything, int64(1)).Return(&domain.BrandProfile{ID: 10, UserID: 1}, nil)
	payments.On("ListByBrand", mock.Anything, int64(10)).Return([]domain.Payment{
		{ID: 1, Amount: 100, Status: domain.PaymentReleased},
		{ID: 2, Amount: 200, Status: domain.PaymentEscrowed},
		{ID: 3, Amount: 400, Status: domain.PaymentRefunded},
	}, nil)

	h, err := svc.History(context.Background(), 1, domain.RoleBrand)

	assert.NoError(t, err)
	assert.Len(t, h.Payments, 3)
	assert.Equal(t, 300.0, h.Total)
}
