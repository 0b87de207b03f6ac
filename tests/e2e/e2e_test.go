package e2e

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"creatortrust/internal/app"
	"creatortrust/internal/config"
	"creatortrust/internal/database"
	"creatortrust/pkg/client"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:    "e2e-secret",
		JWTAccessTTL: time.Hour,
	}

	srv := httptest.NewServer(app.BuildRouter(db, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server) *client.Client {
	t.Helper()
	c, err := client.New(srv.URL, client.NewMemoryTokenStore(), srv.Client())
	require.NoError(t, err)
	return c
}

// The full marketplace flow: both parties register, the brand runs a
// campaign end to end and the money and reputation land where they should.
func TestMarketplaceLifecycle(t *testing.T) {
	srv := newTestAPI(t)
	ctx := context.Background()

	brand := newClient(t, srv)
	creator := newClient(t, srv)

	// Sign up both sides.
	_, err := brand.Register(ctx, client.RegisterInput{
		Email: "marketing@acme.io", Password: "password123", UserType: "brand",
	})
	require.NoError(t, err)

	_, err = creator.Register(ctx, client.RegisterInput{
		Email: "dana@creators.io", Password: "password123", UserType: "creator",
	})
	require.NoError(t, err)

	// Duplicate registration is rejected with the server's text.
	_, err = newClient(t, srv).Register(ctx, client.RegisterInput{
		Email: "dana@creators.io", Password: "password123", UserType: "creator",
	})
	var reqErr *client.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 400, reqErr.StatusCode)

	// Onboarding.
	_, err = brand.UpsertBrandProfile(ctx, client.BrandProfileInput{
		CompanyName: "Acme Gear", Industry: "Electronics",
	})
	require.NoError(t, err)

	creatorProfile, err := creator.UpsertCreatorProfile(ctx, client.CreatorProfileInput{
		Name: "Dana Park", Bio: "Tech reviews and unboxings", Niche: "Tech", Location: "Berlin",
		InstagramHandle: "dana.tech", FollowersInstagram: 48000, EngagementRate: 7.2,
	})
	require.NoError(t, err)
	assert.Equal(t, "free", creatorProfile.SubscriptionTier)

	// Campaign goes up.
	campaign, err := brand.CreateCampaign(ctx, client.CampaignInput{
		Title: "Earbuds launch", Description: "Unbox and review",
		Budget: 800, Platforms: []string{"instagram"}, DurationDays: 21,
		Niche: "Tech", MinFollowers: 20000, ContentRequirements: "1 reel",
	})
	require.NoError(t, err)
	assert.Equal(t, "open", campaign.Status)

	// Funds go into escrow before work starts.
	escrow, err := brand.EscrowPayment(ctx, campaign.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "escrowed", escrow.Payment.Status)
	assert.Equal(t, 800.0, escrow.Payment.Amount)
	assert.NotEmpty(t, escrow.PaymentURL)

	// Creator applies, brand assigns from the applicant list.
	_, err = creator.ApplyToCampaign(ctx, campaign.ID, "Big fan of the brand")
	require.NoError(t, err)

	// Applying twice is rejected.
	_, err = creator.ApplyToCampaign(ctx, campaign.ID, "again")
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "ALREADY_APPLIED", reqErr.Code)

	applicants, err := brand.ListApplicants(ctx, campaign.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)

	assigned, err := brand.AssignCampaign(ctx, campaign.ID, applicants[0].Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "assigned", assigned.Status)

	// Applications close once assigned.
	late := newClient(t, srv)
	_, err = late.Register(ctx, client.RegisterInput{
		Email: "liam@creators.io", Password: "password123", UserType: "creator",
	})
	require.NoError(t, err)
	_, err = late.UpsertCreatorProfile(ctx, client.CreatorProfileInput{
		Name: "Liam", Bio: "Gym content", Niche: "Fitness", Location: "Oslo",
	})
	require.NoError(t, err)
	_, err = late.ApplyToCampaign(ctx, campaign.ID, "me too")
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "NOT_OPEN", reqErr.Code)

	// Content lands.
	sub, err := creator.SubmitContent(ctx, campaign.ID, []string{"https://instagram.com/p/abc"}, "done")
	require.NoError(t, err)
	assert.NotZero(t, sub.ID)

	detail, err := creator.GetCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, "submitted", detail.Campaign.Status)
	require.NotNil(t, detail.Submission)

	// Approval completes the campaign and releases the money.
	completed, payment, err := brand.ApproveCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	require.NotNil(t, payment)
	assert.Equal(t, "released", payment.Status)
	require.NotNil(t, payment.ReleasedAt)

	// Releasing again stays released.
	released, err := brand.ReleasePayment(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "released", released.Status)

	// Review rolls into the creator's rating.
	_, err = brand.CreateReview(ctx, client.ReviewInput{
		CampaignID: campaign.ID, Rating: 5, Comment: "Great work",
	})
	require.NoError(t, err)

	refreshed, err := brand.GetCreatorProfile(ctx, creatorProfile.UserID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, refreshed.Rating)
	assert.Equal(t, 1, refreshed.TotalCampaigns)

	// Ledgers line up on both sides.
	creatorHistory, err := creator.PaymentHistory(ctx)
	require.NoError(t, err)
	require.Len(t, creatorHistory.Payments, 1)
	assert.Equal(t, 800.0, creatorHistory.Total)

	brandHistory, err := brand.PaymentHistory(ctx)
	require.NoError(t, err)
	require.Len(t, brandHistory.Payments, 1)

	// Lifecycle events left notifications for the creator.
	notifications, err := creator.Notifications(ctx, 0)
	require.NoError(t, err)
	types := make([]string, 0, len(notifications))
	for _, n := range notifications {
		types = append(types, n.Type)
	}
	assert.Contains(t, types, "campaign_assigned")
	assert.Contains(t, types, "campaign_approved")

	// Analytics reflect the finished campaign.
	report, err := creator.CreatorAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.CompletedCampaigns)
	assert.Equal(t, 800.0, report.TotalEarnings)
}

func TestAuthAndSearch(t *testing.T) {
	srv := newTestAPI(t)
	ctx := context.Background()

	anon := newClient(t, srv)

	// Protected surface rejects anonymous calls.
	_, err := anon.Me(ctx)
	var reqErr *client.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 401, reqErr.StatusCode)

	creator := newClient(t, srv)
	_, err = creator.Register(ctx, client.RegisterInput{
		Email: "dana@creators.io", Password: "password123", UserType: "creator",
	})
	require.NoError(t, err)

	_, err = creator.UpsertCreatorProfile(ctx, client.CreatorProfileInput{
		Name: "Dana Park", Bio: "Tech reviews and unboxings", Niche: "Tech", Location: "Berlin",
		InstagramHandle: "dana.tech", FollowersInstagram: 48000,
	})
	require.NoError(t, err)

	// /auth/me carries the role-matching profile.
	id, err := creator.Me(ctx)
	require.NoError(t, err)
	require.NotNil(t, id.CreatorProfile)
	assert.Equal(t, "Dana Park", id.CreatorProfile.Name)
	assert.Nil(t, id.BrandProfile)

	// Search is public.
	results, err := anon.SearchCreators(ctx, client.CreatorSearchFilters{Niche: "Tech", MinFollowers: 10000})
	require.NoError(t, err)
	require.Len(t, results, 1)

	none, err := anon.SearchCreators(ctx, client.CreatorSearchFilters{Niche: "Fitness"})
	require.NoError(t, err)
	assert.Empty(t, none)

	// Wrong password is a 401 with server text.
	_, err = newClient(t, srv).Login(ctx, "dana@creators.io", "wrong")
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 401, reqErr.StatusCode)
	assert.NotEmpty(t, reqErr.Message)
}
