package client

import (
	"encoding/json"
	"time"
)

// Mirror types for the API payloads. Kept free of persistence tags so the
// package stands alone for external consumers.

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatorProfile struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"user_id"`
	Name               string  `json:"name"`
	Bio                string  `json:"bio"`
	Niche              string  `json:"niche"`
	Location           string  `json:"location"`
	InstagramHandle    string  `json:"instagram_handle"`
	TiktokHandle       string  `json:"tiktok_handle"`
	YoutubeHandle      string  `json:"youtube_handle"`
	FollowersInstagram int     `json:"followers_instagram"`
	FollowersTiktok    int     `json:"followers_tiktok"`
	FollowersYoutube   int     `json:"followers_youtube"`
	EngagementRate     float64 `json:"engagement_rate"`
	SubscriptionTier   string  `json:"subscription_tier"`
	Rating             float64 `json:"rating"`
	TotalCampaigns     int     `json:"total_campaigns"`
}

type BrandProfile struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

type Campaign struct {
	ID                  int64     `json:"id"`
	BrandID             int64     `json:"brand_id"`
	CreatorID           *int64    `json:"creator_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Budget              float64   `json:"budget"`
	Platforms           []string  `json:"platforms"`
	DurationDays        int       `json:"duration_days"`
	Status              string    `json:"status"`
	Niche               string    `json:"niche"`
	MinFollowers        int       `json:"min_followers"`
	ContentRequirements string    `json:"content_requirements"`
	Deadline            time.Time `json:"deadline"`
	CreatedAt           time.Time `json:"created_at"`
}

type Application struct {
	ID         int64     `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	CreatorID  int64     `json:"creator_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

type Submission struct {
	ID             int64     `json:"id"`
	CampaignID     int64     `json:"campaign_id"`
	ContentLinks   []string  `json:"content_links"`
	Notes          string    `json:"notes"`
	Views          int       `json:"views"`
	Likes          int       `json:"likes"`
	Comments       int       `json:"comments"`
	EngagementRate float64   `json:"engagement_rate"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type Payment struct {
	ID               int64      `json:"id"`
	CampaignID       int64      `json:"campaign_id"`
	Amount           float64    `json:"amount"`
	Status           string     `json:"status"`
	PaymentReference string     `json:"payment_reference"`
	CreatedAt        time.Time  `json:"created_at"`
	ReleasedAt       *time.Time `json:"released_at"`
}

type Review struct {
	ID         int64     `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	CreatorID  int64     `json:"creator_id"`
	BrandID    int64     `json:"brand_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type Notification struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	CampaignID *int64    `json:"campaign_id"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Identity is the /auth/me payload: the user plus the profile matching their
// role, which is null until one is created. The wire shape carries a single
// "profile" field whose type depends on user_type.
type Identity struct {
	User           User
	CreatorProfile *CreatorProfile
	BrandProfile   *BrandProfile
}

func (i *Identity) UnmarshalJSON(data []byte) error {
	var raw struct {
		User    User            `json:"user"`
		Profile json.RawMessage `json:"profile"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	i.User = raw.User
	i.CreatorProfile = nil
	i.BrandProfile = nil

	if len(raw.Profile) == 0 || string(raw.Profile) == "null" {
		return nil
	}

	switch raw.User.UserType {
	case "creator":
		var p CreatorProfile
		if err := json.Unmarshal(raw.Profile, &p); err != nil {
			return err
		}
		i.CreatorProfile = &p
	case "brand":
		var p BrandProfile
		if err := json.Unmarshal(raw.Profile, &p); err != nil {
			return err
		}
		i.BrandProfile = &p
	}
	return nil
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

type CreatorProfileInput struct {
	Name               string  `json:"name"`
	Bio                string  `json:"bio"`
	Niche              string  `json:"niche"`
	Location           string  `json:"location"`
	InstagramHandle    string  `json:"instagram_handle,omitempty"`
	TiktokHandle       string  `json:"tiktok_handle,omitempty"`
	YoutubeHandle      string  `json:"youtube_handle,omitempty"`
	FollowersInstagram int     `json:"followers_instagram,omitempty"`
	FollowersTiktok    int     `json:"followers_tiktok,omitempty"`
	FollowersYoutube   int     `json:"followers_youtube,omitempty"`
	EngagementRate     float64 `json:"engagement_rate,omitempty"`
}

type BrandProfileInput struct {
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
}

type CampaignInput struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Budget              float64  `json:"budget"`
	Platforms           []string `json:"platforms"`
	DurationDays        int      `json:"duration_days"`
	Niche               string   `json:"niche"`
	MinFollowers        int      `json:"min_followers,omitempty"`
	ContentRequirements string   `json:"content_requirements"`
}

type CampaignUpdateInput struct {
	Title               string   `json:"title,omitempty"`
	Description         string   `json:"description,omitempty"`
	Budget              float64  `json:"budget,omitempty"`
	Platforms           []string `json:"platforms,omitempty"`
	Niche               string   `json:"niche,omitempty"`
	MinFollowers        int      `json:"min_followers,omitempty"`
	ContentRequirements string   `json:"content_requirements,omitempty"`
	Status              string   `json:"status,omitempty"`
}

type CampaignFilters struct {
	Status    string
	Niche     string
	BudgetMin float64
	BudgetMax float64
}

type CreatorSearchFilters struct {
	Niche        string
	MinFollowers int
	Platform     string
	Location     string
}

type CampaignDetail struct {
	Campaign   *Campaign       `json:"campaign"`
	Brand      *BrandProfile   `json:"brand"`
	Creator    *CreatorProfile `json:"creator"`
	Submission *Submission     `json:"submission"`
	Applicants int64           `json:"applicants"`
}

type Applicant struct {
	Application Application    `json:"application"`
	Profile     CreatorProfile `json:"profile"`
}

type CreatorDashboard struct {
	Profile         CreatorProfile `json:"profile"`
	Campaigns       []Campaign     `json:"campaigns"`
	TotalEarnings   float64        `json:"total_earnings"`
	PendingEarnings float64        `json:"pending_earnings"`
	TotalCampaigns  int            `json:"total_campaigns"`
	Rating          float64        `json:"rating"`
}

type BrandDashboard struct {
	Profile         BrandProfile `json:"profile"`
	Campaigns       []Campaign   `json:"campaigns"`
	TotalSpent      float64      `json:"total_spent"`
	PendingAmount   float64      `json:"pending_amount"`
	TotalCampaigns  int          `json:"total_campaigns"`
	ActiveCampaigns int          `json:"active_campaigns"`
}

type EscrowResult struct {
	Payment    *Payment `json:"payment"`
	PaymentURL string   `json:"payment_url"`
}

type PaymentHistory struct {
	Payments []Payment `json:"payments"`
	Total    float64   `json:"total"`
}

type ContentMetrics struct {
	Views          int     `json:"views"`
	Likes          int     `json:"likes"`
	Comments       int     `json:"comments"`
	EngagementRate float64 `json:"engagement_rate"`
}

type CampaignReport struct {
	Campaign *Campaign      `json:"campaign"`
	Metrics  ContentMetrics `json:"metrics"`
	HasData  bool           `json:"has_data"`
}

type CreatorReport struct {
	TotalCampaigns     int            `json:"total_campaigns"`
	CompletedCampaigns int            `json:"completed_campaigns"`
	ActiveCampaigns    int            `json:"active_campaigns"`
	TotalEarnings      float64        `json:"total_earnings"`
	Metrics            ContentMetrics `json:"metrics"`
}

type BrandReport struct {
	TotalCampaigns  int            `json:"total_campaigns"`
	ByStatus        map[string]int `json:"by_status"`
	TotalBudget     float64        `json:"total_budget"`
	TotalSpent      float64        `json:"total_spent"`
	TotalReach      int            `json:"total_reach"`
	Metrics         ContentMetrics `json:"metrics"`
	ActiveCampaigns int            `json:"active_campaigns"`
}

type ReviewInput struct {
	CampaignID int64  `json:"campaign_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
}
