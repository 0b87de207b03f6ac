package domain

import "time"

type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPro     SubscriptionTier = "pro"
	TierPremium SubscriptionTier = "premium"
)

// CreatorProfile is the creator-side extension of a User, created once the
// creator completes onboarding. At most one per user.
type CreatorProfile struct {
	ID                 int64            `json:"id" gorm:"primaryKey"`
	UserID             int64            `json:"user_id" gorm:"uniqueIndex"`
	Name               string           `json:"name"`
	Bio                string           `json:"bio"`
	Niche              string           `json:"niche"`
	Location           string           `json:"location"`
	InstagramHandle    string           `json:"instagram_handle,omitempty"`
	YoutubeHandle      string           `json:"youtube_handle,omitempty"`
	TiktokHandle       string           `json:"tiktok_handle,omitempty"`
	FollowersInstagram int              `json:"followers_instagram"`
	FollowersYoutube   int              `json:"followers_youtube"`
	FollowersTiktok    int              `json:"followers_tiktok"`
	EngagementRate     float64          `json:"engagement_rate"`
	SubscriptionTier   SubscriptionTier `json:"subscription_tier"`
	Rating             float64          `json:"rating"`
	TotalCampaigns     int              `json:"total_campaigns"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// TotalFollowers sums the per-platform counts; search filters on it.
func (p *CreatorProfile) TotalFollowers() int {
	return p.FollowersInstagram + p.FollowersYoutube + p.FollowersTiktok
}

type BrandProfile struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"uniqueIndex"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry"`
	Website     string    `json:"website,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
