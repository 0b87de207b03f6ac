package creator

import "creatortrust/internal/domain"

type UpsertProfileRequest struct {
	Name            string `json:"name" binding:"required"`
	Bio             string `json:"bio" binding:"required"`
	Niche           string `json:"niche" binding:"required"`
	Location        string `json:"location" binding:"required"`
	InstagramHandle string `json:"instagram_handle"`
	YoutubeHandle   string `json:"youtube_handle"`
	TiktokHandle    string `json:"tiktok_handle"`

	FollowersInstagram int     `json:"followers_instagram"`
	FollowersYoutube   int     `json:"followers_youtube"`
	FollowersTiktok    int     `json:"followers_tiktok"`
	EngagementRate     float64 `json:"engagement_rate"`
}

// Dashboard is the creator home screen aggregate.
type Dashboard struct {
	Profile         *domain.CreatorProfile `json:"profile"`
	Campaigns       []domain.Campaign      `json:"campaigns"`
	TotalEarnings   float64                `json:"total_earnings"`
	PendingEarnings float64                `json:"pending_earnings"`
	TotalCampaigns  int                    `json:"total_campaigns"`
	Rating          float64                `json:"rating"`
}
