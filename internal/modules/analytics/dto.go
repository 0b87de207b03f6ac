package analytics

import "creatortrust/internal/domain"

// ContentMetrics aggregates performance numbers from submissions. All fields
// are zero when nothing has been submitted yet.
type ContentMetrics struct {
	Views          int     `json:"views"`
	Likes          int     `json:"likes"`
	Comments       int     `json:"comments"`
	EngagementRate float64 `json:"engagement_rate"`
}

type CampaignReport struct {
	Campaign *domain.Campaign `json:"campaign"`
	Metrics  ContentMetrics   `json:"metrics"`
	HasData  bool             `json:"has_data"`
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
