package brand

import "creatortrust/internal/domain"

type UpsertProfileRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Industry    string `json:"industry" binding:"required"`
	Website     string `json:"website"`
	Description string `json:"description" binding:"required"`
}

// Dashboard is the brand home screen aggregate.
type Dashboard struct {
	Profile         *domain.BrandProfile `json:"profile"`
	Campaigns       []domain.Campaign    `json:"campaigns"`
	TotalSpent      float64              `json:"total_spent"`
	PendingAmount   float64              `json:"pending_amount"`
	TotalCampaigns  int                  `json:"total_campaigns"`
	ActiveCampaigns int                  `json:"active_campaigns"`
}
