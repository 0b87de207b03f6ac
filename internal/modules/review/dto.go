package review

type CreateRequest struct {
	CampaignID int64  `json:"campaign_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}
