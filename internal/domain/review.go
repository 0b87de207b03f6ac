package domain

import "time"

// Review is posted by a brand about the creator after campaign completion.
type Review struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	CampaignID int64     `json:"campaign_id" gorm:"index"`
	CreatorID  int64     `json:"creator_id" gorm:"index"`
	BrandID    int64     `json:"brand_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
