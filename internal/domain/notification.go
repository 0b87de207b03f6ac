package domain

import "time"

type NotificationType string

const (
	NotifCampaignApplied   NotificationType = "campaign_applied"
	NotifCampaignAssigned  NotificationType = "campaign_assigned"
	NotifCampaignSubmitted NotificationType = "campaign_submitted"
	NotifCampaignApproved  NotificationType = "campaign_approved"
)

type Notification struct {
	ID         int64            `json:"id" gorm:"primaryKey"`
	UserID     int64            `json:"user_id" gorm:"index"`
	Type       NotificationType `json:"type"`
	Message    string           `json:"message"`
	CampaignID *int64           `json:"campaign_id,omitempty"`
	IsRead     bool             `json:"is_read"`
	CreatedAt  time.Time        `json:"created_at"`
}
