package domain

import "time"

type CampaignStatus string

const (
	CampaignOpen       CampaignStatus = "open"
	CampaignAssigned   CampaignStatus = "assigned"
	CampaignInProgress CampaignStatus = "in_progress"
	CampaignSubmitted  CampaignStatus = "submitted"
	CampaignCompleted  CampaignStatus = "completed"
	CampaignCancelled  CampaignStatus = "cancelled"
)

// Active statuses count toward a brand's "active campaigns" dashboard number.
func (s CampaignStatus) Active() bool {
	return s == CampaignOpen || s == CampaignAssigned || s == CampaignInProgress
}

type Campaign struct {
	ID                  int64          `json:"id" gorm:"primaryKey"`
	BrandID             int64          `json:"brand_id" gorm:"index"`
	CreatorID           *int64         `json:"creator_id,omitempty" gorm:"index"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Budget              float64        `json:"budget"`
	Platforms           []string       `json:"platforms" gorm:"serializer:json"`
	DurationDays        int            `json:"duration_days"`
	Status              CampaignStatus `json:"status"`
	Niche               string         `json:"niche"`
	MinFollowers        int            `json:"min_followers"`
	ContentRequirements string         `json:"content_requirements"`
	Deadline            time.Time      `json:"deadline"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// Application records a creator applying to an open campaign. One row per
// creator per campaign.
type Application struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	CampaignID int64     `json:"campaign_id" gorm:"uniqueIndex:idx_app_campaign_creator"`
	CreatorID  int64     `json:"creator_id" gorm:"uniqueIndex:idx_app_campaign_creator"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Submission holds the deliverables a creator attached to an assigned
// campaign. The latest row is the current one.
type Submission struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	CampaignID     int64     `json:"campaign_id" gorm:"index"`
	ContentLinks   []string  `json:"content_links" gorm:"serializer:json"`
	Notes          string    `json:"notes"`
	Views          int       `json:"views"`
	Likes          int       `json:"likes"`
	Comments       int       `json:"comments"`
	EngagementRate float64   `json:"engagement_rate"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
