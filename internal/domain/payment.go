package domain

import "time"

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentEscrowed PaymentStatus = "escrowed"
	PaymentReleased PaymentStatus = "released"
	PaymentRefunded PaymentStatus = "refunded"
)

// Payment is a ledger entry tied to a campaign. Released is terminal: a
// released payment never goes back to escrowed.
type Payment struct {
	ID               int64         `json:"id" gorm:"primaryKey"`
	CampaignID       int64         `json:"campaign_id" gorm:"index"`
	Amount           float64       `json:"amount"`
	Status           PaymentStatus `json:"status"`
	PaymentReference string        `json:"payment_reference"`
	CreatedAt        time.Time     `json:"created_at"`
	ReleasedAt       *time.Time    `json:"released_at,omitempty"`
}
