package payment

import "creatortrust/internal/domain"

type EscrowRequest struct {
	CampaignID int64 `json:"campaign_id" binding:"required"`

	// Amount defaults to the campaign budget when omitted.
	Amount float64 `json:"amount"`
}

// EscrowResult carries the ledger entry plus the checkout link the brand is
// redirected to.
type EscrowResult struct {
	Payment    *domain.Payment `json:"payment"`
	PaymentURL string          `json:"payment_url"`
}

type History struct {
	Payments []domain.Payment `json:"payments"`
	Total    float64          `json:"total"`
}
