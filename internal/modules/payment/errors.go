package payment

import "errors"

var (
	ErrNotFound             = errors.New("payment not found")
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrBrandProfileRequired = errors.New("brand profile required")
	ErrNotOwner             = errors.New("not the campaign owner")
	ErrAlreadyEscrowed      = errors.New("campaign already has an escrowed payment")
	ErrNotEscrowed          = errors.New("payment is not in escrow")
)
