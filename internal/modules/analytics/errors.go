package analytics

import "errors"

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrProfileRequired  = errors.New("profile required")
)
