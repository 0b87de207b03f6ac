package review

import "errors"

var (
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrBrandProfileRequired = errors.New("brand profile required")
	ErrNotOwner             = errors.New("not the campaign owner")
	ErrNoCreator            = errors.New("campaign has no assigned creator")
	ErrNotCompleted         = errors.New("campaign is not completed")
)
