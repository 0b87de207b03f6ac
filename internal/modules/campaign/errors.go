package campaign

import "errors"

var (
	ErrNotFound             = errors.New("campaign not found")
	ErrBrandProfileRequired = errors.New("brand profile not found")
	ErrCreatorProfileRequired = errors.New("creator profile not found")
	ErrNotOwner             = errors.New("campaign belongs to another brand")
	ErrNotOpen              = errors.New("campaign is not open for applications")
	ErrAlreadyApplied       = errors.New("already applied to this campaign")
	ErrNotAssignedCreator   = errors.New("not assigned to this campaign")
	ErrNotSubmitted         = errors.New("campaign has no submitted content to approve")
)
