package webapp

import "creatortrust/internal/domain"

// CampaignViewMode picks which controls the campaign detail page renders.
// It replaces ad-hoc state strings: the mapping from role x ownership x
// status is decided in one place.
type CampaignViewMode int

const (
	// ViewReadOnly shows the campaign with no actions.
	ViewReadOnly CampaignViewMode = iota
	// ViewApply shows the apply form to a creator on an open campaign.
	ViewApply
	// ViewWorkspace shows the submit form to the assigned creator.
	ViewWorkspace
	// ViewManageOpen shows applicants and the assign control to the owner.
	ViewManageOpen
	// ViewAwaitContent is the owner's screen while content is being made;
	// escrow can still be funded here.
	ViewAwaitContent
	// ViewReviewContent shows the owner the submission plus approve.
	ViewReviewContent
	// ViewCompletedOwner shows the owner the review form.
	ViewCompletedOwner
)

func campaignViewMode(role domain.Role, isOwner, isAssigned bool, status domain.CampaignStatus) CampaignViewMode {
	switch role {
	case domain.RoleCreator:
		if isAssigned {
			switch status {
			case domain.CampaignAssigned, domain.CampaignInProgress, domain.CampaignSubmitted:
				return ViewWorkspace
			}
			return ViewReadOnly
		}
		if status == domain.CampaignOpen {
			return ViewApply
		}
		return ViewReadOnly
	case domain.RoleBrand:
		if !isOwner {
			return ViewReadOnly
		}
		switch status {
		case domain.CampaignOpen:
			return ViewManageOpen
		case domain.CampaignAssigned, domain.CampaignInProgress:
			return ViewAwaitContent
		case domain.CampaignSubmitted:
			return ViewReviewContent
		case domain.CampaignCompleted:
			return ViewCompletedOwner
		case domain.CampaignCancelled:
			return ViewReadOnly
		}
		return ViewReadOnly
	}
	return ViewReadOnly
}
