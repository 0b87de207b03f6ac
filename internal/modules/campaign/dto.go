package campaign

import "creatortrust/internal/domain"

type CreateRequest struct {
	Title               string   `json:"title" binding:"required"`
	Description         string   `json:"description" binding:"required"`
	Budget              float64  `json:"budget" binding:"required,gt=0"`
	Platforms           []string `json:"platforms" binding:"required,min=1"`
	DurationDays        int      `json:"duration_days" binding:"required,gt=0"`
	Niche               string   `json:"niche" binding:"required"`
	MinFollowers        int      `json:"min_followers"`
	ContentRequirements string   `json:"content_requirements" binding:"required"`
}

type UpdateRequest struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Budget              float64  `json:"budget"`
	Platforms           []string `json:"platforms"`
	Niche               string   `json:"niche"`
	MinFollowers        int      `json:"min_followers"`
	ContentRequirements string   `json:"content_requirements"`
	Status              string   `json:"status"`
}

type ApplyRequest struct {
	Message string `json:"message"`
}

type AssignRequest struct {
	CreatorID int64 `json:"creator_id" binding:"required"`
}

type SubmitRequest struct {
	ContentLinks []string `json:"content_links" binding:"required,min=1"`
	Notes        string   `json:"notes"`
}

// Detail is the campaign page aggregate: the campaign plus both parties and
// the current submission, when present.
type Detail struct {
	Campaign   *domain.Campaign       `json:"campaign"`
	Brand      *domain.BrandProfile   `json:"brand"`
	Creator    *domain.CreatorProfile `json:"creator"`
	Submission *domain.Submission     `json:"submission"`
	Applicants int64                  `json:"applicants"`
}

// Applicant pairs an application row with the creator profile behind it.
type Applicant struct {
	Application domain.Application    `json:"application"`
	Profile     domain.CreatorProfile `json:"profile"`
}

type ApproveResult struct {
	Campaign *domain.Campaign `json:"campaign"`
	Payment  *domain.Payment  `json:"payment"`
}
