package repository

import (
	"context"

	"creatortrust/internal/domain"
)

// ProfileReader bundles the two profile repositories behind the single
// role-resolving interface the auth module consumes.
type ProfileReader struct {
	creators *CreatorProfileRepository
	brands   *BrandProfileRepository
}

func NewProfileReader(creators *CreatorProfileRepository, brands *BrandProfileRepository) *ProfileReader {
	return &ProfileReader{creators: creators, brands: brands}
}

func (r *ProfileReader) GetCreatorProfileByUserID(ctx context.Context, userID int64) (*domain.CreatorProfile, error) {
	return r.creators.GetByUserID(ctx, userID)
}

func (r *ProfileReader) GetBrandProfileByUserID(ctx context.Context, userID int64) (*domain.BrandProfile, error) {
	return r.brands.GetByUserID(ctx, userID)
}
