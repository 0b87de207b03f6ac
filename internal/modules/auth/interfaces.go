package auth

import (
	"context"

	"creatortrust/internal/domain"
)

// UserRepositoryInterface — only the methods auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProfileReader resolves the role-matching profile for /auth/me.
type ProfileReader interface {
	GetCreatorProfileByUserID(ctx context.Context, userID int64) (*domain.CreatorProfile, error)
	GetBrandProfileByUserID(ctx context.Context, userID int64) (*domain.BrandProfile, error)
}
