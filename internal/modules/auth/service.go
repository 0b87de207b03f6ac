package auth

import (
	"context"
	"errors"
	"strings"

	"creatortrust/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users    UserRepositoryInterface
	profiles ProfileReader
	jwt      jwtService
}

type AuthResult struct {
	User        *domain.User
	AccessToken string
}

// Identity is the /auth/me payload: the user plus the profile matching its
// role, or no profile when onboarding is incomplete.
type Identity struct {
	User           *domain.User
	CreatorProfile *domain.CreatorProfile
	BrandProfile   *domain.BrandProfile
}

func NewService(users UserRepositoryInterface, profiles ProfileReader, jwt jwtService) *Service {
	return &Service{
		users:    users,
		profiles: profiles,
		jwt:      jwt,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	role := domain.Role(req.UserType)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		UserType:     role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.UserType))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResult{User: user, AccessToken: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.UserType))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResult{User: user, AccessToken: token}, nil
}

func (s *Service) GetIdentity(ctx context.Context, userID int64) (*Identity, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""

	id := &Identity{User: user}

	switch user.UserType {
	case domain.RoleCreator:
		profile, err := s.profiles.GetCreatorProfileByUserID(ctx, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		id.CreatorProfile = profile
	case domain.RoleBrand:
		profile, err := s.profiles.GetBrandProfileByUserID(ctx, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		id.BrandProfile = profile
	}

	return id, nil
}
