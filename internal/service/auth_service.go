package service

import (
	"errors"

	"pesona/config"
	"pesona/internal/auth"
	"pesona/internal/domain"
	"pesona/internal/models"
	"pesona/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCreds = errors.New("invalid email or password")

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.AdminUserRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.AdminUserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Login verifies credentials and returns the user plus a signed session
// token. Unknown email, wrong password and a deactivated account are all
// reported identically.
func (s *AuthService) Login(email, password string) (*models.AdminUser, string, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if !u.IsActive {
		return nil, "", ErrInvalidCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Principal resolves a token's user, re-checking the active flag so a
// deactivated account loses access before its token expires.
func (s *AuthService) Principal(userID uint) (*models.AdminUser, error) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, domain.ErrNotFound
	}
	return u, nil
}
