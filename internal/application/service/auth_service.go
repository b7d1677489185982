package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
	"github.com/kabore/hotelier-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles login and token refresh
type AuthService struct {
	userRepo repository.UserRepository
	jwt      *utils.JWTManager
	audit    *AuditService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwt *utils.JWTManager, audit *AuditService) *AuthService {
	return &AuthService{userRepo: userRepo, jwt: jwt, audit: audit}
}

// AuthTokens carries a token pair plus the authenticated user
type AuthTokens struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// Login verifies credentials and issues a token pair. Invalid username and
// invalid password return the same error so the endpoint does not leak which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthTokens, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	access, err := s.jwt.GenerateAccessToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, &user.ID, "auth.login", user.Username)

	return &AuthTokens{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	userID, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, apperror.ErrUnauthorized
	}

	access, err := s.jwt.GenerateAccessToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthTokens{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

// ChangePassword verifies the current password before setting the new one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if len(next) < 8 {
		return apperror.NewValidationError("password must be at least 8 characters")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return apperror.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashed)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.audit.Log(ctx, &user.ID, "auth.change_password", user.Username)
	return nil
}
