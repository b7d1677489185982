package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles staff account management
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	Username string
	Password string
	FullName string
	Role     enum.UserRole
}

// Create registers a staff account
func (s *UserService) Create(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	var fieldErrs []apperror.FieldError
	if input.Username == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "username", Message: "username is required"})
	}
	if len(input.Password) < 8 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if !input.Role.IsValid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "role", Message: "unknown role"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewFieldValidationError(fieldErrs)
	}

	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: string(hashed),
		FullName:     input.FullName,
		Role:         input.Role,
		Active:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get retrieves a staff account by ID
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// UpdateUserInput is a patch: nil fields are left untouched
type UpdateUserInput struct {
	FullName *string
	Role     *enum.UserRole
	Active   *bool
}

// Update patches a staff account
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, apperror.NewValidationError("unknown role")
		}
		user.Role = *input.Role
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a staff account
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	return s.userRepo.Delete(ctx, id)
}

// List returns all staff accounts
func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}
