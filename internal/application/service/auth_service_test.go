package service

import (
	"context"
	"testing"
	"time"

	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/infrastructure/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
	"github.com/kabore/hotelier-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) (*AuthService, *UserService) {
	userRepo := repository.NewUserRepository(db)
	jwt := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	audit := NewAuditService(repository.NewAuditRepository(db), zap.NewNop())
	return NewAuthService(userRepo, jwt, audit), NewUserService(userRepo)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	db := setupTestDB(t)
	auth, users := newAuthService(db)

	_, err := users.Create(context.Background(), &CreateUserInput{
		Username: "reception",
		Password: "hunter2hunter2",
		FullName: "Front Desk",
		Role:     enum.UserRoleReception,
	})
	require.NoError(t, err)

	tokens, err := auth.Login(context.Background(), "reception", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "reception", tokens.User.Username)

	refreshed, err := auth.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	db := setupTestDB(t)
	auth, users := newAuthService(db)

	_, err := users.Create(context.Background(), &CreateUserInput{
		Username: "reception",
		Password: "hunter2hunter2",
		Role:     enum.UserRoleReception,
	})
	require.NoError(t, err)

	_, badUser := auth.Login(context.Background(), "nobody", "hunter2hunter2")
	_, badPass := auth.Login(context.Background(), "reception", "wrong-password")
	assert.ErrorIs(t, badUser, apperror.ErrInvalidCredentials)
	assert.ErrorIs(t, badPass, apperror.ErrInvalidCredentials)
}

func TestLoginRefusedForDeactivatedAccount(t *testing.T) {
	db := setupTestDB(t)
	auth, users := newAuthService(db)

	user, err := users.Create(context.Background(), &CreateUserInput{
		Username: "former",
		Password: "hunter2hunter2",
		Role:     enum.UserRoleManager,
	})
	require.NoError(t, err)

	inactive := false
	_, err = users.Update(context.Background(), user.ID, &UpdateUserInput{Active: &inactive})
	require.NoError(t, err)

	_, err = auth.Login(context.Background(), "former", "hunter2hunter2")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	db := setupTestDB(t)
	auth, users := newAuthService(db)

	user, err := users.Create(context.Background(), &CreateUserInput{
		Username: "manager",
		Password: "oldpassword",
		Role:     enum.UserRoleManager,
	})
	require.NoError(t, err)

	err = auth.ChangePassword(context.Background(), user.ID, "wrong", "newpassword123")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	require.NoError(t, auth.ChangePassword(context.Background(), user.ID, "oldpassword", "newpassword123"))

	_, err = auth.Login(context.Background(), "manager", "newpassword123")
	require.NoError(t, err)
}

func TestUserCreateRejectsDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	_, users := newAuthService(db)

	_, err := users.Create(context.Background(), &CreateUserInput{
		Username: "admin",
		Password: "password123",
		Role:     enum.UserRoleAdmin,
	})
	require.NoError(t, err)

	_, err = users.Create(context.Background(), &CreateUserInput{
		Username: "admin",
		Password: "password456",
		Role:     enum.UserRoleAdmin,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}
