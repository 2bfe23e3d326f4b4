package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/service"
	"legalease/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "legalease-test",
	}
}

func hashedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: string(hash),
		FullName:     "Test User",
		Role:         domain.RoleMember,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	user := hashedUser(t, "correct horse")
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "user@example.com").Return(user, nil)

	svc := service.NewAuthService(repo, testJWTConfig())
	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "user@example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleMember, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	user := hashedUser(t, "correct horse")
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(user, nil)

	svc := service.NewAuthService(repo, testJWTConfig())
	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "user@example.com",
		Password: "battery staple",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	svc := service.NewAuthService(repo, testJWTConfig())
	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	user := hashedUser(t, "correct horse")
	user.IsActive = false
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(user, nil)

	svc := service.NewAuthService(repo, testJWTConfig())
	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "user@example.com",
		Password: "correct horse",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestRefreshToken_Success(t *testing.T) {
	user := hashedUser(t, "correct horse")
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(user, nil)
	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	svc := service.NewAuthService(repo, testJWTConfig())
	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "user@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	user := hashedUser(t, "correct horse")
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(user, nil)

	svc := service.NewAuthService(repo, testJWTConfig())
	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "user@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), testJWTConfig())

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
