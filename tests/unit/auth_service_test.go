package unit_test

import (
	"context"
	"testing"
	"time"

	"trip-album/internal/config"
	"trip-album/internal/domain"
	"trip-album/internal/repository"
	"trip-album/internal/service"
	"trip-album/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() (service.AuthService, *mocks.UserRepository, *mocks.SessionRepository) {
	userRepo := new(mocks.UserRepository)
	sessionRepo := new(mocks.SessionRepository)
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
	return service.NewAuthService(userRepo, sessionRepo, cfg), userRepo, sessionRepo
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: uuid.New(), UserID: "alice", Name: "Alice", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		svc, userRepo, sessionRepo := newAuthService()

		userRepo.On("GetByHandle", ctx, "alice").Return(user, nil).Once()
		sessionRepo.On("Create", ctx, mock.MatchedBy(func(s *repository.Session) bool {
			return s.UserID == user.ID && s.TokenHash != ""
		})).Return(nil).Once()

		got, tokens, err := svc.Login(ctx, domain.LoginInput{UserID: "alice", Password: "secret"})

		assert.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		svc, userRepo, sessionRepo := newAuthService()

		userRepo.On("GetByHandle", ctx, "alice").Return(user, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{UserID: "alice", Password: "nope"})

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Handle", func(t *testing.T) {
		svc, userRepo, _ := newAuthService()

		userRepo.On("GetByHandle", ctx, "mallory").Return(nil, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{UserID: "mallory", Password: "secret"})

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	session := &repository.Session{ID: uuid.New(), UserID: userID}

	t.Run("Revokes Every Session Of The User", func(t *testing.T) {
		svc, _, sessionRepo := newAuthService()

		sessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(session, nil).Once()
		sessionRepo.On("RevokeAllForUser", ctx, userID).Return(nil).Once()

		err := svc.Logout(ctx, "some-refresh-token")

		assert.NoError(t, err)
		sessionRepo.AssertExpectations(t)
		sessionRepo.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Token Is A No-Op", func(t *testing.T) {
		svc, _, sessionRepo := newAuthService()

		sessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(nil, nil).Once()

		err := svc.Logout(ctx, "expired-token")

		assert.NoError(t, err)
		sessionRepo.AssertNotCalled(t, "RevokeAllForUser", mock.Anything, mock.Anything)
	})
}

func TestAuthService_RefreshTokenRotates(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := &domain.User{ID: userID, UserID: "alice", Name: "Alice"}
	session := &repository.Session{ID: uuid.New(), UserID: userID}

	svc, userRepo, sessionRepo := newAuthService()

	sessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(session, nil).Once()
	userRepo.On("GetByID", ctx, userID).Return(user, nil).Once()
	sessionRepo.On("Revoke", ctx, session.ID).Return(nil).Once()
	sessionRepo.On("Create", ctx, mock.AnythingOfType("*repository.Session")).Return(nil).Once()

	tokens, err := svc.RefreshToken(ctx, "old-refresh-token")

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	sessionRepo.AssertExpectations(t)
}
