package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arionfin/arion-backend/internal/apperrors"
	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/arionfin/arion-backend/internal/core/services"
	"github.com/arionfin/arion-backend/internal/dto"
	"github.com/arionfin/arion-backend/internal/utils"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepository)
	svc := services.NewUserService(mockUserRepo)

	var saved domain.User
	mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := svc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.UserID)

	// The password is stored hashed, never verbatim.
	assert.NotEqual(t, "s3cret-password", saved.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("s3cret-password", saved.PasswordHash))
	mockUserRepo.AssertExpectations(t)
}

func TestFindOrCreateExternalUser(t *testing.T) {
	ctx := context.Background()

	t.Run("existing account is reused by email", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := services.NewUserService(mockUserRepo)

		existing := &domain.User{UserID: "user-1", Username: "alice", Email: "alice@example.com"}
		mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(existing, nil).Once()

		user, err := svc.FindOrCreateExternalUser(ctx, "google", "sub-123", "alice@example.com", "Alice")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.UserID)
		mockUserRepo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
	})

	t.Run("first sign-in creates the account", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := services.NewUserService(mockUserRepo)

		mockUserRepo.On("FindUserByEmail", ctx, "bob@example.com").Return(nil, apperrors.ErrNotFound).Once()
		mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.AuthProvider == "google" && u.ProviderID == "sub-456" && u.Username == "Bob"
		})).Return(nil).Once()

		user, err := svc.FindOrCreateExternalUser(ctx, "google", "sub-456", "bob@example.com", "Bob")
		require.NoError(t, err)
		assert.Equal(t, "Bob", user.Username)
		assert.Empty(t, user.PasswordHash)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("empty display name falls back to the email local part", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := services.NewUserService(mockUserRepo)

		mockUserRepo.On("FindUserByEmail", ctx, "carol@example.com").Return(nil, apperrors.ErrNotFound).Once()
		mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.Username == "carol"
		})).Return(nil).Once()

		user, err := svc.FindOrCreateExternalUser(ctx, "google", "sub-789", "carol@example.com", "  ")
		require.NoError(t, err)
		assert.Equal(t, "carol", user.Username)
	})

	t.Run("username collision retries with a suffix", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := services.NewUserService(mockUserRepo)

		mockUserRepo.On("FindUserByEmail", ctx, "dave@example.com").Return(nil, apperrors.ErrNotFound).Once()
		mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.Username == "Dave"
		})).Return(apperrors.ErrDuplicate).Once()
		mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
			return len(u.Username) > len("Dave-") && u.Username[:5] == "Dave-"
		})).Return(nil).Once()

		user, err := svc.FindOrCreateExternalUser(ctx, "google", "sub-000", "dave@example.com", "Dave")
		require.NoError(t, err)
		assert.Contains(t, user.Username, "Dave-")
		mockUserRepo.AssertExpectations(t)
	})
}

func TestUpdateUser_RehashesPassword(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepository)
	svc := services.NewUserService(mockUserRepo)

	stored := &domain.User{UserID: "user-1", Username: "alice", Email: "alice@example.com", PasswordHash: "old-hash"}
	mockUserRepo.On("FindUserByID", ctx, "user-1").Return(stored, nil).Once()

	var updated domain.User
	mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.User) }).
		Return(nil).Once()

	newPassword := "new-s3cret-password"
	_, err := svc.UpdateUser(ctx, "user-1", dto.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)
	assert.NotEqual(t, "old-hash", updated.PasswordHash)
	assert.True(t, utils.CheckPasswordHash(newPassword, updated.PasswordHash))
}
