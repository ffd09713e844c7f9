package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arionfin/arion-backend/internal/apperrors"
	"github.com/arionfin/arion-backend/internal/core/domain"
	portsrepo "github.com/arionfin/arion-backend/internal/core/ports/repositories"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/dto"
	"github.com/arionfin/arion-backend/internal/utils"
)

// userService maintains user accounts, both local password accounts and
// accounts linked to an external identity provider.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new local user with a bcrypt-hashed password.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// GetUserByID retrieves a user by identifier.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByUsername retrieves a user by username.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

// FindOrCreateExternalUser returns the user linked to an external identity
// provider, creating the account on first sign-in. Accounts are matched by
// email so an existing local account is reused rather than duplicated.
func (s *userService) FindOrCreateExternalUser(ctx context.Context, provider, providerID, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	username := strings.TrimSpace(name)
	if username == "" {
		username = strings.Split(email, "@")[0]
	}

	now := time.Now().UTC()
	newUser := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		AuthProvider: provider,
		ProviderID:   providerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	newUser.CreatedBy = newUser.UserID
	newUser.LastUpdatedBy = newUser.UserID

	err = s.userRepo.SaveUser(ctx, newUser)
	if errors.Is(err, apperrors.ErrDuplicate) {
		// The display name collided with an existing username. Retry once
		// with a disambiguating suffix.
		suffix, randErr := utils.GenerateSecureRandomString(3)
		if randErr != nil {
			return nil, fmt.Errorf("failed to generate username suffix: %w", randErr)
		}
		newUser.Username = username + "-" + suffix
		err = s.userRepo.SaveUser(ctx, newUser)
	}
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "External user registered",
		slog.String("user_id", newUser.UserID),
		slog.String("provider", provider),
	)
	return &newUser, nil
}

// UpdateUser edits a user's profile.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}

	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user account.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	return s.userRepo.DeleteUser(ctx, userID)
}
