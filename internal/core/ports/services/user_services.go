package services

import (
	"context"

	"github.com/arionfin/arion-backend/internal/core/domain"
	"github.com/arionfin/arion-backend/internal/dto"
)

// UserSvcFacade defines the user account operations.
type UserSvcFacade interface {
	// CreateUser registers a new local user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindOrCreateExternalUser returns the user linked to an external
	// identity provider, creating the account on first sign-in.
	FindOrCreateExternalUser(ctx context.Context, provider, providerID, email, name string) (*domain.User, error)

	// UpdateUser edits a user's profile.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser removes a user account.
	DeleteUser(ctx context.Context, userID string) error
}

// GoogleOAuthSvcFacade exchanges a Google authorization code for a local user.
type GoogleOAuthSvcFacade interface {
	// ExchangeCode exchanges the authorization code, validates the returned
	// ID token and resolves the local user account.
	ExchangeCode(ctx context.Context, code string) (*domain.User, error)
}
