package repositories

import (
	"context"

	"github.com/arionfin/arion-backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by their identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepository combines all user repository interfaces.
type UserRepository interface {
	UserReader
	UserWriter
}
