package dto

import (
	"time"

	"github.com/arionfin/arion-backend/internal/core/domain"
)

// CreateUserRequest defines the payload for registering a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest defines the data allowed for updating a user. Pointers
// differentiate omitted fields from zero values.
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

// LoginRequest defines the payload for password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// GoogleLoginRequest defines the payload for the OAuth code exchange.
type GoogleLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	AuthProvider string    `json:"authProvider,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Username:     u.Username,
		Email:        u.Email,
		AuthProvider: u.AuthProvider,
		CreatedAt:    u.CreatedAt,
	}
}
