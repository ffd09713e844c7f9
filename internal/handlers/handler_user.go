package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/arionfin/arion-backend/internal/apperrors"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/dto"
	"github.com/arionfin/arion-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests for the logged-in user's profile.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers routes related to the user profile.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getProfile)
		users.PUT("/me", h.updateProfile)
		users.DELETE("/me", h.deleteProfile)
	}
}

// getProfile godoc
// @Summary Get the logged-in user's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to get user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update the logged-in user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Username or email already taken"
// @Security BearerAuth
// @Router /users/me [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already taken"})
		default:
			logger.Error("Failed to update user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		}
		return
	}

	logger.Info("User updated", slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteProfile godoc
// @Summary Delete the logged-in user's account
// @Description Removes the account together with its transactions and budgets.
// @Tags users
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/me [delete]
func (h *userHandler) deleteProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to delete user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	logger.Info("User deleted", slog.String("user_id", userID))
	c.Status(http.StatusNoContent)
}
