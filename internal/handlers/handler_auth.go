package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/arionfin/arion-backend/internal/apperrors"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/dto"
	"github.com/arionfin/arion-backend/internal/middleware"
	"github.com/arionfin/arion-backend/internal/platform/config"
	"github.com/arionfin/arion-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles registration and login.
type authHandler struct {
	cfg          *config.Config
	userService  portssvc.UserSvcFacade
	oauthService portssvc.GoogleOAuthSvcFacade
}

func newAuthHandler(cfg *config.Config, us portssvc.UserSvcFacade, os portssvc.GoogleOAuthSvcFacade) *authHandler {
	return &authHandler{cfg: cfg, userService: us, oauthService: os}
}

// registerAuthRoutes registers the public authentication routes. Login
// endpoints are rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(cfg, services.User, services.GoogleOAuth)

	rate, err := limiter.NewRateFromFormatted("5-M")
	if err != nil {
		panic("invalid login rate limit format: " + err.Error())
	}
	loginLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
		auth.POST("/google", middleware.RateLimit(loginLimiter), h.googleLogin)
	}
}

// register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Username or email already taken"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already taken"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same response as a bad password so usernames cannot be probed.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		logger.Error("Failed to load user for login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Invalid password attempt", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	h.respondWithToken(c, logger, user.UserID)
}

// googleLogin godoc
// @Summary Log in with a Google authorization code
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.GoogleLoginRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Code exchange failed"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /auth/google [post]
func (h *authHandler) googleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.oauthService.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	h.respondWithToken(c, logger, user.UserID)
}

func (h *authHandler) respondWithToken(c *gin.Context, logger *slog.Logger, userID string) {
	token, err := utils.GenerateJWT(userID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load user after login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}
