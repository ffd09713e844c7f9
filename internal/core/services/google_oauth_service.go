package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/arionfin/arion-backend/internal/core/domain"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleOAuthService exchanges Google authorization codes for local user
// accounts. The ID token returned by the exchange is validated against the
// configured client ID before any claims are trusted.
type googleOAuthService struct {
	BaseService
	cfg          *config.Config
	userService  portssvc.UserSvcFacade
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg:         cfg,
		userService: userService,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Ensure googleOAuthService implements the portssvc.GoogleOAuthSvcFacade interface
var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// ExchangeCode exchanges the authorization code, validates the returned ID
// token and resolves the local user account, creating it on first sign-in.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (*domain.User, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured")
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("token response did not include an ID token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("google ID token is missing the email claim")
	}
	name, _ := payload.Claims["name"].(string)

	return s.userService.FindOrCreateExternalUser(ctx, "google", payload.Subject, email, name)
}
