package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	portssvc "github.com/dukapoint/pos_backend/internal/core/ports/services"
	"github.com/dukapoint/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// googleOAuthHandler handles the Google sign-in flow for staff accounts.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	authHandler        *authHandler
}

func newGoogleOAuthHandler(services *portssvc.ServiceContainer, authHandler *authHandler) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: services.GoogleOAuth,
		userService:        services.User,
		tokenService:       services.Token,
		authHandler:        authHandler,
	}
}

// registerGoogleOAuthRoutes sets up the public Google OAuth routes.
func registerGoogleOAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer, authHandler *authHandler) {
	h := newGoogleOAuthHandler(services, authHandler)
	google := r.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.loginURL)
		google.POST("/exchange-code", h.exchangeCode)
	}
}

// oauthStateCookie is the CSRF guard for the redirect flow.
const oauthStateCookie = "oauth_state"

// exchangeCodeRequest carries the authorization code returned by Google.
type exchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// loginURL godoc
// @Summary Get the Google login URL
// @Description Returns the URL to redirect the user to for Google sign-in, with a CSRF state cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Login URL"
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) loginURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start Google sign-in"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"url": h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state)})
}

// exchangeCode godoc
// @Summary Exchange a Google authorization code for application tokens
// @Description Exchanges the code with Google, validates the ID token, provisions the user if needed, and issues application tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param code body exchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid or expired authorization code"
// @Failure 401 {object} map[string]string "ID token validation failed"
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req exchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Warn("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired authorization code"})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token missing from Google token response")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ID token from Google"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		logger.Error("Email claim missing from Google ID token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Essential user information missing from Google token"})
		return
	}

	user, err := h.userService.AuthenticateGoogleUser(ctx, email, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not permitted"})
			return
		}
		logger.Error("Failed to authenticate Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process Google sign-in"})
		return
	}

	if err := h.authHandler.issueTokens(c, user); err != nil {
		logger.Error("Failed to issue tokens after Google sign-in", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	logger.Info("User signed in via Google", slog.String("user_id", user.UserID))
}
