package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
	custommw "backoffice-service/app/rest/middleware"
	apperrors "backoffice-service/app/utils/errors"
	"backoffice-service/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	validator   *validator.Validator
	logger      *slog.Logger
	devMode     bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger, devMode bool) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator.New(),
		logger:      logger,
		devMode:     devMode,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Secret     string `json:"secret" validate:"required"`
}

// LoginResponse carries the issued bearer token and its identity
type LoginResponse struct {
	Token    string           `json:"token"`
	Identity *domain.Identity `json:"identity"`
}

// Login verifies credentials and issues a bearer token
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.validator.Validate(&req); err != nil {
		return writeError(c, err, h.devMode)
	}

	token, identity, err := h.authUsecase.Login(ctx, req.Identifier, req.Secret, c.RealIP())
	if err != nil {
		h.logger.Info("login rejected", "ip", c.RealIP())
		return writeError(c, err, h.devMode)
	}

	h.logger.Info("admin logged in", "admin_id", identity.ID, "ip", c.RealIP())

	return c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		Identity: identity,
	})
}

// Logout revokes the presented bearer token. The route is not behind
// the authorization gate: an absent token is a malformed request (400),
// while a token that fails verification is still a 401.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	token := custommw.ExtractBearerToken(c)
	if token == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "missing bearer token",
			Code:  string(apperrors.ErrCodeMissingField),
		})
	}

	identity, err := h.authUsecase.ValidateToken(ctx, token)
	if err != nil {
		return writeError(c, err, h.devMode)
	}

	if err := h.authUsecase.Logout(ctx, token, identity, c.RealIP()); err != nil {
		h.logger.Error("logout failed", "admin_id", identity.ID, "error", err)
		return writeError(c, err, h.devMode)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "logged out"})
}

// Validate echoes the identity behind the presented token, for the
// front-end to restore its signed-in state
func (h *AuthHandler) Validate(c echo.Context) error {
	identity, ok := custommw.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	return c.JSON(http.StatusOK, identity)
}

// CreateAdminRequest represents the admin provisioning request body
type CreateAdminRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Secret      string `json:"secret" validate:"required,password"`
	DisplayName string `json:"display_name,omitempty" validate:"max=100"`
}

// CreateAdmin provisions a persisted admin account
func (h *AuthHandler) CreateAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	actor, ok := custommw.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	var req CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.validator.Validate(&req); err != nil {
		return writeError(c, err, h.devMode)
	}

	admin, err := h.authUsecase.CreateAdmin(ctx, req.Email, req.Secret, req.DisplayName, actor, c.RealIP())
	if err != nil {
		h.logger.Error("admin provisioning failed", "actor_id", actor.ID, "error", err)
		return writeError(c, err, h.devMode)
	}

	return c.JSON(http.StatusCreated, admin)
}
