package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
	apperrors "backoffice-service/app/utils/errors"
)

// ContextKeyIdentity is where the gate caches the resolved identity
const ContextKeyIdentity = "identity"

// AuthMiddleware is the authorization gate in front of admin endpoints
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_middleware"),
	}
}

// RequireAuth requires a verifiable bearer token. The resolved identity
// is cached on the request context so stacked gates never re-verify.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := IdentityFromContext(c); ok {
				return next(c)
			}

			token := ExtractBearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, gateError(apperrors.ErrCodeNoCredential, "authentication required"))
			}

			identity, err := m.authUsecase.ValidateToken(c.Request().Context(), token)
			if err != nil {
				// Expected traffic; log at low severity
				m.logger.Debug("token verification failed", "error", err)
				if isStoreFailure(err) {
					return c.JSON(http.StatusInternalServerError, gateError(apperrors.ErrCodeStoreError, "token verification unavailable"))
				}
				return c.JSON(http.StatusUnauthorized, gateError(apperrors.ErrCodeInvalidToken, "invalid or expired token"))
			}

			c.Set(ContextKeyIdentity, identity)

			return next(c)
		}
	}
}

// RequireAdmin requires an authenticated identity with the admin role.
// The forbidden rejection is distinct from the unauthenticated one.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return m.RequireAuth()(func(c echo.Context) error {
			identity, ok := IdentityFromContext(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, gateError(apperrors.ErrCodeUnauthorized, "authentication required"))
			}

			if !identity.IsAdmin() {
				m.logger.Warn("non-admin identity rejected on admin endpoint",
					"actor_id", identity.ID,
					"role", string(identity.Role),
					"path", c.Request().URL.Path)
				return c.JSON(http.StatusForbidden, gateError(apperrors.ErrCodeForbidden, "admin access required"))
			}

			return next(c)
		})
	}
}

// IdentityFromContext returns the identity cached by the gate
func IdentityFromContext(c echo.Context) (*domain.Identity, bool) {
	identity, ok := c.Get(ContextKeyIdentity).(*domain.Identity)
	return identity, ok && identity != nil
}

// ExtractBearerToken extracts the bearer token from the Authorization
// header. Both "Bearer <token>" and raw token formats are accepted.
func ExtractBearerToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return auth
}

// GateErrorResponse is the rejection body emitted by the gate. The code
// field makes the rejection kind observable beyond the status code.
type GateErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func gateError(code apperrors.ErrorCode, message string) GateErrorResponse {
	return GateErrorResponse{Error: message, Code: string(code)}
}

// isStoreFailure distinguishes an unavailable session store from a bad
// credential; the former must not masquerade as a 401.
func isStoreFailure(err error) bool {
	switch {
	case errors.Is(err, domain.ErrNoCredential),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrUnknownRole),
		errors.Is(err, domain.ErrAdminDisabled):
		return false
	}
	return true
}
