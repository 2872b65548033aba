package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice-service/app/domain"
	apperrors "backoffice-service/app/utils/errors"
	"backoffice-service/app/utils/validator"
)

// ErrorResponse is the error body returned by all handlers
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// SuccessResponse is a generic success body
type SuccessResponse struct {
	Message string `json:"message"`
}

// writeError collapses internal failures to the boundary error taxonomy
// and writes the response. Store failure details reach the caller only
// in development mode; production gets a generic message.
func writeError(c echo.Context, err error, devMode bool) error {
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Code:   string(apperrors.ErrCodeValidationFailed),
			Fields: validationErr.Errors,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "invalid credentials",
			Code:  string(apperrors.ErrCodeInvalidCredentials),
		})
	case errors.Is(err, domain.ErrNoCredential):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "no credential supplied",
			Code:  string(apperrors.ErrCodeNoCredential),
		})
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrUnknownRole),
		errors.Is(err, domain.ErrAdminDisabled):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "invalid or expired token",
			Code:  string(apperrors.ErrCodeInvalidToken),
		})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Error: "access denied",
			Code:  string(apperrors.ErrCodeForbidden),
		})
	case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrAdminNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "record not found",
			Code:  string(apperrors.ErrCodeNotFound),
		})
	case errors.Is(err, domain.ErrEmptyUpdate):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "no fields to update",
			Code:  string(apperrors.ErrCodeValidationFailed),
		})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid status value",
			Code:  string(apperrors.ErrCodeValidationFailed),
		})
	case errors.Is(err, domain.ErrAdminAlreadyExists):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error: "admin already exists",
			Code:  string(apperrors.ErrCodeConflict),
		})
	}

	resp := ErrorResponse{
		Error: "store operation failed",
		Code:  string(apperrors.ErrCodeStoreError),
	}
	if devMode {
		resp.Details = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, resp)
}
