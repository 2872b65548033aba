package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
	"backoffice-service/app/utils/validator"
)

// InquiryHandler handles public lead-generation form submissions
type InquiryHandler struct {
	inquiryUsecase port.InquiryUsecase
	validator      *validator.Validator
	logger         *slog.Logger
	devMode        bool
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryUsecase port.InquiryUsecase, logger *slog.Logger, devMode bool) *InquiryHandler {
	return &InquiryHandler{
		inquiryUsecase: inquiryUsecase,
		validator:      validator.New(),
		logger:         logger,
		devMode:        devMode,
	}
}

// SubmitProjectRequestBody represents the start-project form
type SubmitProjectRequestBody struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Company  string `json:"company,omitempty" validate:"max=200"`
	Budget   string `json:"budget,omitempty" validate:"max=100"`
	Timeline string `json:"timeline,omitempty" validate:"max=100"`
	Message  string `json:"message" validate:"required,max=5000"`
}

// CreatedResponse carries the id of a newly stored record
type CreatedResponse struct {
	ID string `json:"id"`
}

// SubmitProjectRequest stores a public start-project form submission.
// Validation failures return field-level messages and insert nothing.
func (h *InquiryHandler) SubmitProjectRequest(c echo.Context) error {
	ctx := c.Request().Context()

	var body SubmitProjectRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.validator.Validate(&body); err != nil {
		return writeError(c, err, h.devMode)
	}

	request := domain.NewProjectRequest(body.Name, body.Email, body.Company, body.Budget, body.Timeline, body.Message)

	if err := h.inquiryUsecase.SubmitProjectRequest(ctx, request); err != nil {
		h.logger.Error("failed to store project request", "error", err)
		return writeError(c, err, h.devMode)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: request.ID.String()})
}

// SubmitContactBody represents the contact form
type SubmitContactBody struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject,omitempty" validate:"max=300"`
	Message string `json:"message" validate:"required,max=5000"`
}

// SubmitContact stores a public contact form submission
func (h *InquiryHandler) SubmitContact(c echo.Context) error {
	ctx := c.Request().Context()

	var body SubmitContactBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.validator.Validate(&body); err != nil {
		return writeError(c, err, h.devMode)
	}

	submission := domain.NewContactSubmission(body.Name, body.Email, body.Subject, body.Message)

	if err := h.inquiryUsecase.SubmitContact(ctx, submission); err != nil {
		h.logger.Error("failed to store contact submission", "error", err)
		return writeError(c, err, h.devMode)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: submission.ID.String()})
}
