package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
	custommw "backoffice-service/app/rest/middleware"
)

// AdminHandler handles the back-office listing and mutation endpoints.
// Every route using it sits behind the admin authorization gate.
type AdminHandler struct {
	inquiryUsecase port.InquiryUsecase
	logger         *slog.Logger
	devMode        bool
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(inquiryUsecase port.InquiryUsecase, logger *slog.Logger, devMode bool) *AdminHandler {
	return &AdminHandler{
		inquiryUsecase: inquiryUsecase,
		logger:         logger,
		devMode:        devMode,
	}
}

// ListProjectRequests lists project requests, optionally filtered by
// status
func (h *AdminHandler) ListProjectRequests(c echo.Context) error {
	ctx := c.Request().Context()

	filter := port.ProjectRequestFilter{
		Limit:  parseIntParam(c, "limit", 0),
		Offset: parseIntParam(c, "offset", 0),
	}

	if statusParam := c.QueryParam("status"); statusParam != "" {
		status := domain.ProjectRequestStatus(statusParam)
		if !status.IsValid() {
			return writeError(c, domain.ErrInvalidStatus, h.devMode)
		}
		filter.Status = &status
	}

	requests, err := h.inquiryUsecase.ListProjectRequests(ctx, filter)
	if err != nil {
		h.logger.Error("failed to list project requests", "error", err)
		return writeError(c, err, h.devMode)
	}

	return c.JSON(http.StatusOK, requests)
}

// GetProjectRequest returns a single project request
func (h *AdminHandler) GetProjectRequest(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id format"})
	}

	request, err := h.inquiryUsecase.GetProjectRequest(ctx, id)
	if err != nil {
		return writeError(c, err, h.devMode)
	}

	return c.JSON(http.StatusOK, request)
}

// UpdateProjectRequest applies a partial update to a project request
func (h *AdminHandler) UpdateProjectRequest(c echo.Context) error {
	ctx := c.Request().Context()

	actor, ok := custommw.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id format"})
	}

	var update domain.ProjectRequestUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	request, err := h.inquiryUsecase.UpdateProjectRequest(ctx, id, &update, actor, c.RealIP())
	if err != nil {
		return writeError(c, err, h.devMode)
	}

	return c.JSON(http.StatusOK, request)
}

// DeleteProjectRequest removes a project request
func (h *AdminHandler) DeleteProjectRequest(c echo.Context) error {
	ctx := c.Request().Context()

	actor, ok := custommw.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id format"})
	}

	if err := h.inquiryUsecase.DeleteProjectRequest(ctx, id, actor, c.RealIP()); err != nil {
		return writeError(c, err, h.devMode)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "project request deleted"})
}

// ListContacts lists contact submissions, optionally filtered by status
func (h *AdminHandler) ListContacts(c echo.Context) error {
	ctx := c.Request().Context()

	filter := port.ContactFilter{
		Limit:  parseIntParam(c, "limit", 0),
		Offset: parseIntParam(c, "offset", 0),
	}

	if statusParam := c.QueryParam("status"); statusParam != "" {
		status := domain.ContactStatus(statusParam)
		if !status.IsValid() {
			return writeError(c, domain.ErrInvalidStatus, h.devMode)
		}
		filter.Status = &status
	}

	submissions, err := h.inquiryUsecase.ListContacts(ctx, filter)
	if err != nil {
		h.logger.Error("failed to list contact submissions", "error", err)
		return writeError(c, err, h.devMode)
	}

	return c.JSON(http.StatusOK, submissions)
}

// GetContact returns a single contact submission
func (h *AdminHandler) GetContact(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id format"})
	}

	submission, err := h.inquiryUsecase.GetContact(ctx, id)
	if err != nil {
		return writeError(c, err, h.devMode)
	}

	return c.JSON(http.StatusOK, submission)
}

// UpdateContact applies a partial update to a contact submission
func (h *AdminHandler) UpdateContact(c echo.Context) error {
	ctx := c.Request().Context()

	actor, ok := custommw.IdentityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id format"})
	}

	var update domain.ContactUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	submission, err := h.inquiryUsecase.UpdateContact(ctx, id, &update, actor, c.RealIP())
	if err != nil {
		return writeError(c, err, h.devMode)
	}

	return c.JSON(http.StatusOK, submission)
}

func parseIntParam(c echo.Context, name string, defaultValue int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}
