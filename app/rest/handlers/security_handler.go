package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
)

// SecurityHandler serves the admin security dashboard: the audit trail
// and session activity counters
type SecurityHandler struct {
	auditRepo   port.AuditRepository
	sessionRepo port.SessionRepository
	logger      *slog.Logger
	devMode     bool
}

// NewSecurityHandler creates a new security handler. sessionRepo may be
// nil in jwt mode, where no session rows exist to count.
func NewSecurityHandler(auditRepo port.AuditRepository, sessionRepo port.SessionRepository, logger *slog.Logger, devMode bool) *SecurityHandler {
	return &SecurityHandler{
		auditRepo:   auditRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
		devMode:     devMode,
	}
}

// AuditListResponse carries a page of audit entries plus the total count
type AuditListResponse struct {
	Entries []*domain.AuditEntry `json:"entries"`
	Total   int64                `json:"total"`
}

// ListAudit returns audit entries newest first
func (h *SecurityHandler) ListAudit(c echo.Context) error {
	ctx := c.Request().Context()

	limit := parseIntParam(c, "limit", 50)
	if limit > 200 {
		limit = 200
	}
	offset := parseIntParam(c, "offset", 0)

	entries, err := h.auditRepo.List(ctx, limit, offset)
	if err != nil {
		h.logger.Error("failed to list audit entries", "error", err)
		return writeError(c, err, h.devMode)
	}

	total, err := h.auditRepo.Count(ctx)
	if err != nil {
		h.logger.Error("failed to count audit entries", "error", err)
		return writeError(c, err, h.devMode)
	}

	return c.JSON(http.StatusOK, AuditListResponse{
		Entries: entries,
		Total:   total,
	})
}

// SecuritySummaryResponse carries dashboard counters
type SecuritySummaryResponse struct {
	AuditEntries   int64 `json:"audit_entries"`
	ActiveSessions int64 `json:"active_sessions"`
}

// Summary returns the dashboard counters
func (h *SecurityHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	auditCount, err := h.auditRepo.Count(ctx)
	if err != nil {
		h.logger.Error("failed to count audit entries", "error", err)
		return writeError(c, err, h.devMode)
	}

	var activeSessions int64
	if h.sessionRepo != nil {
		activeSessions, err = h.sessionRepo.CountActive(ctx)
		if err != nil {
			h.logger.Error("failed to count active sessions", "error", err)
			return writeError(c, err, h.devMode)
		}
	}

	return c.JSON(http.StatusOK, SecuritySummaryResponse{
		AuditEntries:   auditCount,
		ActiveSessions: activeSessions,
	})
}
