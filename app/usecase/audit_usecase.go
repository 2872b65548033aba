package usecase

import (
	"context"
	"log/slog"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
	apperrors "backoffice-service/app/utils/errors"
)

// AuditRecorder implements port.AuditRecorder over the audit repository.
type AuditRecorder struct {
	repo   port.AuditRepository
	logger *slog.Logger
}

// NewAuditRecorder creates a new audit recorder
func NewAuditRecorder(repo port.AuditRepository, logger *slog.Logger) *AuditRecorder {
	return &AuditRecorder{
		repo:   repo,
		logger: logger.With("component", "audit_recorder"),
	}
}

// Record appends an audit entry. A failed append never propagates: the
// mutation it describes has already committed. The failure is logged as
// a distinct high-priority warning since a lost entry is a compliance
// data-loss risk.
func (a *AuditRecorder) Record(ctx context.Context, action domain.ActionKind, actor, source string, details map[string]any) {
	entry := domain.NewAuditEntry(action, actor, source, details)

	if err := a.repo.Insert(ctx, entry); err != nil {
		a.logger.Error("audit entry lost",
			"code", string(apperrors.ErrCodeAuditWriteFailed),
			"action", string(action),
			"actor", actor,
			"error", err)
		return
	}

	a.logger.Debug("audit entry recorded", "action", string(action), "actor", actor)
}
