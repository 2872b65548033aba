package port

//go:generate mockgen -source=audit_port.go -destination=../mocks/mock_audit_port.go

import (
	"context"

	"backoffice-service/app/domain"
)

// AuditRecorder appends audit entries for privileged actions.
// Record is fire-and-forget: a failed append never fails the mutation
// that triggered it, but is surfaced to operational logging.
type AuditRecorder interface {
	Record(ctx context.Context, action domain.ActionKind, actor, source string, details map[string]any)
}

// AuditRepository defines audit log data access. The log is append-only.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, limit, offset int) ([]*domain.AuditEntry, error)
	Count(ctx context.Context) (int64, error)
}
