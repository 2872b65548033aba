package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
)

// AuditRepository implements port.AuditRepository for PostgreSQL.
// The audit_log table is append-only: no update or delete statements
// exist anywhere in this repository.
type AuditRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewAuditRepository creates a new PostgreSQL audit repository
func NewAuditRepository(db DatabaseIface, logger *slog.Logger) port.AuditRepository {
	return &AuditRepository{
		db:     db,
		logger: logger.With("component", "audit_repository"),
	}
}

// Insert appends an audit entry
func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	query := `
		INSERT INTO audit_log (
			id, action, actor, source, details, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`

	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		entry.ID,
		string(entry.Action),
		entry.Actor,
		entry.Source,
		details,
		entry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}

	return nil
}

// List returns audit entries newest first
func (r *AuditRepository) List(ctx context.Context, limit, offset int) ([]*domain.AuditEntry, error) {
	query := `
		SELECT id, action, actor, source, details, created_at
		FROM audit_log
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("failed to list audit entries", "error", err)
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.AuditEntry, 0)
	for rows.Next() {
		entry := &domain.AuditEntry{}
		var action string
		var details []byte

		if err := rows.Scan(&entry.ID, &action, &entry.Actor, &entry.Source, &details, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}

		entry.Action = domain.ActionKind(action)
		if err := json.Unmarshal(details, &entry.Details); err != nil {
			return nil, fmt.Errorf("failed to decode audit details: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit entries: %w", err)
	}

	return entries, nil
}

// Count returns the total number of audit entries
func (r *AuditRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&count); err != nil {
		r.logger.Error("failed to count audit entries", "error", err)
		return 0, fmt.Errorf("failed to count audit entries: %w", err)
	}
	return count, nil
}
