package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
)

// ProjectRequestRepository implements port.ProjectRequestRepository for
// PostgreSQL
type ProjectRequestRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProjectRequestRepository creates a new PostgreSQL project request
// repository
func NewProjectRequestRepository(db DatabaseIface, logger *slog.Logger) port.ProjectRequestRepository {
	return &ProjectRequestRepository{
		db:     db,
		logger: logger.With("component", "project_request_repository"),
	}
}

// Insert stores a new project request
func (r *ProjectRequestRepository) Insert(ctx context.Context, request *domain.ProjectRequest) error {
	query := `
		INSERT INTO project_requests (
			id, name, email, company, budget, timeline, message,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`

	_, err := r.db.Exec(ctx, query,
		request.ID,
		request.Name,
		request.Email,
		request.Company,
		request.Budget,
		request.Timeline,
		request.Message,
		string(request.Status),
		request.CreatedAt,
		request.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to insert project request", "error", err)
		return fmt.Errorf("failed to insert project request: %w", err)
	}

	r.logger.Info("project request stored", "request_id", request.ID)
	return nil
}

// GetByID retrieves a project request by ID
func (r *ProjectRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProjectRequest, error) {
	query := selectProjectRequest + ` WHERE id = $1`

	request, err := scanProjectRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		r.logger.Error("failed to get project request", "request_id", id, "error", err)
		return nil, fmt.Errorf("failed to get project request: %w", err)
	}

	return request, nil
}

// List returns project requests newest first, optionally filtered by
// status
func (r *ProjectRequestRepository) List(ctx context.Context, filter port.ProjectRequestFilter) ([]*domain.ProjectRequest, error) {
	query := selectProjectRequest
	args := make([]interface{}, 0, 3)

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(" WHERE status = $%d", len(args))
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list project requests", "error", err)
		return nil, fmt.Errorf("failed to list project requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*domain.ProjectRequest, 0)
	for rows.Next() {
		request, err := scanProjectRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project request: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project requests: %w", err)
	}

	return requests, nil
}

// Update applies a partial update to exactly one row and returns the
// matched row count. Only the fields present in the update are touched;
// updated_at and last_updated_by are rewritten on every call.
func (r *ProjectRequestRepository) Update(ctx context.Context, id uuid.UUID, update *domain.ProjectRequestUpdate, updatedBy string, updatedAt time.Time) (int64, error) {
	setClauses := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)

	if update.Status != nil {
		args = append(args, string(*update.Status))
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if update.AdminNote != nil {
		args = append(args, *update.AdminNote)
		setClauses = append(setClauses, fmt.Sprintf("admin_note = $%d", len(args)))
	}

	args = append(args, updatedAt)
	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, updatedBy)
	setClauses = append(setClauses, fmt.Sprintf("last_updated_by = $%d", len(args)))

	args = append(args, id)
	query := fmt.Sprintf("UPDATE project_requests SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to update project request", "request_id", id, "error", err)
		return 0, fmt.Errorf("failed to update project request: %w", err)
	}

	return result.RowsAffected(), nil
}

// Delete removes a project request and returns the matched row count
func (r *ProjectRequestRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM project_requests WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete project request", "request_id", id, "error", err)
		return 0, fmt.Errorf("failed to delete project request: %w", err)
	}

	return result.RowsAffected(), nil
}

// Count returns the number of project requests, optionally filtered by
// status
func (r *ProjectRequestRepository) Count(ctx context.Context, status *domain.ProjectRequestStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM project_requests`
	args := make([]interface{}, 0, 1)
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.logger.Error("failed to count project requests", "error", err)
		return 0, fmt.Errorf("failed to count project requests: %w", err)
	}

	return count, nil
}

const selectProjectRequest = `
	SELECT
		id, name, email, company, budget, timeline, message, admin_note,
		status, created_at, updated_at, last_updated_by
	FROM project_requests`

func scanProjectRequest(row pgx.Row) (*domain.ProjectRequest, error) {
	request := &domain.ProjectRequest{}
	var status string
	var adminNote, lastUpdatedBy *string

	err := row.Scan(
		&request.ID,
		&request.Name,
		&request.Email,
		&request.Company,
		&request.Budget,
		&request.Timeline,
		&request.Message,
		&adminNote,
		&status,
		&request.CreatedAt,
		&request.UpdatedAt,
		&lastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	request.Status = domain.ProjectRequestStatus(status)
	if adminNote != nil {
		request.AdminNote = *adminNote
	}
	if lastUpdatedBy != nil {
		request.LastUpdatedBy = *lastUpdatedBy
	}
	return request, nil
}
