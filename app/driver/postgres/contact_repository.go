package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
)

// ContactRepository implements port.ContactRepository for PostgreSQL
type ContactRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewContactRepository creates a new PostgreSQL contact repository
func NewContactRepository(db DatabaseIface, logger *slog.Logger) port.ContactRepository {
	return &ContactRepository{
		db:     db,
		logger: logger.With("component", "contact_repository"),
	}
}

// Insert stores a new contact submission
func (r *ContactRepository) Insert(ctx context.Context, submission *domain.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (
			id, name, email, subject, message, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)`

	_, err := r.db.Exec(ctx, query,
		submission.ID,
		submission.Name,
		submission.Email,
		submission.Subject,
		submission.Message,
		string(submission.Status),
		submission.CreatedAt,
		submission.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to insert contact submission", "error", err)
		return fmt.Errorf("failed to insert contact submission: %w", err)
	}

	r.logger.Info("contact submission stored", "submission_id", submission.ID)
	return nil
}

// GetByID retrieves a contact submission by ID
func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactSubmission, error) {
	query := selectContactSubmission + ` WHERE id = $1`

	submission, err := scanContactSubmission(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		r.logger.Error("failed to get contact submission", "submission_id", id, "error", err)
		return nil, fmt.Errorf("failed to get contact submission: %w", err)
	}

	return submission, nil
}

// List returns contact submissions newest first, optionally filtered by
// status
func (r *ContactRepository) List(ctx context.Context, filter port.ContactFilter) ([]*domain.ContactSubmission, error) {
	query := selectContactSubmission
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
		r.logger.Error("failed to list contact submissions", "error", err)
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]*domain.ContactSubmission, 0)
	for rows.Next() {
		submission, err := scanContactSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		submissions = append(submissions, submission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contact submissions: %w", err)
	}

	return submissions, nil
}

// Update applies a partial update to exactly one row and returns the
// matched row count
func (r *ContactRepository) Update(ctx context.Context, id uuid.UUID, update *domain.ContactUpdate, updatedBy string, updatedAt time.Time) (int64, error) {
	query := `
		UPDATE contact_submissions
		SET status = $2, updated_at = $3, last_updated_by = $4
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, string(*update.Status), updatedAt, updatedBy)
	if err != nil {
		r.logger.Error("failed to update contact submission", "submission_id", id, "error", err)
		return 0, fmt.Errorf("failed to update contact submission: %w", err)
	}

	return result.RowsAffected(), nil
}

// Count returns the number of contact submissions, optionally filtered
// by status
func (r *ContactRepository) Count(ctx context.Context, status *domain.ContactStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM contact_submissions`
	args := make([]interface{}, 0, 1)
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.logger.Error("failed to count contact submissions", "error", err)
		return 0, fmt.Errorf("failed to count contact submissions: %w", err)
	}

	return count, nil
}

const selectContactSubmission = `
	SELECT
		id, name, email, subject, message, status,
		created_at, updated_at, last_updated_by
	FROM contact_submissions`

func scanContactSubmission(row pgx.Row) (*domain.ContactSubmission, error) {
	submission := &domain.ContactSubmission{}
	var status string
	var lastUpdatedBy *string

	err := row.Scan(
		&submission.ID,
		&submission.Name,
		&submission.Email,
		&submission.Subject,
		&submission.Message,
		&status,
		&submission.CreatedAt,
		&submission.UpdatedAt,
		&lastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	submission.Status = domain.ContactStatus(status)
	if lastUpdatedBy != nil {
		submission.LastUpdatedBy = *lastUpdatedBy
	}
	return submission, nil
}
