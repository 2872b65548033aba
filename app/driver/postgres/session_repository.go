package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
)

// SessionRepository implements port.SessionRepository for PostgreSQL
type SessionRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db DatabaseIface, logger *slog.Logger) port.SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger.With("component", "session_repository"),
	}
}

// Create inserts a new session row
func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO admin_sessions (
			token, admin_id, created_at, expires_at
		) VALUES (
			$1, $2, $3, $4
		)`

	_, err := r.db.Exec(ctx, query,
		session.Token,
		session.AdminID,
		session.CreatedAt,
		session.ExpiresAt,
	)

	if err != nil {
		r.logger.Error("failed to create session", "admin_id", session.AdminID, "error", err)
		return fmt.Errorf("failed to create session: %w", err)
	}

	r.logger.Info("session created", "admin_id", session.AdminID, "expires_at", session.ExpiresAt)
	return nil
}

// GetByToken retrieves a session by its token value
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `
		SELECT token, admin_id, created_at, expires_at
		FROM admin_sessions
		WHERE token = $1`

	session := &domain.Session{}
	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.AdminID,
		&session.CreatedAt,
		&session.ExpiresAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		r.logger.Error("failed to get session", "error", err)
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// Delete removes a session row. Deleting a non-existent token is not an
// error: revoking twice must succeed silently both times.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM admin_sessions WHERE token = $1`

	result, err := r.db.Exec(ctx, query, token)
	if err != nil {
		r.logger.Error("failed to delete session", "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if result.RowsAffected() == 0 {
		r.logger.Debug("session already revoked or never existed")
	}

	return nil
}

// DeleteExpired removes all expired session rows
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM admin_sessions WHERE expires_at < CURRENT_TIMESTAMP`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.logger.Error("failed to cleanup expired sessions", "error", err)
		return 0, fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected > 0 {
		r.logger.Info("expired sessions cleaned up", "rows_affected", rowsAffected)
	}
	return rowsAffected, nil
}

// CountActive returns the number of unexpired sessions
func (r *SessionRepository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM admin_sessions WHERE expires_at >= CURRENT_TIMESTAMP`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.logger.Error("failed to count active sessions", "error", err)
		return 0, fmt.Errorf("failed to count active sessions: %w", err)
	}

	return count, nil
}
