package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
)

// AdminRepository implements port.AdminRepository for PostgreSQL
type AdminRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewAdminRepository creates a new PostgreSQL admin repository
func NewAdminRepository(db DatabaseIface, logger *slog.Logger) port.AdminRepository {
	return &AdminRepository{
		db:     db,
		logger: logger.With("component", "admin_repository"),
	}
}

// Create inserts a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *domain.AdminAccount) error {
	query := `
		INSERT INTO admin_accounts (
			id, email, secret_hash, display_name, role, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`

	_, err := r.db.Exec(ctx, query,
		admin.ID,
		admin.Email,
		admin.SecretHash,
		admin.DisplayName,
		string(admin.Role),
		string(admin.Status),
		admin.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn("admin already exists", "email", admin.Email)
			return domain.ErrAdminAlreadyExists
		}
		r.logger.Error("failed to create admin account", "email", admin.Email, "error", err)
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	r.logger.Info("admin account created", "admin_id", admin.ID, "email", admin.Email)
	return nil
}

// GetByEmail retrieves an admin account by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	query := `
		SELECT
			id, email, secret_hash, display_name, role, status,
			created_at, last_login, last_login_ip
		FROM admin_accounts
		WHERE email = $1`

	return r.scanAdmin(r.db.QueryRow(ctx, query, email))
}

// GetByID retrieves an admin account by ID
func (r *AdminRepository) GetByID(ctx context.Context, id string) (*domain.AdminAccount, error) {
	query := `
		SELECT
			id, email, secret_hash, display_name, role, status,
			created_at, last_login, last_login_ip
		FROM admin_accounts
		WHERE id = $1`

	return r.scanAdmin(r.db.QueryRow(ctx, query, id))
}

// RecordLogin updates the last login timestamp and source IP
func (r *AdminRepository) RecordLogin(ctx context.Context, id string, at time.Time, ip string) error {
	query := `UPDATE admin_accounts SET last_login = $2, last_login_ip = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, at, ip)
	if err != nil {
		r.logger.Error("failed to record admin login", "admin_id", id, "error", err)
		return fmt.Errorf("failed to record admin login: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrAdminNotFound
	}

	return nil
}

func (r *AdminRepository) scanAdmin(row pgx.Row) (*domain.AdminAccount, error) {
	admin := &domain.AdminAccount{}
	var role, status string

	err := row.Scan(
		&admin.ID,
		&admin.Email,
		&admin.SecretHash,
		&admin.DisplayName,
		&role,
		&status,
		&admin.CreatedAt,
		&admin.LastLogin,
		&admin.LastLoginIP,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		r.logger.Error("failed to scan admin account", "error", err)
		return nil, fmt.Errorf("failed to get admin account: %w", err)
	}

	admin.Role = domain.Role(role)
	admin.Status = domain.AdminStatus(status)
	return admin, nil
}
