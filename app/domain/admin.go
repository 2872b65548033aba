package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// AdminStatus represents the lifecycle state of a persisted admin account
type AdminStatus string

const (
	AdminStatusActive   AdminStatus = "active"
	AdminStatusDisabled AdminStatus = "disabled"
)

// AdminAccount represents a persisted admin credential record.
// SecretHash holds a bcrypt hash; the raw secret is never stored or logged.
type AdminAccount struct {
	ID          uuid.UUID   `json:"id"`
	Email       string      `json:"email"`
	SecretHash  string      `json:"-"`
	DisplayName string      `json:"display_name"`
	Role        Role        `json:"role"`
	Status      AdminStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	LastLogin   *time.Time  `json:"last_login,omitempty"`
	LastLoginIP *string     `json:"last_login_ip,omitempty"`
}

// NewAdminAccount creates a new active admin account with the given
// pre-hashed secret
func NewAdminAccount(email, secretHash, displayName string) (*AdminAccount, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid admin email: %w", err)
	}
	if secretHash == "" {
		return nil, fmt.Errorf("secret hash is required")
	}
	if displayName == "" {
		displayName = email
	}

	return &AdminAccount{
		ID:          uuid.New(),
		Email:       email,
		SecretHash:  secretHash,
		DisplayName: displayName,
		Role:        RoleAdmin,
		Status:      AdminStatusActive,
		CreatedAt:   time.Now(),
	}, nil
}

// IsActive returns true if the account may authenticate
func (a *AdminAccount) IsActive() bool {
	return a.Status == AdminStatusActive
}

// Identity derives the verified identity carried by tokens issued for
// this account
func (a *AdminAccount) Identity() *Identity {
	return &Identity{
		ID:          a.ID.String(),
		DisplayName: a.DisplayName,
		Role:        a.Role,
	}
}
