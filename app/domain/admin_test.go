package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice-service/app/domain"
)

func TestNewAdminAccount(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		secretHash  string
		displayName string
		wantErr     bool
	}{
		{
			name:        "valid account",
			email:       "admin@example.com",
			secretHash:  "$2a$10$abcdefghijklmnopqrstuv",
			displayName: "Site Admin",
			wantErr:     false,
		},
		{
			name:       "invalid email",
			email:      "not-an-email",
			secretHash: "$2a$10$abcdefghijklmnopqrstuv",
			wantErr:    true,
		},
		{
			name:       "empty email",
			email:      "",
			secretHash: "$2a$10$abcdefghijklmnopqrstuv",
			wantErr:    true,
		},
		{
			name:       "missing secret hash",
			email:      "admin@example.com",
			secretHash: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admin, err := domain.NewAdminAccount(tt.email, tt.secretHash, tt.displayName)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, admin)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.email, admin.Email)
			assert.Equal(t, tt.displayName, admin.DisplayName)
			assert.Equal(t, domain.RoleAdmin, admin.Role)
			assert.Equal(t, domain.AdminStatusActive, admin.Status)
			assert.False(t, admin.CreatedAt.IsZero())
			assert.Nil(t, admin.LastLogin)
		})
	}
}

func TestNewAdminAccount_DisplayNameFallsBackToEmail(t *testing.T) {
	admin, err := domain.NewAdminAccount("admin@example.com", "hash", "")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", admin.DisplayName)
}

func TestAdminAccount_IsActive(t *testing.T) {
	admin, err := domain.NewAdminAccount("admin@example.com", "hash", "Admin")
	require.NoError(t, err)

	assert.True(t, admin.IsActive())

	admin.Status = domain.AdminStatusDisabled
	assert.False(t, admin.IsActive())
}

func TestAdminAccount_Identity(t *testing.T) {
	admin, err := domain.NewAdminAccount("admin@example.com", "hash", "Site Admin")
	require.NoError(t, err)

	identity := admin.Identity()
	assert.Equal(t, admin.ID.String(), identity.ID)
	assert.Equal(t, "Site Admin", identity.DisplayName)
	assert.Equal(t, domain.RoleAdmin, identity.Role)
	assert.True(t, identity.IsAdmin())
}
