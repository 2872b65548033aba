package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCreateAdminRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Secret string `json:"secret" validate:"required,password"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid struct passes", func(t *testing.T) {
		err := v.Validate(&testCreateAdminRequest{
			Email:  "admin@example.com",
			Secret: "Lavish2025",
		})
		assert.NoError(t, err)
	})

	t.Run("errors keyed by json field name", func(t *testing.T) {
		err := v.Validate(&testCreateAdminRequest{Secret: "Lavish2025"})
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, validationErr.Errors, "email")
		assert.NotContains(t, validationErr.Errors, "Email")
	})

	t.Run("invalid email format", func(t *testing.T) {
		err := v.Validate(&testCreateAdminRequest{
			Email:  "not-an-email",
			Secret: "Lavish2025",
		})
		require.Error(t, err)

		validationErr := err.(*ValidationError)
		assert.Contains(t, validationErr.Errors["email"], "valid email")
	})
}

func TestValidator_PasswordRule(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{name: "meets all requirements", secret: "Lavish2025", wantErr: false},
		{name: "too short", secret: "La2025", wantErr: true},
		{name: "no uppercase", secret: "lavish2025", wantErr: true},
		{name: "no lowercase", secret: "LAVISH2025", wantErr: true},
		{name: "no number", secret: "LavishSecret", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&testCreateAdminRequest{
				Email:  "admin@example.com",
				Secret: tt.secret,
			})
			if tt.wantErr {
				require.Error(t, err)
				validationErr := err.(*ValidationError)
				assert.Contains(t, validationErr.Errors, "secret")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{"email": "email is required"}}

	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "email is required")
}
