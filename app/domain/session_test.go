package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice-service/app/domain"
)

func TestNewSession(t *testing.T) {
	session, err := domain.NewSession("admin-1", time.Hour)
	require.NoError(t, err)

	// 32 random bytes hex-encoded
	assert.Len(t, session.Token, 64)
	assert.Equal(t, "admin-1", session.AdminID)
	assert.False(t, session.IsExpired())
	assert.Equal(t, session.CreatedAt.Add(time.Hour), session.ExpiresAt)
}

func TestNewSession_TokensAreUnique(t *testing.T) {
	first, err := domain.NewSession("admin-1", time.Hour)
	require.NoError(t, err)
	second, err := domain.NewSession("admin-1", time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestNewSession_Invalid(t *testing.T) {
	_, err := domain.NewSession("", time.Hour)
	assert.Error(t, err)

	_, err = domain.NewSession("admin-1", 0)
	assert.Error(t, err)

	_, err = domain.NewSession("admin-1", -time.Minute)
	assert.Error(t, err)
}

func TestSession_IsExpired(t *testing.T) {
	session := &domain.Session{
		Token:     "token",
		AdminID:   "admin-1",
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	assert.True(t, session.IsExpired())

	session.ExpiresAt = time.Now().Add(time.Hour)
	assert.False(t, session.IsExpired())
}
