package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// sessionTokenBytes is the entropy of an opaque session token. 32 bytes
// keeps collisions negligible over any realistic session table size.
const sessionTokenBytes = 32

// Session represents a server-persisted bearer token. Validity is the
// presence of the row plus the expiry check; deletion revokes it.
type Session struct {
	Token     string    `json:"token"`
	AdminID   string    `json:"admin_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSession creates a session for the given admin identity
func NewSession(adminID string, duration time.Duration) (*Session, error) {
	if adminID == "" {
		return nil, fmt.Errorf("admin ID is required")
	}
	if duration <= 0 {
		return nil, fmt.Errorf("session duration must be positive")
	}

	tokenBytes := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	return &Session{
		Token:     hex.EncodeToString(tokenBytes),
		AdminID:   adminID,
		CreatedAt: now,
		ExpiresAt: now.Add(duration),
	}, nil
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
