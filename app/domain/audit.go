package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActionKind identifies a privileged action in the audit log. The set is
// open: new kinds may be added without touching the audit components.
type ActionKind string

const (
	ActionAdminLogin              ActionKind = "ADMIN_LOGIN"
	ActionAdminLogout             ActionKind = "ADMIN_LOGOUT"
	ActionCreateAdmin             ActionKind = "CREATE_ADMIN"
	ActionUpdateProjectRequest    ActionKind = "UPDATE_PROJECT_REQUEST"
	ActionDeleteProjectRequest    ActionKind = "DELETE_PROJECT_REQUEST"
	ActionUpdateContactSubmission ActionKind = "UPDATE_CONTACT_SUBMISSION"
)

// AuditEntry is an append-only record of a privileged action.
// Entries are never updated or deleted.
type AuditEntry struct {
	ID        uuid.UUID      `json:"id"`
	Action    ActionKind     `json:"action"`
	Actor     string         `json:"actor"`
	Source    string         `json:"source"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewAuditEntry creates an audit entry timestamped now
func NewAuditEntry(action ActionKind, actor, source string, details map[string]any) *AuditEntry {
	if details == nil {
		details = make(map[string]any)
	}
	return &AuditEntry{
		ID:        uuid.New(),
		Action:    action,
		Actor:     actor,
		Source:    source,
		Details:   details,
		CreatedAt: time.Now(),
	}
}
