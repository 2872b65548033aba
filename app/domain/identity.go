package domain

// Role represents an access role carried by an authenticated identity
type Role string

const (
	RoleAdmin Role = "admin"
)

// BootstrapAdminID identifies the static bootstrap admin configured at
// process start. It never corresponds to a persisted admin record.
const BootstrapAdminID = "bootstrap-admin"

// IsValid returns true if the role belongs to the known role set
func (r Role) IsValid() bool {
	return r == RoleAdmin
}

// Identity represents a verified administrative identity.
// Immutable for the lifetime of a token issued against it.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
}

// IsAdmin returns true if the identity carries the admin role
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
