package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"
	"time"

	"backoffice-service/app/domain"
)

// AuthUsecase defines the authentication business logic interface
type AuthUsecase interface {
	// Login verifies the submitted credentials and issues a bearer token
	Login(ctx context.Context, identifier, secret, remoteIP string) (string, *domain.Identity, error)

	// ValidateToken recovers the identity behind a bearer token
	ValidateToken(ctx context.Context, token string) (*domain.Identity, error)

	// Logout revokes the bearer token where the token variant supports it
	Logout(ctx context.Context, token string, actor *domain.Identity, source string) error

	// CreateAdmin provisions a persisted admin account
	CreateAdmin(ctx context.Context, email, secret, displayName string, actor *domain.Identity, source string) (*domain.AdminAccount, error)
}

// CredentialVerifier turns a submitted identifier/secret pair into a
// verified identity or a rejection
type CredentialVerifier interface {
	Verify(ctx context.Context, identifier, secret string) (*domain.Identity, error)
}

// TokenIssuer produces an opaque bearer token for a verified identity
type TokenIssuer interface {
	Issue(ctx context.Context, identity *domain.Identity) (string, error)
}

// TokenVerifier recovers the identity behind an inbound bearer token
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

// SessionRevoker revokes a bearer token. Revoking an unknown token is
// not an error.
type SessionRevoker interface {
	Revoke(ctx context.Context, token string) error
}

// AdminRepository defines admin account data access
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.AdminAccount) error
	GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error)
	GetByID(ctx context.Context, id string) (*domain.AdminAccount, error)
	RecordLogin(ctx context.Context, id string, at time.Time, ip string) error
}

// SessionRepository defines session data access for the stateful token
// variant
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}
