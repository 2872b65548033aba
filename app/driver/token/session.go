package token

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
)

// SessionIssuer generates opaque random bearer tokens persisted
// server-side. Implements port.TokenIssuer and port.SessionRevoker.
type SessionIssuer struct {
	sessions port.SessionRepository
	ttl      time.Duration
	logger   *slog.Logger
}

// NewSessionIssuer creates a new stateful session issuer.
func NewSessionIssuer(sessions port.SessionRepository, ttl time.Duration, logger *slog.Logger) *SessionIssuer {
	return &SessionIssuer{
		sessions: sessions,
		ttl:      ttl,
		logger:   logger.With("component", "session_issuer"),
	}
}

// Issue creates and persists a new session for the verified identity.
func (s *SessionIssuer) Issue(ctx context.Context, identity *domain.Identity) (string, error) {
	session, err := domain.NewSession(identity.ID, s.ttl)
	if err != nil {
		return "", err
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return "", err
	}

	return session.Token, nil
}

// Revoke deletes the session row, making the token unverifiable
// thereafter. Revoking an unknown token succeeds silently.
func (s *SessionIssuer) Revoke(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// SessionVerifier validates persisted bearer tokens.
// Implements port.TokenVerifier.
//
// The identity is re-resolved from the admin source on every
// verification rather than trusted from a session snapshot, so role
// changes and account disables propagate immediately.
type SessionVerifier struct {
	sessions  port.SessionRepository
	admins    port.AdminRepository
	bootstrap *domain.Identity
	logger    *slog.Logger
}

// NewSessionVerifier creates a new stateful session verifier. The
// bootstrap identity may be nil when no static admin pair is configured.
func NewSessionVerifier(sessions port.SessionRepository, admins port.AdminRepository, bootstrap *domain.Identity, logger *slog.Logger) *SessionVerifier {
	return &SessionVerifier{
		sessions:  sessions,
		admins:    admins,
		bootstrap: bootstrap,
		logger:    logger.With("component", "session_verifier"),
	}
}

// Verify looks up the token and resolves the linked identity.
func (v *SessionVerifier) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrNoCredential
	}

	session, err := v.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	if session.IsExpired() {
		return nil, domain.ErrSessionExpired
	}

	return v.resolveIdentity(ctx, session.AdminID)
}

func (v *SessionVerifier) resolveIdentity(ctx context.Context, adminID string) (*domain.Identity, error) {
	if adminID == domain.BootstrapAdminID {
		if v.bootstrap == nil {
			v.logger.Warn("session references bootstrap admin but none is configured")
			return nil, domain.ErrInvalidToken
		}
		return v.bootstrap, nil
	}

	admin, err := v.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	if !admin.IsActive() {
		return nil, domain.ErrAdminDisabled
	}

	return admin.Identity(), nil
}

// NoopRevoker is the revoker for the stateless token variant, where
// revocation is not achievable without a denylist: issued JWTs remain
// valid until their expiry claim elapses.
type NoopRevoker struct {
	logger *slog.Logger
}

// NewNoopRevoker creates a revoker that only logs.
func NewNoopRevoker(logger *slog.Logger) *NoopRevoker {
	return &NoopRevoker{logger: logger.With("component", "noop_revoker")}
}

// Revoke logs and succeeds without invalidating anything.
func (n *NoopRevoker) Revoke(_ context.Context, _ string) error {
	n.logger.Info("logout requested in jwt mode; token remains valid until expiry")
	return nil
}
