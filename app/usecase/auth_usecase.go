package usecase

import (
	"context"
	"log/slog"
	"time"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
	"backoffice-service/app/utils/security"
)

// AuthUsecase implements authentication business logic
type AuthUsecase struct {
	verifier port.CredentialVerifier
	issuer   port.TokenIssuer
	tokens   port.TokenVerifier
	revoker  port.SessionRevoker
	admins   port.AdminRepository
	audit    port.AuditRecorder
	logger   *slog.Logger
}

// NewAuthUsecase creates a new AuthUsecase instance
func NewAuthUsecase(
	verifier port.CredentialVerifier,
	issuer port.TokenIssuer,
	tokens port.TokenVerifier,
	revoker port.SessionRevoker,
	admins port.AdminRepository,
	audit port.AuditRecorder,
	logger *slog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		verifier: verifier,
		issuer:   issuer,
		tokens:   tokens,
		revoker:  revoker,
		admins:   admins,
		audit:    audit,
		logger:   logger.With("component", "auth_usecase"),
	}
}

// Login verifies the submitted credentials and issues a bearer token.
// A failed verification issues no token and records no audit entry.
func (uc *AuthUsecase) Login(ctx context.Context, identifier, secret, remoteIP string) (string, *domain.Identity, error) {
	identity, err := uc.verifier.Verify(ctx, identifier, secret)
	if err != nil {
		return "", nil, err
	}

	token, err := uc.issuer.Issue(ctx, identity)
	if err != nil {
		uc.logger.Error("token issuance failed", "admin_id", identity.ID, "error", err)
		return "", nil, err
	}

	// Persisted admins track their last login; the bootstrap admin has
	// no record to update. A failure here must not undo a successful
	// authentication.
	if identity.ID != domain.BootstrapAdminID {
		if err := uc.admins.RecordLogin(ctx, identity.ID, time.Now(), remoteIP); err != nil {
			uc.logger.Warn("failed to record last login", "admin_id", identity.ID, "error", err)
		}
	}

	uc.audit.Record(ctx, domain.ActionAdminLogin, identity.ID, remoteIP, map[string]any{
		"display_name": identity.DisplayName,
	})

	return token, identity, nil
}

// ValidateToken recovers the identity behind a bearer token
func (uc *AuthUsecase) ValidateToken(ctx context.Context, token string) (*domain.Identity, error) {
	return uc.tokens.Verify(ctx, token)
}

// Logout revokes the bearer token where the token variant supports it.
// Revoking an already-revoked token succeeds silently.
func (uc *AuthUsecase) Logout(ctx context.Context, token string, actor *domain.Identity, source string) error {
	if err := uc.revoker.Revoke(ctx, token); err != nil {
		return err
	}

	uc.audit.Record(ctx, domain.ActionAdminLogout, actor.ID, source, map[string]any{
		"display_name": actor.DisplayName,
	})

	return nil
}

// CreateAdmin provisions a persisted admin account with a bcrypt-hashed
// secret
func (uc *AuthUsecase) CreateAdmin(ctx context.Context, email, secret, displayName string, actor *domain.Identity, source string) (*domain.AdminAccount, error) {
	secretHash, err := security.HashSecret(secret)
	if err != nil {
		return nil, err
	}

	admin, err := domain.NewAdminAccount(email, secretHash, displayName)
	if err != nil {
		return nil, err
	}

	if err := uc.admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, domain.ActionCreateAdmin, actor.ID, source, map[string]any{
		"admin_id": admin.ID.String(),
		"email":    admin.Email,
	})

	return admin, nil
}
