package usecase

import (
	"context"
	"errors"
	"log/slog"

	"backoffice-service/app/domain"
	"backoffice-service/app/port"
	"backoffice-service/app/utils/security"
)

// StaticCredentialVerifier verifies against the fixed bootstrap pair
// configured at process start. It exists so an admin can sign in before
// any persisted admin record has been provisioned.
type StaticCredentialVerifier struct {
	identifier string
	secret     string
	identity   *domain.Identity
}

// NewStaticCredentialVerifier creates a verifier for the bootstrap pair
func NewStaticCredentialVerifier(identifier, secret, displayName string) *StaticCredentialVerifier {
	return &StaticCredentialVerifier{
		identifier: identifier,
		secret:     secret,
		identity: &domain.Identity{
			ID:          domain.BootstrapAdminID,
			DisplayName: displayName,
			Role:        domain.RoleAdmin,
		},
	}
}

// Identity returns the bootstrap identity this verifier yields on success
func (v *StaticCredentialVerifier) Identity() *domain.Identity {
	return v.identity
}

// Verify compares both halves in constant time. Both comparisons always
// run so the rejection never reveals which half was wrong.
func (v *StaticCredentialVerifier) Verify(_ context.Context, identifier, secret string) (*domain.Identity, error) {
	identifierOK := security.ConstantTimeEquals(identifier, v.identifier)
	secretOK := security.ConstantTimeEquals(secret, v.secret)

	if !identifierOK || !secretOK {
		return nil, domain.ErrInvalidCredentials
	}

	return v.identity, nil
}

// StoreCredentialVerifier verifies against persisted admin records,
// comparing the submitted secret to the stored bcrypt hash
type StoreCredentialVerifier struct {
	admins port.AdminRepository
	logger *slog.Logger
}

// NewStoreCredentialVerifier creates a store-backed verifier
func NewStoreCredentialVerifier(admins port.AdminRepository, logger *slog.Logger) *StoreCredentialVerifier {
	return &StoreCredentialVerifier{
		admins: admins,
		logger: logger.With("component", "store_credential_verifier"),
	}
}

// Verify looks up the admin by email and compares the secret hash.
// Absent accounts, disabled accounts and wrong secrets all resolve to
// the same rejection.
func (v *StoreCredentialVerifier) Verify(ctx context.Context, identifier, secret string) (*domain.Identity, error) {
	admin, err := v.admins.GetByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !admin.IsActive() {
		v.logger.Warn("login attempt against disabled admin account", "admin_id", admin.ID)
		return nil, domain.ErrInvalidCredentials
	}

	if !security.CompareSecret(admin.SecretHash, secret) {
		return nil, domain.ErrInvalidCredentials
	}

	return admin.Identity(), nil
}

// VerifierChain tries an ordered list of credential strategies. The
// first success wins; a store failure other than a credential mismatch
// aborts the chain.
type VerifierChain struct {
	verifiers []port.CredentialVerifier
}

// NewVerifierChain creates a chain over the given strategies in order
func NewVerifierChain(verifiers ...port.CredentialVerifier) *VerifierChain {
	return &VerifierChain{verifiers: verifiers}
}

// Verify rejects empty inputs immediately without consulting any
// strategy, then walks the chain.
func (c *VerifierChain) Verify(ctx context.Context, identifier, secret string) (*domain.Identity, error) {
	if identifier == "" || secret == "" {
		return nil, domain.ErrInvalidCredentials
	}

	for _, v := range c.verifiers {
		identity, err := v.Verify(ctx, identifier, secret)
		if err == nil {
			return identity, nil
		}
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, err
		}
	}

	return nil, domain.ErrInvalidCredentials
}
