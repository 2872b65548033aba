package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice-service/app/domain"
	mock_port "backoffice-service/app/mocks"
)

type authMocks struct {
	verifier *mock_port.MockCredentialVerifier
	issuer   *mock_port.MockTokenIssuer
	tokens   *mock_port.MockTokenVerifier
	revoker  *mock_port.MockSessionRevoker
	admins   *mock_port.MockAdminRepository
	audit    *mock_port.MockAuditRecorder
}

func newAuthUsecaseWithMocks(ctrl *gomock.Controller) (*AuthUsecase, *authMocks) {
	mocks := &authMocks{
		verifier: mock_port.NewMockCredentialVerifier(ctrl),
		issuer:   mock_port.NewMockTokenIssuer(ctrl),
		tokens:   mock_port.NewMockTokenVerifier(ctrl),
		revoker:  mock_port.NewMockSessionRevoker(ctrl),
		admins:   mock_port.NewMockAdminRepository(ctrl),
		audit:    mock_port.NewMockAuditRecorder(ctrl),
	}

	uc := NewAuthUsecase(
		mocks.verifier,
		mocks.issuer,
		mocks.tokens,
		mocks.revoker,
		mocks.admins,
		mocks.audit,
		discardLogger(),
	)
	return uc, mocks
}

func TestAuthUsecase_Login_BootstrapAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newAuthUsecaseWithMocks(ctrl)

	identity := &domain.Identity{ID: domain.BootstrapAdminID, DisplayName: "Administrator", Role: domain.RoleAdmin}

	mocks.verifier.EXPECT().
		Verify(gomock.Any(), "admin", "lavish2025").
		Return(identity, nil)
	mocks.issuer.EXPECT().
		Issue(gomock.Any(), identity).
		Return("issued-token", nil)
	// Bootstrap admin has no persisted record: RecordLogin must not run.
	mocks.audit.EXPECT().
		Record(gomock.Any(), domain.ActionAdminLogin, domain.BootstrapAdminID, "203.0.113.9", gomock.Any()).
		Times(1)

	token, gotIdentity, err := uc.Login(context.Background(), "admin", "lavish2025", "203.0.113.9")

	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.Equal(t, identity, gotIdentity)
}

func TestAuthUsecase_Login_PersistedAdminRecordsLastLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newAuthUsecaseWithMocks(ctrl)

	identity := &domain.Identity{ID: "6e1c1a52-0000-0000-0000-000000000001", DisplayName: "Store Admin", Role: domain.RoleAdmin}

	mocks.verifier.EXPECT().
		Verify(gomock.Any(), "admin@example.com", "secret").
		Return(identity, nil)
	mocks.issuer.EXPECT().
		Issue(gomock.Any(), identity).
		Return("issued-token", nil)
	mocks.admins.EXPECT().
		RecordLogin(gomock.Any(), identity.ID, gomock.Any(), "203.0.113.9").
		Return(nil)
	mocks.audit.EXPECT().
		Record(gomock.Any(), domain.ActionAdminLogin, identity.ID, "203.0.113.9", gomock.Any()).
		Times(1)

	token, _, err := uc.Login(context.Background(), "admin@example.com", "secret", "203.0.113.9")

	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
}

func TestAuthUsecase_Login_RecordLoginFailureDoesNotFailLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newAuthUsecaseWithMocks(ctrl)

	identity := &domain.Identity{ID: "admin-1", DisplayName: "Store Admin", Role: domain.RoleAdmin}

	mocks.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(identity, nil)
	mocks.issuer.EXPECT().Issue(gomock.Any(), identity).Return("issued-token", nil)
	mocks.admins.EXPECT().
		RecordLogin(gomock.Any(), "admin-1", gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))
	mocks.audit.EXPECT().
		Record(gomock.Any(), domain.ActionAdminLogin, "admin-1", gomock.Any(), gomock.Any()).
		Times(1)

	token, _, err := uc.Login(context.Background(), "admin@example.com", "secret", "203.0.113.9")

	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
}

func TestAuthUsecase_Login_RejectedCredentialsIssueNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newAuthUsecaseWithMocks(ctrl)

	// Neither issuer nor audit may be touched on a failed verification.
	mocks.verifier.EXPECT().
		Verify(gomock.Any(), "admin", "wrong").
		Return(nil, domain.ErrInvalidCredentials)

	token, identity, err := uc.Login(context.Background(), "admin", "wrong", "203.0.113.9")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, identity)
}

func TestAuthUsecase_Login_IssuanceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newAuthUsecaseWithMocks(ctrl)

	identity := &domain.Identity{ID: "admin-1", Role: domain.RoleAdmin}

	mocks.verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(identity, nil)
	mocks.issuer.EXPECT().Issue(gomock.Any(), identity).Return("", errors.New("store unavailable"))

	token, gotIdentity, err := uc.Login(context.Background(), "admin@example.com", "secret", "203.0.113.9")

	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Nil(t, gotIdentity)
}

func TestAuthUsecase_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mocks := newAuthUsecaseWithMocks(ctrl)

	identity := &domain.Identity{ID: "admin-1", Role: domain.RoleAdmin}
	mocks.tokens.EXPECT().Verify(gomock.Any(), "some-token").Return(identity, nil)

	got, err := uc.ValidateToken(context.Background(), "some-token")

	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestAuthUsecase_Logout(t *testing.T) {
	actor := &domain.Identity{ID: "admin-1", DisplayName: "Admin", Role: domain.RoleAdmin}

	t.Run("successful logout records audit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, mocks := newAuthUsecaseWithMocks(ctrl)

		mocks.revoker.EXPECT().Revoke(gomock.Any(), "some-token").Return(nil)
		mocks.audit.EXPECT().
			Record(gomock.Any(), domain.ActionAdminLogout, "admin-1", "203.0.113.9", gomock.Any()).
			Times(1)

		err := uc.Logout(context.Background(), "some-token", actor, "203.0.113.9")
		assert.NoError(t, err)
	})

	t.Run("repeated logout still succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, mocks := newAuthUsecaseWithMocks(ctrl)

		// Revocation of an already-deleted session is not an error.
		mocks.revoker.EXPECT().Revoke(gomock.Any(), "some-token").Return(nil).Times(2)
		mocks.audit.EXPECT().
			Record(gomock.Any(), domain.ActionAdminLogout, "admin-1", gomock.Any(), gomock.Any()).
			Times(2)

		assert.NoError(t, uc.Logout(context.Background(), "some-token", actor, "203.0.113.9"))
		assert.NoError(t, uc.Logout(context.Background(), "some-token", actor, "203.0.113.9"))
	})

	t.Run("revocation failure propagates without audit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, mocks := newAuthUsecaseWithMocks(ctrl)

		mocks.revoker.EXPECT().Revoke(gomock.Any(), "some-token").Return(errors.New("store unavailable"))

		err := uc.Logout(context.Background(), "some-token", actor, "203.0.113.9")
		assert.Error(t, err)
	})
}

func TestAuthUsecase_CreateAdmin(t *testing.T) {
	actor := &domain.Identity{ID: domain.BootstrapAdminID, DisplayName: "Administrator", Role: domain.RoleAdmin}

	t.Run("successful provisioning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, mocks := newAuthUsecaseWithMocks(ctrl)

		mocks.admins.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, admin *domain.AdminAccount) error {
				assert.Equal(t, "new@example.com", admin.Email)
				assert.NotEmpty(t, admin.SecretHash)
				assert.NotEqual(t, "Str0ngPass", admin.SecretHash)
				return nil
			})
		mocks.audit.EXPECT().
			Record(gomock.Any(), domain.ActionCreateAdmin, domain.BootstrapAdminID, "203.0.113.9", gomock.Any()).
			Times(1)

		admin, err := uc.CreateAdmin(context.Background(), "new@example.com", "Str0ngPass", "New Admin", actor, "203.0.113.9")

		require.NoError(t, err)
		assert.Equal(t, "New Admin", admin.DisplayName)
		assert.Equal(t, domain.AdminStatusActive, admin.Status)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, mocks := newAuthUsecaseWithMocks(ctrl)

		mocks.admins.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrAdminAlreadyExists)

		admin, err := uc.CreateAdmin(context.Background(), "dup@example.com", "Str0ngPass", "Dup", actor, "203.0.113.9")

		assert.ErrorIs(t, err, domain.ErrAdminAlreadyExists)
		assert.Nil(t, admin)
	})

	t.Run("invalid email never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc, _ := newAuthUsecaseWithMocks(ctrl)

		admin, err := uc.CreateAdmin(context.Background(), "not-an-email", "Str0ngPass", "Bad", actor, "203.0.113.9")

		assert.Error(t, err)
		assert.Nil(t, admin)
	})
}
