package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/config"
	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/mock"
	"github.com/MKhiriev/skillvance-api/internal/store"
	"github.com/MKhiriev/skillvance-api/internal/utils"
	"github.com/MKhiriev/skillvance-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "skillvance-test"
)

var testNow = time.Date(2026, 5, 10, 9, 30, 15, 500, time.UTC)

type fixedTokenID string

func (f fixedTokenID) Generate() string { return string(f) }

// newTestAuthSvc builds an authService around gomock doubles with a frozen clock.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (
	*authService,
	*mock.MockAccountRepository,
	*mock.MockRevokedSessionRepository,
	*mock.MockPasswordHasher,
) {
	t.Helper()
	accounts := mock.NewMockAccountRepository(ctrl)
	revoked := mock.NewMockRevokedSessionRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(accounts, revoked, hasher, config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer}, logger.Nop()).(*authService)
	svc.now = func() time.Time { return testNow }
	svc.tokenIDs = fixedTokenID("token-1")

	return svc, accounts, revoked, hasher
}

func adminAccount() models.AdminAccount {
	return models.AdminAccount{
		ID:         7,
		Identifier: "admin@example.com",
		Name:       "Administrator",
		SecretHash: "digest",
		Role:       models.RoleAdmin,
		CreatedAt:  testNow.Add(-time.Hour),
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, _, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		accounts.EXPECT().FindAccountByIdentifier(ctx, "admin@example.com").Return(adminAccount(), nil),
		hasher.EXPECT().Verify("admin123", "digest").Return(true, nil),
	)

	data, err := svc.Login(ctx, models.Credentials{Identifier: "admin@example.com", Secret: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, models.AccountView{ID: 7, Name: "Administrator", Email: "admin@example.com", Role: models.RoleAdmin}, data.User)
	assert.Equal(t, testNow.Truncate(time.Second).Add(24*time.Hour), data.ExpiresAt)

	session, err := utils.ParseSessionToken(data.Token, testSignKey, testIssuer, svc.now)
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.AccountID)
	assert.Equal(t, "token-1", session.TokenID)
	assert.Equal(t, "admin@example.com", session.Identifier)
}

func TestAuthService_Login_Failures(t *testing.T) {
	creds := models.Credentials{Identifier: "admin@example.com", Secret: "admin123"}
	storeFailure := errors.New("connection refused")

	tests := []struct {
		name    string
		creds   models.Credentials
		setup   func(accounts *mock.MockAccountRepository, hasher *mock.MockPasswordHasher)
		wantErr error
		notErr  error
	}{
		{
			name:    "empty identifier",
			creds:   models.Credentials{Secret: "admin123"},
			setup:   func(*mock.MockAccountRepository, *mock.MockPasswordHasher) {},
			wantErr: ErrValidation,
		},
		{
			name:  "unknown identifier",
			creds: creds,
			setup: func(accounts *mock.MockAccountRepository, _ *mock.MockPasswordHasher) {
				accounts.EXPECT().FindAccountByIdentifier(gomock.Any(), creds.Identifier).Return(models.AdminAccount{}, store.ErrNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "wrong secret",
			creds: creds,
			setup: func(accounts *mock.MockAccountRepository, hasher *mock.MockPasswordHasher) {
				accounts.EXPECT().FindAccountByIdentifier(gomock.Any(), creds.Identifier).Return(adminAccount(), nil)
				hasher.EXPECT().Verify(creds.Secret, "digest").Return(false, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "role not allowed",
			creds: creds,
			setup: func(accounts *mock.MockAccountRepository, hasher *mock.MockPasswordHasher) {
				account := adminAccount()
				account.Role = "editor"
				accounts.EXPECT().FindAccountByIdentifier(gomock.Any(), creds.Identifier).Return(account, nil)
				hasher.EXPECT().Verify(creds.Secret, "digest").Return(true, nil)
			},
			wantErr: ErrInsufficientRole,
		},
		{
			name:  "store failure is not a credential failure",
			creds: creds,
			setup: func(accounts *mock.MockAccountRepository, _ *mock.MockPasswordHasher) {
				accounts.EXPECT().FindAccountByIdentifier(gomock.Any(), creds.Identifier).Return(models.AdminAccount{}, storeFailure)
			},
			wantErr: storeFailure,
			notErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, accounts, _, hasher := newTestAuthSvc(t, ctrl)
			tt.setup(accounts, hasher)

			data, err := svc.Login(context.Background(), tt.creds)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.notErr != nil {
				assert.NotErrorIs(t, err, tt.notErr)
			}
			assert.Empty(t, data.Token)
		})
	}
}

// ── ValidateSession ──────────────────────────────────────────────────────────

func TestAuthService_ValidateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, revoked, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	issued, err := svc.issue(adminAccount())
	require.NoError(t, err)

	renamed := adminAccount()
	renamed.Identifier = "owner@example.com"

	revoked.EXPECT().IsRevoked(ctx, "token-1").Return(false, nil)
	accounts.EXPECT().FindAccountByID(ctx, int64(7)).Return(renamed, nil)

	session, err := svc.ValidateSession(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", session.Identifier)
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.True(t, issued.ExpiresAt.Equal(session.ExpiresAt))
}

func TestAuthService_ValidateSession_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		clock   time.Time
		token   func(svc *authService) string
		setup   func(accounts *mock.MockAccountRepository, revoked *mock.MockRevokedSessionRepository)
		wantErr error
	}{
		{
			name:    "malformed token",
			clock:   testNow,
			token:   func(*authService) string { return "not-a-jwt" },
			setup:   func(*mock.MockAccountRepository, *mock.MockRevokedSessionRepository) {},
			wantErr: ErrSessionInvalid,
		},
		{
			name:    "expired exactly at expiry",
			clock:   testNow.Truncate(time.Second).Add(models.SessionLifetime),
			setup:   func(*mock.MockAccountRepository, *mock.MockRevokedSessionRepository) {},
			wantErr: ErrSessionInvalid,
		},
		{
			name:  "revoked",
			clock: testNow,
			setup: func(_ *mock.MockAccountRepository, revoked *mock.MockRevokedSessionRepository) {
				revoked.EXPECT().IsRevoked(gomock.Any(), "token-1").Return(true, nil)
			},
			wantErr: ErrSessionInvalid,
		},
		{
			name:  "account deleted",
			clock: testNow,
			setup: func(accounts *mock.MockAccountRepository, revoked *mock.MockRevokedSessionRepository) {
				revoked.EXPECT().IsRevoked(gomock.Any(), "token-1").Return(false, nil)
				accounts.EXPECT().FindAccountByID(gomock.Any(), int64(7)).Return(models.AdminAccount{}, store.ErrNotFound)
			},
			wantErr: ErrSessionInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, accounts, revoked, _ := newTestAuthSvc(t, ctrl)

			issued, err := svc.issue(adminAccount())
			require.NoError(t, err)
			token := issued.Token
			if tt.token != nil {
				token = tt.token(svc)
			}

			svc.now = func() time.Time { return tt.clock }
			tt.setup(accounts, revoked)

			_, err = svc.ValidateSession(context.Background(), token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, revoked, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	expiresAt := testNow.Add(time.Hour)

	revoked.EXPECT().Revoke(ctx, "token-1", expiresAt).Return(nil).Times(2)

	session := models.Session{TokenID: "token-1", ExpiresAt: expiresAt}
	require.NoError(t, svc.Logout(ctx, session))
	require.NoError(t, svc.Logout(ctx, session))

	// nothing to revoke without a token id
	require.NoError(t, svc.Logout(ctx, models.Session{}))
}

// ── UpdateIdentifier ─────────────────────────────────────────────────────────

func TestAuthService_UpdateIdentifier_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		accounts.EXPECT().FindAccountByIdentifier(ctx, "admin@example.com").Return(adminAccount(), nil),
		accounts.EXPECT().UpdateIdentifier(ctx, int64(7), "owner@example.com").Return(nil),
	)

	data, err := svc.UpdateIdentifier(ctx, "admin@example.com", "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", data.User.Email)

	session, err := utils.ParseSessionToken(data.Token, testSignKey, testIssuer, svc.now)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", session.Identifier)
}

func TestAuthService_UpdateIdentifier_Failures(t *testing.T) {
	tests := []struct {
		name    string
		newID   string
		setup   func(accounts *mock.MockAccountRepository)
		wantErr error
	}{
		{
			name:    "blank new identifier",
			newID:   "  ",
			setup:   func(*mock.MockAccountRepository) {},
			wantErr: ErrValidation,
		},
		{
			name:  "old identifier unknown",
			newID: "owner@example.com",
			setup: func(accounts *mock.MockAccountRepository) {
				accounts.EXPECT().FindAccountByIdentifier(gomock.Any(), "admin@example.com").Return(models.AdminAccount{}, store.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name:  "new identifier taken",
			newID: "other@example.com",
			setup: func(accounts *mock.MockAccountRepository) {
				accounts.EXPECT().FindAccountByIdentifier(gomock.Any(), "admin@example.com").Return(adminAccount(), nil)
				accounts.EXPECT().UpdateIdentifier(gomock.Any(), int64(7), "other@example.com").Return(store.ErrAlreadyExists)
			},
			wantErr: ErrIdentifierTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, accounts, _, _ := newTestAuthSvc(t, ctrl)
			tt.setup(accounts)

			_, err := svc.UpdateIdentifier(context.Background(), "admin@example.com", tt.newID)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_UpdateIdentifier_SameIdentifierOnlyReissues(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, _, _ := newTestAuthSvc(t, ctrl)

	accounts.EXPECT().FindAccountByIdentifier(gomock.Any(), "admin@example.com").Return(adminAccount(), nil)

	data, err := svc.UpdateIdentifier(context.Background(), "admin@example.com", "admin@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, data.Token)
}

// ── UpdateSecret ─────────────────────────────────────────────────────────────

func TestAuthService_UpdateSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, _, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		accounts.EXPECT().FindAccountByIdentifier(ctx, "admin@example.com").Return(adminAccount(), nil),
		hasher.EXPECT().Verify("admin123", "digest").Return(true, nil),
		hasher.EXPECT().Hash("s3cret!").Return("new-digest", nil),
		accounts.EXPECT().UpdateSecretHash(ctx, int64(7), "new-digest").Return(nil),
	)

	err := svc.UpdateSecret(ctx, "admin@example.com", models.SecretChange{CurrentSecret: "admin123", NewSecret: "s3cret!"})
	require.NoError(t, err)
}

func TestAuthService_UpdateSecret_WrongCurrentSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, _, hasher := newTestAuthSvc(t, ctrl)

	accounts.EXPECT().FindAccountByIdentifier(gomock.Any(), "admin@example.com").Return(adminAccount(), nil)
	hasher.EXPECT().Verify("guess", "digest").Return(false, nil)

	err := svc.UpdateSecret(context.Background(), "admin@example.com", models.SecretChange{CurrentSecret: "guess", NewSecret: "s3cret!"})
	require.ErrorIs(t, err, ErrWrongSecret)
}

func TestAuthService_UpdateSecret_TooShort(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	err := svc.UpdateSecret(context.Background(), "admin@example.com", models.SecretChange{CurrentSecret: "admin123", NewSecret: "12345"})
	require.ErrorIs(t, err, ErrValidation)
}

// ── EnsureDefaultAdmin ───────────────────────────────────────────────────────

func TestAuthService_EnsureDefaultAdmin(t *testing.T) {
	bootstrap := config.Bootstrap{AdminEmail: "admin@example.com", AdminPassword: "admin123"}

	t.Run("already provisioned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, accounts, _, _ := newTestAuthSvc(t, ctrl)

		accounts.EXPECT().FindAccountByIdentifier(gomock.Any(), "admin@example.com").Return(adminAccount(), nil)

		require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), bootstrap))
	})

	t.Run("first boot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, accounts, _, hasher := newTestAuthSvc(t, ctrl)

		accounts.EXPECT().FindAccountByIdentifier(gomock.Any(), "admin@example.com").Return(models.AdminAccount{}, store.ErrNotFound)
		hasher.EXPECT().Hash("admin123").Return("digest", nil)
		accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.AdminAccount) (models.AdminAccount, error) {
				assert.Equal(t, "admin@example.com", a.Identifier)
				assert.Equal(t, "digest", a.SecretHash)
				assert.Equal(t, models.RoleAdmin, a.Role)
				assert.Equal(t, testNow, a.CreatedAt)
				a.ID = 1
				return a, nil
			},
		)

		require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), bootstrap))
	})

	t.Run("created concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, accounts, _, hasher := newTestAuthSvc(t, ctrl)

		accounts.EXPECT().FindAccountByIdentifier(gomock.Any(), gomock.Any()).Return(models.AdminAccount{}, store.ErrNotFound)
		hasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
		accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.AdminAccount{}, store.ErrAlreadyExists)

		require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), bootstrap))
	})
}

func TestAuthService_PruneRevokedSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, revoked, _ := newTestAuthSvc(t, ctrl)

	revoked.EXPECT().PruneExpired(gomock.Any(), testNow).Return(int64(3), nil)

	pruned, err := svc.PruneRevokedSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), pruned)
}
