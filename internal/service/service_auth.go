package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/config"
	"github.com/MKhiriev/skillvance-api/internal/crypto"
	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/store"
	"github.com/MKhiriev/skillvance-api/internal/utils"
	"github.com/MKhiriev/skillvance-api/internal/validators"
	"github.com/MKhiriev/skillvance-api/models"
)

// defaultAdminName is the display name of the bootstrapped admin account.
const defaultAdminName = "Administrator"

type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
//
// Sessions are HS256 JWTs. Expiry is checked lazily against now whenever a
// token is presented; logout records the token ID in the revocation table.
type authService struct {
	accountRepository        store.AccountRepository
	revokedSessionRepository store.RevokedSessionRepository

	hasher    crypto.PasswordHasher
	validator validators.Validator
	tokenIDs  idGenerator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService with signing parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	accountRepository store.AccountRepository,
	revokedSessionRepository store.RevokedSessionRepository,
	hasher crypto.PasswordHasher,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		accountRepository:        accountRepository,
		revokedSessionRepository: revokedSessionRepository,
		hasher:                   hasher,
		validator:                validators.NewCredentialValidator(),
		tokenIDs:                 utils.NewUUIDGenerator(),
		tokenSignKey:             cfg.TokenSignKey,
		tokenIssuer:              cfg.TokenIssuer,
		now:                      time.Now,
		logger:                   logger,
	}
}

// Login authenticates an admin.
//
// An unknown identifier and a wrong secret both yield ErrInvalidCredentials.
// A matching account whose role is not admin yields ErrInsufficientRole.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.LoginData, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.LoginData{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	account, err := a.accountRepository.FindAccountByIdentifier(ctx, creds.Identifier)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn().Str("identifier", creds.Identifier).Msg("login attempt for unknown account")
		return models.LoginData{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("identifier", creds.Identifier).Msg("account search by identifier failed")
		return models.LoginData{}, fmt.Errorf("account search by identifier failed: %w", err)
	}

	ok, err := a.hasher.Verify(creds.Secret, account.SecretHash)
	if err != nil {
		log.Err(err).Int64("account_id", account.ID).Msg("stored secret digest is unreadable")
		return models.LoginData{}, fmt.Errorf("error verifying secret: %w", err)
	}
	if !ok {
		log.Warn().Int64("account_id", account.ID).Msg("wrong password")
		return models.LoginData{}, ErrInvalidCredentials
	}

	if account.Role != models.RoleAdmin {
		log.Warn().Int64("account_id", account.ID).Str("role", string(account.Role)).Msg("role is not allowed to sign in")
		return models.LoginData{}, ErrInsufficientRole
	}

	return a.issue(account)
}

// ValidateSession parses token and checks it against the revocation table
// and the account it was issued to. The returned session carries the
// account's current identifier and role, so a renamed account keeps working
// with tokens issued before the rename.
func (a *authService) ValidateSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := utils.ParseSessionToken(token, a.tokenSignKey, a.tokenIssuer, a.now)
	if err != nil {
		log.Debug().Err(err).Msg("rejected session token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}

	revoked, err := a.revokedSessionRepository.IsRevoked(ctx, session.TokenID)
	if err != nil {
		return models.Session{}, fmt.Errorf("error checking session revocation: %w", err)
	}
	if revoked {
		return models.Session{}, fmt.Errorf("%w: session was logged out", ErrSessionInvalid)
	}

	account, err := a.accountRepository.FindAccountByID(ctx, session.AccountID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Session{}, fmt.Errorf("%w: account no longer exists", ErrSessionInvalid)
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session account: %w", err)
	}
	if account.Role != models.RoleAdmin {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionInvalid, ErrInsufficientRole)
	}

	session.Identifier = account.Identifier
	session.Role = account.Role

	return session, nil
}

func (a *authService) Logout(ctx context.Context, session models.Session) error {
	if session.TokenID == "" {
		return nil
	}

	if err := a.revokedSessionRepository.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("token_id", session.TokenID).Msg("session revocation failed")
		return fmt.Errorf("session revocation failed: %w", err)
	}

	return nil
}

func (a *authService) Account(ctx context.Context, id int64) (models.AdminAccount, error) {
	account, err := a.accountRepository.FindAccountByID(ctx, id)
	if err != nil {
		return models.AdminAccount{}, storeError(err)
	}
	return account, nil
}

// UpdateIdentifier renames the account identified by oldIdentifier.
//
// Returns ErrNotFound if no such account exists and ErrIdentifierTaken if
// another account already uses newIdentifier.
func (a *authService) UpdateIdentifier(ctx context.Context, oldIdentifier, newIdentifier string) (models.LoginData, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.IdentifierChange{NewIdentifier: newIdentifier}); err != nil {
		return models.LoginData{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	account, err := a.accountRepository.FindAccountByIdentifier(ctx, oldIdentifier)
	if err != nil {
		return models.LoginData{}, storeError(err)
	}

	if newIdentifier != account.Identifier {
		err = a.accountRepository.UpdateIdentifier(ctx, account.ID, newIdentifier)
		if errors.Is(err, store.ErrAlreadyExists) {
			return models.LoginData{}, ErrIdentifierTaken
		}
		if err != nil {
			log.Err(err).Int64("account_id", account.ID).Msg("identifier update failed")
			return models.LoginData{}, storeError(err)
		}
		account.Identifier = newIdentifier
	}

	log.Info().Int64("account_id", account.ID).Msg("account identifier changed")

	return a.issue(account)
}

// UpdateSecret replaces the secret of identifier after checking the current one.
func (a *authService) UpdateSecret(ctx context.Context, identifier string, change models.SecretChange) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, change); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	account, err := a.accountRepository.FindAccountByIdentifier(ctx, identifier)
	if err != nil {
		return storeError(err)
	}

	ok, err := a.hasher.Verify(change.CurrentSecret, account.SecretHash)
	if err != nil {
		return fmt.Errorf("error verifying secret: %w", err)
	}
	if !ok {
		return ErrWrongSecret
	}

	hash, err := a.hasher.Hash(change.NewSecret)
	if err != nil {
		return fmt.Errorf("error hashing secret: %w", err)
	}

	if err := a.accountRepository.UpdateSecretHash(ctx, account.ID, hash); err != nil {
		log.Err(err).Int64("account_id", account.ID).Msg("secret update failed")
		return storeError(err)
	}

	log.Info().Int64("account_id", account.ID).Msg("account secret changed")
	return nil
}

func (a *authService) ListAccounts(ctx context.Context) ([]models.AdminAccount, error) {
	accounts, err := a.accountRepository.ListAccounts(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return accounts, nil
}

// EnsureDefaultAdmin creates the bootstrap admin account unless an account
// with its identifier already exists. Existing accounts are left untouched.
func (a *authService) EnsureDefaultAdmin(ctx context.Context, bootstrap config.Bootstrap) error {
	_, err := a.accountRepository.FindAccountByIdentifier(ctx, bootstrap.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("error looking up default admin: %w", err)
	}

	hash, err := a.hasher.Hash(bootstrap.AdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing default admin secret: %w", err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.AdminAccount{
		Identifier: bootstrap.AdminEmail,
		Name:       defaultAdminName,
		SecretHash: hash,
		Role:       models.RoleAdmin,
		CreatedAt:  a.now().UTC(),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error creating default admin: %w", err)
	}

	a.logger.Info().Int64("account_id", account.ID).Str("identifier", account.Identifier).Msg("default admin account created")
	return nil
}

func (a *authService) PruneRevokedSessions(ctx context.Context) (int64, error) {
	return a.revokedSessionRepository.PruneExpired(ctx, a.now())
}

// issue signs a fresh session for account.
func (a *authService) issue(account models.AdminAccount) (models.LoginData, error) {
	issuedAt := a.now().UTC().Truncate(time.Second)

	session := models.Session{
		AccountID:  account.ID,
		Identifier: account.Identifier,
		Role:       account.Role,
		TokenID:    a.tokenIDs.Generate(),
		IssuedAt:   issuedAt,
		ExpiresAt:  issuedAt.Add(models.SessionLifetime),
	}

	token, err := utils.GenerateSessionToken(a.tokenIssuer, a.tokenSignKey, session)
	if err != nil {
		return models.LoginData{}, fmt.Errorf("error creating session token: %w", err)
	}

	return models.LoginData{
		User:      account.View(),
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// storeError translates the store's sentinel errors into the service's.
func storeError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	default:
		return err
	}
}
