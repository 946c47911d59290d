package store

import (
	"context"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/models"
	sq "github.com/Masterminds/squirrel"
)

// accountRepository is the SQL implementation of [AccountRepository] over
// the "admin_accounts" table.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount inserts account and returns it with its assigned ID.
// A taken identifier yields [ErrAlreadyExists].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.AdminAccount) (models.AdminAccount, error) {
	log := logger.FromContext(ctx)

	created, err := queryOne(ctx, r.db, buildCreateAccountQuery(r.db.builder, account), scanAccount)
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.CreateAccount").
			Str("identifier", account.Identifier).
			Bool("retryable", r.db.retryable(err)).
			Msg("error creating account")
		return models.AdminAccount{}, err
	}

	return created, nil
}

func (r *accountRepository) FindAccountByIdentifier(ctx context.Context, identifier string) (models.AdminAccount, error) {
	return queryOne(ctx, r.db, buildFindAccountQuery(r.db.builder, sq.Eq{"identifier": identifier}), scanAccount)
}

func (r *accountRepository) FindAccountByID(ctx context.Context, id int64) (models.AdminAccount, error) {
	return queryOne(ctx, r.db, buildFindAccountQuery(r.db.builder, sq.Eq{"id": id}), scanAccount)
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]models.AdminAccount, error) {
	log := logger.FromContext(ctx)

	accounts, err := queryMany(ctx, r.db, buildListAccountsQuery(r.db.builder), scanAccount)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error listing accounts")
		return nil, err
	}

	return accounts, nil
}

// UpdateIdentifier renames the account. A taken identifier yields
// [ErrAlreadyExists], an unknown id [ErrNotFound].
func (r *accountRepository) UpdateIdentifier(ctx context.Context, id int64, identifier string) error {
	query := r.db.builder.Update(tableAccounts).Set("identifier", identifier).Where(sq.Eq{"id": id})
	return r.db.execAffectingOne(ctx, query)
}

func (r *accountRepository) UpdateSecretHash(ctx context.Context, id int64, secretHash string) error {
	query := r.db.builder.Update(tableAccounts).Set("secret_hash", secretHash).Where(sq.Eq{"id": id})
	return r.db.execAffectingOne(ctx, query)
}
