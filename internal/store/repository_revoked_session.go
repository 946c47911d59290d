package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/logger"
)

// revokedSessionRepository is the SQL implementation of
// [RevokedSessionRepository] over the "revoked_sessions" table.
type revokedSessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewRevokedSessionRepository(db *DB, logger *logger.Logger) RevokedSessionRepository {
	logger.Debug().Msg("creating revoked session repository")
	return &revokedSessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *revokedSessionRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	q, args, err := buildRevokeSessionQuery(r.db.builder, tokenID, expiresAt).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*revokedSessionRepository.Revoke").
			Str("token_id", tokenID).
			Msg("error revoking session")
		return r.db.execError(err)
	}

	return nil
}

func (r *revokedSessionRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	count, err := queryOne(ctx, r.db, buildIsRevokedQuery(r.db.builder, tokenID), func(row scanner) (int64, error) {
		var n int64
		err := row.Scan(&n)
		return n, err
	})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *revokedSessionRepository) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	q, args, err := buildPruneRevokedQuery(r.db.builder, now).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, r.db.execError(err)
	}

	pruned, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return pruned, nil
}
