package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/models"
)

// siteRepository implements [SocialLinksRepository], [SettingRepository] and
// [UserRepository]: the small site-configuration tables.
type siteRepository struct {
	db     *DB
	logger *logger.Logger
}

func newSiteRepository(db *DB, logger *logger.Logger) *siteRepository {
	logger.Debug().Msg("creating site repository")
	return &siteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *siteRepository) GetSocialLinks(ctx context.Context) (models.SocialLinks, error) {
	raw, err := queryOne(ctx, r.db, buildGetSocialLinksQuery(r.db.builder), func(row scanner) (string, error) {
		var links string
		err := row.Scan(&links)
		return links, err
	})
	if errors.Is(err, ErrNotFound) {
		return models.DefaultSocialLinks(), nil
	}
	if err != nil {
		return nil, err
	}

	links := models.SocialLinks{}
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	return links, nil
}

func (r *siteRepository) SaveSocialLinks(ctx context.Context, links models.SocialLinks, updatedAt time.Time) error {
	query, err := buildSaveSocialLinksQuery(r.db.builder, links, updatedAt)
	if err != nil {
		return err
	}

	q, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*siteRepository.SaveSocialLinks").Msg("error saving social links")
		return r.db.execError(err)
	}

	return nil
}

func (r *siteRepository) ListSettings(ctx context.Context) ([]models.Setting, error) {
	return queryMany(ctx, r.db, buildListSettingsQuery(r.db.builder), scanSetting)
}

func (r *siteRepository) UpsertSetting(ctx context.Context, setting models.Setting) (models.Setting, error) {
	return queryOne(ctx, r.db, buildUpsertSettingQuery(r.db.builder, setting), scanSetting)
}

func (r *siteRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	created, err := queryOne(ctx, r.db, buildCreateUserQuery(r.db.builder, user), scanUser)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*siteRepository.CreateUser").
			Str("email", user.Email).
			Msg("error creating user")
		return models.User{}, err
	}

	return created, nil
}

func (r *siteRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return queryMany(ctx, r.db, buildListUsersQuery(r.db.builder), scanUser)
}

func (r *siteRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.db.execAffectingOne(ctx, buildDeleteByIDQuery(r.db.builder, tableUsers, id))
}
