package store

import (
	"context"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/models"
	sq "github.com/Masterminds/squirrel"
)

// certificateRepository is the SQL implementation of [CertificateRepository]
// over the "certificates" table. A unique index on UPPER(cert_id) keeps
// certificate ids unique regardless of case.
type certificateRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCertificateRepository(db *DB, logger *logger.Logger) CertificateRepository {
	logger.Debug().Msg("creating certificate repository")
	return &certificateRepository{
		db:     db,
		logger: logger,
	}
}

func (r *certificateRepository) CreateCertificate(ctx context.Context, certificate models.Certificate) (models.Certificate, error) {
	created, err := queryOne(ctx, r.db, buildCreateCertificateQuery(r.db.builder, certificate), scanCertificate)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*certificateRepository.CreateCertificate").
			Str("cert_id", certificate.CertID).
			Msg("error creating certificate")
		return models.Certificate{}, err
	}

	return created, nil
}

func (r *certificateRepository) GetCertificate(ctx context.Context, id int64) (models.Certificate, error) {
	query := r.db.builder.Select(certificateColumns...).From(tableCertificates).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, query, scanCertificate)
}

func (r *certificateRepository) FindCertificateByCertID(ctx context.Context, certID string) (models.Certificate, error) {
	return queryOne(ctx, r.db, buildFindCertificateByCertIDQuery(r.db.builder, certID), scanCertificate)
}

func (r *certificateRepository) ListCertificates(ctx context.Context) ([]models.Certificate, error) {
	return queryMany(ctx, r.db, buildListCertificatesQuery(r.db.builder), scanCertificate)
}

func (r *certificateRepository) UpdateCertificate(ctx context.Context, certificate models.Certificate) (models.Certificate, error) {
	return queryOne(ctx, r.db, buildUpdateCertificateQuery(r.db.builder, certificate), scanCertificate)
}

func (r *certificateRepository) DeleteCertificate(ctx context.Context, id int64) error {
	return r.db.execAffectingOne(ctx, buildDeleteByIDQuery(r.db.builder, tableCertificates, id))
}
