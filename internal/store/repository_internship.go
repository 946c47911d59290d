package store

import (
	"context"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/models"
	sq "github.com/Masterminds/squirrel"
)

// internshipRepository is the SQL implementation of [InternshipRepository]
// over the "internships" table. Skills are stored as a JSON array.
type internshipRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewInternshipRepository(db *DB, logger *logger.Logger) InternshipRepository {
	logger.Debug().Msg("creating internship repository")
	return &internshipRepository{
		db:     db,
		logger: logger,
	}
}

func (r *internshipRepository) CreateInternship(ctx context.Context, internship models.Internship) (models.Internship, error) {
	query, err := buildCreateInternshipQuery(r.db.builder, internship)
	if err != nil {
		return models.Internship{}, err
	}

	created, err := queryOne(ctx, r.db, query, scanInternship)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*internshipRepository.CreateInternship").
			Str("title", internship.Title).
			Msg("error creating internship")
		return models.Internship{}, err
	}

	return created, nil
}

func (r *internshipRepository) GetInternship(ctx context.Context, id int64) (models.Internship, error) {
	query := r.db.builder.Select(internshipColumns...).From(tableInternships).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, query, scanInternship)
}

func (r *internshipRepository) ListInternships(ctx context.Context, filter models.InternshipFilter) ([]models.Internship, error) {
	internships, err := queryMany(ctx, r.db, buildListInternshipsQuery(r.db.builder, filter), scanInternship)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*internshipRepository.ListInternships").
			Bool("active_only", filter.ActiveOnly).
			Str("category", string(filter.Category)).
			Msg("error listing internships")
		return nil, err
	}

	return internships, nil
}

func (r *internshipRepository) UpdateInternship(ctx context.Context, internship models.Internship) (models.Internship, error) {
	query, err := buildUpdateInternshipQuery(r.db.builder, internship)
	if err != nil {
		return models.Internship{}, err
	}

	return queryOne(ctx, r.db, query, scanInternship)
}

func (r *internshipRepository) DeleteInternship(ctx context.Context, id int64) error {
	return r.db.execAffectingOne(ctx, buildDeleteByIDQuery(r.db.builder, tableInternships, id))
}
