package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/store"
	"github.com/MKhiriev/skillvance-api/internal/validators"
	"github.com/MKhiriev/skillvance-api/models"
)

type internshipService struct {
	internshipRepository store.InternshipRepository
	validator            validators.Validator
	now                  func() time.Time

	logger *logger.Logger
}

func NewInternshipService(internshipRepository store.InternshipRepository, logger *logger.Logger) InternshipService {
	return &internshipService{
		internshipRepository: internshipRepository,
		validator:            validators.NewRecordValidator(),
		now:                  time.Now,
		logger:               logger,
	}
}

// ListActive returns active internships, newest first. An empty category
// means every category.
func (s *internshipService) ListActive(ctx context.Context, category models.Category) ([]models.Internship, error) {
	return s.list(ctx, models.InternshipFilter{ActiveOnly: true, Category: category})
}

func (s *internshipService) List(ctx context.Context) ([]models.Internship, error) {
	return s.list(ctx, models.InternshipFilter{})
}

func (s *internshipService) list(ctx context.Context, filter models.InternshipFilter) ([]models.Internship, error) {
	internships, err := s.internshipRepository.ListInternships(ctx, filter)
	if err != nil {
		return nil, storeError(err)
	}
	return internships, nil
}

func (s *internshipService) Create(ctx context.Context, internship models.Internship) (models.Internship, error) {
	internship.ID = 0
	internship.CreatedAt = s.now().UTC()
	if internship.Skills == nil {
		internship.Skills = []string{}
	}

	if err := s.validator.Validate(ctx, internship); err != nil {
		return models.Internship{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.internshipRepository.CreateInternship(ctx, internship)
	if err != nil {
		return models.Internship{}, storeError(err)
	}

	logger.FromContext(ctx).Info().Int64("internship_id", created.ID).Str("category", string(created.Category)).Msg("internship created")
	return created, nil
}

func (s *internshipService) Update(ctx context.Context, id int64, update models.InternshipUpdate) (models.Internship, error) {
	internship, err := s.internshipRepository.GetInternship(ctx, id)
	if err != nil {
		return models.Internship{}, storeError(err)
	}

	update.Apply(&internship)

	if err := s.validator.Validate(ctx, internship); err != nil {
		return models.Internship{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := s.internshipRepository.UpdateInternship(ctx, internship)
	if err != nil {
		return models.Internship{}, storeError(err)
	}
	return updated, nil
}

func (s *internshipService) Delete(ctx context.Context, id int64) error {
	if err := s.internshipRepository.DeleteInternship(ctx, id); err != nil {
		return storeError(err)
	}
	return nil
}
