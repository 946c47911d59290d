package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/store"
	"github.com/MKhiriev/skillvance-api/internal/validators"
	"github.com/MKhiriev/skillvance-api/models"
)

type certificateService struct {
	certificateRepository store.CertificateRepository
	validator             validators.Validator
	now                   func() time.Time

	logger *logger.Logger
}

func NewCertificateService(certificateRepository store.CertificateRepository, logger *logger.Logger) CertificateService {
	return &certificateService{
		certificateRepository: certificateRepository,
		validator:             validators.NewRecordValidator(),
		now:                   time.Now,
		logger:                logger,
	}
}

// Verify finds the certificate whose id equals certID ignoring case.
// There is no partial matching. An id longer than any stored one is simply
// not found.
func (s *certificateService) Verify(ctx context.Context, certID string) (models.Certificate, error) {
	certID = strings.TrimSpace(certID)
	if certID == "" {
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyCertID)
	}

	certificate, err := s.certificateRepository.FindCertificateByCertID(ctx, certID)
	if err != nil {
		return models.Certificate{}, storeError(err)
	}
	return certificate, nil
}

func (s *certificateService) List(ctx context.Context) ([]models.Certificate, error) {
	certificates, err := s.certificateRepository.ListCertificates(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return certificates, nil
}

// Create stores certificate. A certificate id already in use in any letter
// case yields ErrAlreadyExists.
func (s *certificateService) Create(ctx context.Context, certificate models.Certificate) (models.Certificate, error) {
	certificate.ID = 0
	certificate.CertID = strings.TrimSpace(certificate.CertID)
	certificate.CreatedAt = s.now().UTC()

	if err := s.validator.Validate(ctx, certificate); err != nil {
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.certificateRepository.CreateCertificate(ctx, certificate)
	if err != nil {
		return models.Certificate{}, storeError(err)
	}

	logger.FromContext(ctx).Info().Str("cert_id", created.CertID).Msg("certificate issued")
	return created, nil
}

func (s *certificateService) Update(ctx context.Context, id int64, update models.CertificateUpdate) (models.Certificate, error) {
	certificate, err := s.certificateRepository.GetCertificate(ctx, id)
	if err != nil {
		return models.Certificate{}, storeError(err)
	}

	update.Apply(&certificate)
	certificate.CertID = strings.TrimSpace(certificate.CertID)

	if err := s.validator.Validate(ctx, certificate); err != nil {
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := s.certificateRepository.UpdateCertificate(ctx, certificate)
	if err != nil {
		return models.Certificate{}, storeError(err)
	}
	return updated, nil
}

func (s *certificateService) Delete(ctx context.Context, id int64) error {
	if err := s.certificateRepository.DeleteCertificate(ctx, id); err != nil {
		return storeError(err)
	}
	return nil
}
