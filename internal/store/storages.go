package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/skillvance-api/internal/config"
	"github.com/MKhiriev/skillvance-api/internal/logger"
)

// Storages aggregates every repository of the record store over one
// connection pool.
type Storages struct {
	AccountRepository        AccountRepository
	RevokedSessionRepository RevokedSessionRepository
	MessageRepository        MessageRepository
	InternshipRepository     InternshipRepository
	CertificateRepository    CertificateRepository
	SocialLinksRepository    SocialLinksRepository
	SettingRepository        SettingRepository
	UserRepository           UserRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	site := newSiteRepository(db, logger)

	return &Storages{
		AccountRepository:        NewAccountRepository(db, logger),
		RevokedSessionRepository: NewRevokedSessionRepository(db, logger),
		MessageRepository:        NewMessageRepository(db, logger),
		InternshipRepository:     NewInternshipRepository(db, logger),
		CertificateRepository:    NewCertificateRepository(db, logger),
		SocialLinksRepository:    site,
		SettingRepository:        site,
		UserRepository:           site,
		db:                       db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
