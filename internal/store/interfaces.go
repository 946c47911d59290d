package store

import (
	"context"
	"time"

	"github.com/MKhiriev/skillvance-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists admin accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.AdminAccount) (models.AdminAccount, error)
	FindAccountByIdentifier(ctx context.Context, identifier string) (models.AdminAccount, error)
	FindAccountByID(ctx context.Context, id int64) (models.AdminAccount, error)
	// ListAccounts returns all accounts in insertion order.
	ListAccounts(ctx context.Context) ([]models.AdminAccount, error)
	UpdateIdentifier(ctx context.Context, id int64, identifier string) error
	UpdateSecretHash(ctx context.Context, id int64, secretHash string) error
}

// RevokedSessionRepository records the token IDs of sessions ended by logout.
type RevokedSessionRepository interface {
	// Revoke is idempotent: revoking the same token twice is not an error.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	// PruneExpired deletes revocations whose token expired at or before now.
	PruneExpired(ctx context.Context, now time.Time) (int64, error)
}

// MessageRepository persists contact-form messages.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
	GetMessage(ctx context.Context, id int64) (models.Message, error)
	// ListMessages returns messages newest first.
	ListMessages(ctx context.Context, filter models.MessageFilter) ([]models.Message, error)
	UpdateMessage(ctx context.Context, message models.Message) (models.Message, error)
	DeleteMessage(ctx context.Context, id int64) error
}

// InternshipRepository persists internship offers.
type InternshipRepository interface {
	CreateInternship(ctx context.Context, internship models.Internship) (models.Internship, error)
	GetInternship(ctx context.Context, id int64) (models.Internship, error)
	// ListInternships returns internships newest first.
	ListInternships(ctx context.Context, filter models.InternshipFilter) ([]models.Internship, error)
	UpdateInternship(ctx context.Context, internship models.Internship) (models.Internship, error)
	DeleteInternship(ctx context.Context, id int64) error
}

// CertificateRepository persists issued certificates.
type CertificateRepository interface {
	CreateCertificate(ctx context.Context, certificate models.Certificate) (models.Certificate, error)
	GetCertificate(ctx context.Context, id int64) (models.Certificate, error)
	// FindCertificateByCertID matches certID exactly, ignoring letter case.
	FindCertificateByCertID(ctx context.Context, certID string) (models.Certificate, error)
	// ListCertificates returns certificates newest first.
	ListCertificates(ctx context.Context) ([]models.Certificate, error)
	UpdateCertificate(ctx context.Context, certificate models.Certificate) (models.Certificate, error)
	DeleteCertificate(ctx context.Context, id int64) error
}

// SocialLinksRepository persists the social links singleton.
type SocialLinksRepository interface {
	// GetSocialLinks returns models.DefaultSocialLinks until links are saved.
	GetSocialLinks(ctx context.Context) (models.SocialLinks, error)
	// SaveSocialLinks replaces the stored links as a whole.
	SaveSocialLinks(ctx context.Context, links models.SocialLinks, updatedAt time.Time) error
}

// SettingRepository persists key/value site settings.
type SettingRepository interface {
	ListSettings(ctx context.Context) ([]models.Setting, error)
	// UpsertSetting inserts the setting or replaces the value of its key.
	UpsertSetting(ctx context.Context, setting models.Setting) (models.Setting, error)
}

// UserRepository persists registered student contacts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// ListUsers returns users newest first.
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
