package service

import (
	"context"
	"io"

	"github.com/MKhiriev/skillvance-api/internal/config"
	"github.com/MKhiriev/skillvance-api/models"
)

// AuthService is the credential service of the admin area.
type AuthService interface {
	// Login verifies creds and issues a session valid for [models.SessionLifetime].
	Login(ctx context.Context, creds models.Credentials) (models.LoginData, error)
	// ValidateSession resolves a session token to a live session.
	ValidateSession(ctx context.Context, token string) (models.Session, error)
	// Logout revokes the session. Revoking twice is not an error.
	Logout(ctx context.Context, session models.Session) error
	Account(ctx context.Context, id int64) (models.AdminAccount, error)
	// UpdateIdentifier renames the account and issues a session bound to the new identifier.
	UpdateIdentifier(ctx context.Context, oldIdentifier, newIdentifier string) (models.LoginData, error)
	UpdateSecret(ctx context.Context, identifier string, change models.SecretChange) error
	ListAccounts(ctx context.Context) ([]models.AdminAccount, error)
	EnsureDefaultAdmin(ctx context.Context, bootstrap config.Bootstrap) error
	// PruneRevokedSessions drops revocation records of sessions that have expired anyway.
	PruneRevokedSessions(ctx context.Context) (int64, error)
}

type MessageService interface {
	// Submit stores a contact-form message. Status is always forced to new.
	Submit(ctx context.Context, message models.Message) (models.Message, error)
	List(ctx context.Context, filter models.MessageFilter) ([]models.Message, error)
	Create(ctx context.Context, message models.Message) (models.Message, error)
	Update(ctx context.Context, id int64, update models.MessageUpdate) (models.Message, error)
	SetStatus(ctx context.Context, id int64, status models.MessageStatus) (models.Message, error)
	Delete(ctx context.Context, id int64) error
}

type InternshipService interface {
	// ListActive is the public listing: active internships, optionally of one category.
	ListActive(ctx context.Context, category models.Category) ([]models.Internship, error)
	List(ctx context.Context) ([]models.Internship, error)
	Create(ctx context.Context, internship models.Internship) (models.Internship, error)
	Update(ctx context.Context, id int64, update models.InternshipUpdate) (models.Internship, error)
	Delete(ctx context.Context, id int64) error
}

type CertificateService interface {
	// Verify looks a certificate up by its certificate id, ignoring case.
	Verify(ctx context.Context, certID string) (models.Certificate, error)
	List(ctx context.Context) ([]models.Certificate, error)
	Create(ctx context.Context, certificate models.Certificate) (models.Certificate, error)
	Update(ctx context.Context, id int64, update models.CertificateUpdate) (models.Certificate, error)
	Delete(ctx context.Context, id int64) error
}

type SocialLinksService interface {
	Get(ctx context.Context) (models.SocialLinks, error)
	// GetEnabled is the public view: only switched-on links.
	GetEnabled(ctx context.Context) (models.SocialLinks, error)
	// Save replaces all links.
	Save(ctx context.Context, links models.SocialLinks) (models.SocialLinks, error)
}

type SettingService interface {
	List(ctx context.Context) ([]models.Setting, error)
	Upsert(ctx context.Context, setting models.Setting) (models.Setting, error)
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// ExportService renders record collections as CSV.
type ExportService interface {
	ExportMessages(ctx context.Context, w io.Writer) error
	ExportCertificates(ctx context.Context, w io.Writer) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}
