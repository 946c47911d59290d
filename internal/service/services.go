package service

import (
	"github.com/MKhiriev/skillvance-api/internal/config"
	"github.com/MKhiriev/skillvance-api/internal/crypto"
	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/store"
	"github.com/MKhiriev/skillvance-api/models"
)

type Services struct {
	AuthService        AuthService
	MessageService     MessageService
	InternshipService  InternshipService
	CertificateService CertificateService
	SocialLinksService SocialLinksService
	SettingService     SettingService
	UserService        UserService
	ExportService      ExportService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(
			storages.AccountRepository,
			storages.RevokedSessionRepository,
			crypto.NewArgon2Hasher(crypto.DefaultArgon2Params),
			cfg.App,
			logger,
		),
		MessageService:     NewMessageService(storages.MessageRepository, logger),
		InternshipService:  NewInternshipService(storages.InternshipRepository, logger),
		CertificateService: NewCertificateService(storages.CertificateRepository, logger),
		SocialLinksService: NewSocialLinksService(storages.SocialLinksRepository),
		SettingService:     NewSettingService(storages.SettingRepository),
		UserService:        NewUserService(storages.UserRepository),
		ExportService:      NewExportService(storages.MessageRepository, storages.CertificateRepository),
		AppInfoService:     appInfoService,
	}, nil
}
