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

type socialLinksService struct {
	socialLinksRepository store.SocialLinksRepository
	validator             validators.Validator
	now                   func() time.Time
}

func NewSocialLinksService(socialLinksRepository store.SocialLinksRepository) SocialLinksService {
	return &socialLinksService{
		socialLinksRepository: socialLinksRepository,
		validator:             validators.NewRecordValidator(),
		now:                   time.Now,
	}
}

func (s *socialLinksService) Get(ctx context.Context) (models.SocialLinks, error) {
	return s.socialLinksRepository.GetSocialLinks(ctx)
}

func (s *socialLinksService) GetEnabled(ctx context.Context) (models.SocialLinks, error) {
	links, err := s.socialLinksRepository.GetSocialLinks(ctx)
	if err != nil {
		return nil, err
	}
	return links.EnabledOnly(), nil
}

// Save replaces the stored links with links. Platforms missing from links
// are dropped.
func (s *socialLinksService) Save(ctx context.Context, links models.SocialLinks) (models.SocialLinks, error) {
	if links == nil {
		links = models.SocialLinks{}
	}

	if err := s.validator.Validate(ctx, links); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.socialLinksRepository.SaveSocialLinks(ctx, links, s.now().UTC()); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Int("platforms", len(links)).Msg("social links saved")
	return links, nil
}

type settingService struct {
	settingRepository store.SettingRepository
	validator         validators.Validator
	now               func() time.Time
}

func NewSettingService(settingRepository store.SettingRepository) SettingService {
	return &settingService{
		settingRepository: settingRepository,
		validator:         validators.NewRecordValidator(),
		now:               time.Now,
	}
}

func (s *settingService) List(ctx context.Context) ([]models.Setting, error) {
	return s.settingRepository.ListSettings(ctx)
}

func (s *settingService) Upsert(ctx context.Context, setting models.Setting) (models.Setting, error) {
	if err := s.validator.Validate(ctx, setting); err != nil {
		return models.Setting{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	setting.UpdatedAt = s.now().UTC()
	return s.settingRepository.UpsertSetting(ctx, setting)
}

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	now            func() time.Time
}

func NewUserService(userRepository store.UserRepository) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewRecordValidator(),
		now:            time.Now,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

// Create stores user. A taken email yields ErrAlreadyExists.
func (s *userService) Create(ctx context.Context, user models.User) (models.User, error) {
	user.ID = 0
	user.CreatedAt = s.now().UTC()

	if err := s.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, storeError(err)
	}
	return created, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return storeError(err)
	}
	return nil
}
