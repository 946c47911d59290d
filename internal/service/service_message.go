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

type messageService struct {
	messageRepository store.MessageRepository
	validator         validators.Validator
	now               func() time.Time

	logger *logger.Logger
}

func NewMessageService(messageRepository store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		validator:         validators.NewRecordValidator(),
		now:               time.Now,
		logger:            logger,
	}
}

func (s *messageService) Submit(ctx context.Context, message models.Message) (models.Message, error) {
	message.Status = models.MessageStatusNew
	return s.Create(ctx, message)
}

// Create stores a message with a server-assigned id and creation time.
// An empty status defaults to new.
func (s *messageService) Create(ctx context.Context, message models.Message) (models.Message, error) {
	message.ID = 0
	message.CreatedAt = s.now().UTC()
	if message.Status == "" {
		message.Status = models.MessageStatusNew
	}

	if err := s.validator.Validate(ctx, message); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.messageRepository.CreateMessage(ctx, message)
	if err != nil {
		return models.Message{}, storeError(err)
	}

	logger.FromContext(ctx).Info().Int64("message_id", created.ID).Msg("message received")
	return created, nil
}

func (s *messageService) List(ctx context.Context, filter models.MessageFilter) ([]models.Message, error) {
	if filter.Status != "" {
		if err := s.validator.Validate(ctx, filter.Status); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	messages, err := s.messageRepository.ListMessages(ctx, filter)
	if err != nil {
		return nil, storeError(err)
	}
	return messages, nil
}

// Update merges update onto the stored message. Id and creation time never change.
func (s *messageService) Update(ctx context.Context, id int64, update models.MessageUpdate) (models.Message, error) {
	message, err := s.messageRepository.GetMessage(ctx, id)
	if err != nil {
		return models.Message{}, storeError(err)
	}

	update.Apply(&message)

	if err := s.validator.Validate(ctx, message); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := s.messageRepository.UpdateMessage(ctx, message)
	if err != nil {
		return models.Message{}, storeError(err)
	}
	return updated, nil
}

// SetStatus moves the message to status. Any status may follow any other.
func (s *messageService) SetStatus(ctx context.Context, id int64, status models.MessageStatus) (models.Message, error) {
	if err := s.validator.Validate(ctx, status); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return s.Update(ctx, id, models.MessageUpdate{Status: &status})
}

func (s *messageService) Delete(ctx context.Context, id int64) error {
	if err := s.messageRepository.DeleteMessage(ctx, id); err != nil {
		return storeError(err)
	}
	return nil
}
