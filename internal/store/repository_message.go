package store

import (
	"context"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/models"
	sq "github.com/Masterminds/squirrel"
)

// messageRepository is the SQL implementation of [MessageRepository] over
// the "messages" table.
type messageRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	created, err := queryOne(ctx, r.db, buildCreateMessageQuery(r.db.builder, message), scanMessage)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*messageRepository.CreateMessage").
			Bool("retryable", r.db.retryable(err)).
			Msg("error creating message")
		return models.Message{}, err
	}

	return created, nil
}

func (r *messageRepository) GetMessage(ctx context.Context, id int64) (models.Message, error) {
	query := r.db.builder.Select(messageColumns...).From(tableMessages).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, query, scanMessage)
}

func (r *messageRepository) ListMessages(ctx context.Context, filter models.MessageFilter) ([]models.Message, error) {
	messages, err := queryMany(ctx, r.db, buildListMessagesQuery(r.db.builder, filter), scanMessage)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*messageRepository.ListMessages").
			Str("status", string(filter.Status)).
			Msg("error listing messages")
		return nil, err
	}

	return messages, nil
}

// UpdateMessage overwrites the mutable columns of the message with
// message.ID. CreatedAt is never written.
func (r *messageRepository) UpdateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	return queryOne(ctx, r.db, buildUpdateMessageQuery(r.db.builder, message), scanMessage)
}

func (r *messageRepository) DeleteMessage(ctx context.Context, id int64) error {
	return r.db.execAffectingOne(ctx, buildDeleteByIDQuery(r.db.builder, tableMessages, id))
}
