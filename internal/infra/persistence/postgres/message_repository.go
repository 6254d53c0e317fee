package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (repo *messageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := &model.MessageModel{
		ChatID:   message.ChatID,
		SenderID: message.SenderID,
		Text:     message.Text,
		Time:     message.Time,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrChatNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID

	return nil
}

func (repo *messageRepository) FindMessagesByChat(ctx context.Context, chatID uint) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("time ASC").
		Order("id ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by chat")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, m := range messageModels {
		messages = append(messages, &entity.Message{
			ID:       m.ID,
			ChatID:   m.ChatID,
			SenderID: m.SenderID,
			Text:     m.Text,
			Time:     m.Time,
		})
	}

	return messages, nil
}

func (repo *messageRepository) DeleteMessagesBySender(ctx context.Context, senderID uint) (int64, error) {
	result := repo.db.WithContext(ctx).Where("sender_id = ?", senderID).Delete(&model.MessageModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete messages by sender")
	}

	return result.RowsAffected, nil
}

func (repo *messageRepository) DeleteMessagesByChats(ctx context.Context, chatIDs []uint) (int64, error) {
	if len(chatIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).Where("chat_id IN ?", chatIDs).Delete(&model.MessageModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete messages by chats")
	}

	return result.RowsAffected, nil
}
