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

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func (repo *chatRepository) CreateChat(ctx context.Context, chat *entity.Chat) error {
	chatM := &model.ChatModel{UserID: chat.UserID, BuyerID: chat.BuyerID, CreatedAt: chat.CreatedAt}

	if err := repo.db.WithContext(ctx).Create(chatM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBuyerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat")
	}

	chat.ID = chatM.ID
	chat.CreatedAt = chatM.CreatedAt

	return nil
}

func (repo *chatRepository) FindChatByID(ctx context.Context, id uint) (*entity.Chat, error) {
	var chatM model.ChatModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&chatM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChatNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat by ID")
	}

	return toChatDomain(&chatM), nil
}

// FindChatBetween returns the chat between a and b regardless of role.
func (repo *chatRepository) FindChatBetween(ctx context.Context, a, b uint) (*entity.Chat, error) {
	var chatM model.ChatModel

	if err := repo.db.WithContext(ctx).
		Where("(user_id = ? AND buyer_id = ?) OR (user_id = ? AND buyer_id = ?)", a, b, b, a).
		Order("id ASC").
		First(&chatM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChatNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat between participants")
	}

	return toChatDomain(&chatM), nil
}

func (repo *chatRepository) FindChatsByParticipant(ctx context.Context, id uint) ([]*entity.Chat, error) {
	var chatModels []*model.ChatModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? OR buyer_id = ?", id, id).
		Order("id ASC").
		Find(&chatModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find chats by participant")
	}

	chats := make([]*entity.Chat, 0, len(chatModels))
	for _, chatM := range chatModels {
		chats = append(chats, toChatDomain(chatM))
	}

	return chats, nil
}

func (repo *chatRepository) DeleteChatsByParticipant(ctx context.Context, id uint) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? OR buyer_id = ?", id, id).
		Delete(&model.ChatModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete chats by participant")
	}

	return result.RowsAffected, nil
}

func toChatDomain(data *model.ChatModel) *entity.Chat {
	if data == nil {
		return nil
	}

	return &entity.Chat{
		ID:        data.ID,
		UserID:    data.UserID,
		BuyerID:   data.BuyerID,
		CreatedAt: data.CreatedAt,
	}
}
