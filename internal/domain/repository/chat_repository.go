package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

// ErrChatNotFound is returned when a chat is not found.
var ErrChatNotFound = errors.New("chat not found")

// ChatRepository defines the interface for chat persistence.
type ChatRepository interface {
	CreateChat(ctx context.Context, chat *entity.Chat) error
	FindChatByID(ctx context.Context, id uint) (*entity.Chat, error)

	// FindChatBetween returns the chat between a and b regardless of role.
	FindChatBetween(ctx context.Context, a, b uint) (*entity.Chat, error)

	// FindChatsByParticipant returns every chat where id appears in either role.
	FindChatsByParticipant(ctx context.Context, id uint) ([]*entity.Chat, error)

	// DeleteChatsByParticipant removes every chat where id appears in either role.
	DeleteChatsByParticipant(ctx context.Context, id uint) (int64, error)
}

// MessageRepository defines the interface for chat message persistence.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message *entity.Message) error
	FindMessagesByChat(ctx context.Context, chatID uint) ([]*entity.Message, error)
	DeleteMessagesBySender(ctx context.Context, senderID uint) (int64, error)
	DeleteMessagesByChats(ctx context.Context, chatIDs []uint) (int64, error)
}
