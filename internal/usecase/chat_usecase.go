package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// ChatUsecase covers buyer-to-buyer conversations.
type ChatUsecase interface {
	// OpenChat returns the existing chat between the pair or creates one.
	OpenChat(ctx context.Context, userID, buyerID uint) (*entity.Chat, error)
	SendMessage(ctx context.Context, chatID, senderID uint, text string) (*entity.Message, error)
	ListMessages(ctx context.Context, chatID uint) ([]*entity.Message, error)
	ListChatsForBuyer(ctx context.Context, buyerID uint) ([]*entity.Chat, error)
}
