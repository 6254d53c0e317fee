package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	chatRepo      repository.ChatRepository
	messageRepo   repository.MessageRepository
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
	now           func() time.Time
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo      repository.ChatRepository
	MessageRepo   repository.MessageRepository
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewChatService creates a new chat service.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo:      params.ChatRepo,
		messageRepo:   params.MessageRepo,
		notifications: params.Notifications,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OpenChat returns the chat between the two buyers, creating it on first contact.
func (srv *chatService) OpenChat(ctx context.Context, userID, buyerID uint) (*entity.Chat, error) {
	if userID == buyerID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cannot open a chat with yourself")
	}

	chat, err := srv.chatRepo.FindChatBetween(ctx, userID, buyerID)
	if err == nil {
		return chat, nil
	}
	if !errors.Is(err, repository.ErrChatNotFound) {
		return nil, errors.Wrap(err, "failed to find chat")
	}

	chat = &entity.Chat{UserID: userID, BuyerID: buyerID, CreatedAt: srv.now()}
	if err := srv.chatRepo.CreateChat(ctx, chat); err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBuyerNotFound, "chat participant not found")
		}

		return nil, errors.Wrap(err, "failed to create chat")
	}

	srv.log(ctx).Info("Chat opened", slog.Uint64("chatID", uint64(chat.ID)))

	return chat, nil
}

// SendMessage stores a message and notifies the other participant. A notification failure
// does not undo the message.
func (srv *chatService) SendMessage(ctx context.Context, chatID, senderID uint, text string) (*entity.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message text is required")
	}

	chat, err := srv.findChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(senderID) {
		return nil, domainerrors.ErrNotChatParticipant
	}

	message := &entity.Message{
		ChatID:   chatID,
		SenderID: senderID,
		Text:     text,
		Time:     srv.now(),
	}
	if err := srv.messageRepo.CreateMessage(ctx, message); err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChatNotFound, "chat removed before the message was stored")
		}

		return nil, errors.Wrap(err, "failed to create message")
	}

	if _, err := srv.notifications.OnMessageSent(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to notify message recipient",
			slog.Uint64("chatID", uint64(chatID)),
			slog.Uint64("messageID", uint64(message.ID)),
			slog.Any("error", err),
		)
	}

	return message, nil
}

// ListMessages returns the chat history, oldest first.
func (srv *chatService) ListMessages(ctx context.Context, chatID uint) ([]*entity.Message, error) {
	if _, err := srv.findChat(ctx, chatID); err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.FindMessagesByChat(ctx, chatID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}
	if messages == nil {
		messages = []*entity.Message{}
	}

	return messages, nil
}

func (srv *chatService) ListChatsForBuyer(ctx context.Context, buyerID uint) ([]*entity.Chat, error) {
	chats, err := srv.chatRepo.FindChatsByParticipant(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chats")
	}
	if chats == nil {
		chats = []*entity.Chat{}
	}

	return chats, nil
}

func (srv *chatService) findChat(ctx context.Context, chatID uint) (*entity.Chat, error) {
	chat, err := srv.chatRepo.FindChatByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChatNotFound, "chat not found")
		}

		return nil, errors.Wrap(err, "failed to find chat")
	}

	return chat, nil
}
