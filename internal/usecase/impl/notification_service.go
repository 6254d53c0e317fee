// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

const (
	messageNotificationTitle  = "Nuevo/s Mensaje/s"
	purchaseNotificationTitle = "¡Compra exitosa!"
	saleNotificationTitle     = "¡Venta exitosa!"

	skipReasonUnreadExists = "unread_message_exists"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	chatRepo         repository.ChatRepository
	buyerRepo        repository.BuyerRepository
	sellerRepo       repository.SellerRepository
	publicationRepo  repository.PublicationRepository
	publisher        service.RealtimePublisher
	metrics          service.Metrics
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	ChatRepo         repository.ChatRepository
	BuyerRepo        repository.BuyerRepository
	SellerRepo       repository.SellerRepository
	PublicationRepo  repository.PublicationRepository
	Publisher        service.RealtimePublisher
	Metrics          service.Metrics
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		chatRepo:         params.ChatRepo,
		buyerRepo:        params.BuyerRepo,
		sellerRepo:       params.SellerRepo,
		publicationRepo:  params.PublicationRepo,
		publisher:        params.Publisher,
		metrics:          params.Metrics,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListForUser returns every notification addressed to userID, newest first.
func (srv *notificationService) ListForUser(ctx context.Context, userID uint) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.FindNotificationsByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list notifications", slog.Uint64("userID", uint64(userID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list notifications")
	}

	if notifications == nil {
		notifications = []*entity.Notification{}
	}

	return notifications, nil
}

// Delete removes a notification and returns the confirmation text.
func (srv *notificationService) Delete(ctx context.Context, notificationID uint) (string, error) {
	notification, err := srv.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return "", srv.mapNotFound(err, "failed to find notification")
	}

	if err := srv.notificationRepo.DeleteNotification(ctx, notificationID); err != nil {
		return "", srv.mapNotFound(err, "failed to delete notification")
	}

	srv.log(ctx).Info("Notification deleted", slog.Uint64("notificationID", uint64(notificationID)))

	return fmt.Sprintf("La notificación %s ha sido eliminada correctamente", notification.Title), nil
}

// MarkAsRead flags a notification as read. A read message notification no longer blocks new ones.
func (srv *notificationService) MarkAsRead(ctx context.Context, notificationID uint) error {
	if err := srv.notificationRepo.MarkNotificationAsRead(ctx, notificationID); err != nil {
		return srv.mapNotFound(err, "failed to mark notification as read")
	}

	return nil
}

// OnMessageSent creates at most one unread message notification per (recipient, sender).
func (srv *notificationService) OnMessageSent(ctx context.Context, message *entity.Message) (*entity.Notification, error) {
	chat, err := srv.chatRepo.FindChatByID(ctx, message.ChatID)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			srv.log(ctx).Error("Message references a missing chat", slog.Uint64("chatID", uint64(message.ChatID)))

			return nil, domainerrors.NewDataIntegrityError("chat", message.ChatID)
		}

		return nil, errors.Wrap(err, "failed to find chat")
	}

	recipientID := chat.Counterpart(message.SenderID)

	exists, err := srv.notificationRepo.ExistsUnreadMessageNotification(ctx, recipientID, message.SenderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing message notification")
	}
	if exists {
		srv.skip(ctx, recipientID, message.SenderID)

		return nil, nil
	}

	sender, err := srv.buyerRepo.FindBuyerByID(ctx, message.SenderID)
	if err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return nil, domainerrors.NewDataIntegrityError("buyer", message.SenderID)
		}

		return nil, errors.Wrap(err, "failed to find message sender")
	}

	senderID := message.SenderID
	notification := &entity.Notification{
		UserID:      recipientID,
		Title:       messageNotificationTitle,
		Description: fmt.Sprintf("Tienes mensajes nuevos de %s", sender.DisplayName()),
		Type:        entity.NotificationTypeMessage,
		SenderID:    &senderID,
	}

	created, err := srv.notificationRepo.CreateMessageNotificationIfAbsent(ctx, notification)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create message notification")
	}
	if !created {
		// Lost the race against a concurrent sender.
		srv.skip(ctx, recipientID, message.SenderID)

		return nil, nil
	}

	srv.metrics.NotificationCreated(string(notification.Type))
	srv.publish(ctx, notification)

	return notification, nil
}

// OnPurchaseCompleted notifies the purchaser and the seller's owning buyer.
func (srv *notificationService) OnPurchaseCompleted(ctx context.Context, buyerID, publicationID uint) ([]*entity.Notification, error) {
	publication, err := srv.publicationRepo.FindPublicationByID(ctx, publicationID)
	if err != nil {
		if errors.Is(err, repository.ErrPublicationNotFound) {
			return nil, domainerrors.NewDataIntegrityError("publication", publicationID)
		}

		return nil, errors.Wrap(err, "failed to find publication")
	}

	seller, err := srv.sellerRepo.FindSellerByID(ctx, publication.SellerID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.NewDataIntegrityError("seller", publication.SellerID)
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}

	buyer, err := srv.buyerRepo.FindBuyerByID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return nil, domainerrors.NewDataIntegrityError("buyer", buyerID)
		}

		return nil, errors.Wrap(err, "failed to find purchasing buyer")
	}

	notifications := []*entity.Notification{
		{
			UserID:      buyerID,
			Title:       purchaseNotificationTitle,
			Description: fmt.Sprintf("Compraste \"%s\"", publication.Title),
			Type:        entity.NotificationTypePurchaseDone,
		},
		{
			UserID:      seller.BuyerID,
			Title:       saleNotificationTitle,
			Description: fmt.Sprintf("%s compró \"%s\"", buyer.DisplayName(), publication.Title),
			Type:        entity.NotificationTypeSaleDone,
		},
	}

	for _, notification := range notifications {
		if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s notification", notification.Type)
		}
		srv.metrics.NotificationCreated(string(notification.Type))
	}

	for _, notification := range notifications {
		srv.publish(ctx, notification)
	}

	return notifications, nil
}

// publish pushes the notification to its recipient. Failures never reach the caller.
func (srv *notificationService) publish(ctx context.Context, notification *entity.Notification) {
	channelKey := strconv.FormatUint(uint64(notification.UserID), 10)

	if err := srv.publisher.Publish(ctx, channelKey, constants.RealtimeEventNotification, notification); err != nil {
		srv.metrics.RealtimePublishFailed(constants.RealtimeEventNotification)
		srv.log(ctx).Warn("Failed to publish notification",
			slog.Uint64("notificationID", uint64(notification.ID)),
			slog.String("channel", channelKey),
			slog.Any("error", err),
		)
	}
}

func (srv *notificationService) skip(ctx context.Context, recipientID, senderID uint) {
	srv.metrics.NotificationSkipped(skipReasonUnreadExists)
	srv.log(ctx).Debug("Unread message notification already exists",
		slog.Uint64("recipientID", uint64(recipientID)),
		slog.Uint64("senderID", uint64(senderID)),
	)
}

func (srv *notificationService) mapNotFound(err error, msg string) error {
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return errors.Wrap(domainerrors.ErrNotificationNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
