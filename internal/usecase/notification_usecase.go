package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// NotificationUsecase creates, lists and removes in-app notifications.
type NotificationUsecase interface {
	// ListForUser returns the recipient's notifications, newest first. An empty list is not an error.
	ListForUser(ctx context.Context, userID uint) ([]*entity.Notification, error)

	// Delete removes a notification and returns the confirmation message shown to the user.
	Delete(ctx context.Context, notificationID uint) (string, error)

	MarkAsRead(ctx context.Context, notificationID uint) error

	// OnMessageSent notifies the other chat participant. It returns nil when an unread
	// message notification from the same sender already exists.
	OnMessageSent(ctx context.Context, message *entity.Message) (*entity.Notification, error)

	// OnPurchaseCompleted notifies both the purchaser and the seller's account.
	OnPurchaseCompleted(ctx context.Context, buyerID, publicationID uint) ([]*entity.Notification, error)
}
