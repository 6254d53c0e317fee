package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a notification unconditionally.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// CreateMessageNotificationIfAbsent inserts a "mensaje" notification unless an unread one already
	// exists for the same (recipient, sender). It reports whether a row was inserted.
	CreateMessageNotificationIfAbsent(ctx context.Context, notification *entity.Notification) (bool, error)

	// ExistsUnreadMessageNotification reports whether recipient has an unread "mensaje" notification from sender.
	ExistsUnreadMessageNotification(ctx context.Context, recipientID, senderID uint) (bool, error)

	FindNotificationByID(ctx context.Context, id uint) (*entity.Notification, error)

	// FindNotificationsByUser returns the recipient's notifications, newest first.
	FindNotificationsByUser(ctx context.Context, userID uint) ([]*entity.Notification, error)

	MarkNotificationAsRead(ctx context.Context, id uint) error
	DeleteNotification(ctx context.Context, id uint) error
	DeleteNotificationsByUser(ctx context.Context, userID uint) (int64, error)
}
