package entity

import "time"

// NotificationType enumerates the kinds of notification a buyer can receive.
type NotificationType string

const (
	NotificationTypeMessage      NotificationType = "mensaje"
	NotificationTypePurchaseDone NotificationType = "compraExitosa"
	NotificationTypeSaleDone     NotificationType = "ventaExitosa"
)

// IsValid reports whether t is a known notification type.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeMessage, NotificationTypePurchaseDone, NotificationTypeSaleDone:
		return true
	default:
		return false
	}
}

// Notification is an in-app notice addressed to a buyer.
type Notification struct {
	ID          uint             `json:"id"`
	UserID      uint             `json:"userId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        NotificationType `json:"type"`
	SenderID    *uint            `json:"senderId"`
	CreatedAt   time.Time        `json:"createdAt"`
	IsRead      bool             `json:"isRead"`
}
