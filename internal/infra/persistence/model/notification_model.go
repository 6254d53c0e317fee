package model

import "time"

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// idx_notifications_unread_message keeps a single unread "mensaje" row per (recipient, sender).
type NotificationModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	UserID      uint      `gorm:"not null;index;uniqueIndex:idx_notifications_unread_message,where:type = 'mensaje' AND is_read = false"`
	Title       *string   `gorm:"type:varchar(50)"`
	Description string    `gorm:"type:text;not null"`
	Type        string    `gorm:"type:varchar(20);not null"`
	SenderID    *uint     `gorm:"uniqueIndex:idx_notifications_unread_message"`
	CreatedAt   time.Time `gorm:"not null"`
	IsRead      bool      `gorm:"not null;default:false"`

	// Notifications outlive their sender; the reference is cleared instead.
	Sender *BuyerModel `gorm:"foreignKey:SenderID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
