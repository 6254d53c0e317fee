package model

import "time"

// ChatModel is the GORM-specific struct for the 'chats' table.
type ChatModel struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	UserID    uint `gorm:"not null;index"`
	BuyerID   uint `gorm:"not null;index"`
	CreatedAt time.Time

	// Both participants must exist; the buyer cascade removes chats before the buyer row.
	User  *BuyerModel `gorm:"foreignKey:UserID"`
	Buyer *BuyerModel `gorm:"foreignKey:BuyerID"`
}

// TableName explicitly sets the table name for GORM.
func (ChatModel) TableName() string {
	return "chats"
}

// MessageModel is the GORM-specific struct for the 'messages' table.
type MessageModel struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	ChatID   uint      `gorm:"not null;index"`
	SenderID uint      `gorm:"not null;index"`
	Text     string    `gorm:"type:text;not null"`
	Time     time.Time `gorm:"not null"`

	Chat   *ChatModel  `gorm:"foreignKey:ChatID"`
	Sender *BuyerModel `gorm:"foreignKey:SenderID"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
