package entity

import "time"

// Chat is a conversation between two buyers. UserID is the participant who opened it.
type Chat struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	BuyerID   uint      `json:"buyer_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HasParticipant reports whether id takes part in the chat.
func (c *Chat) HasParticipant(id uint) bool {
	return c.UserID == id || c.BuyerID == id
}

// Counterpart returns the participant that is not id.
func (c *Chat) Counterpart(id uint) uint {
	if c.UserID == id {
		return c.BuyerID
	}

	return c.UserID
}

// Message is a single chat line.
type Message struct {
	ID       uint      `json:"id"`
	ChatID   uint      `json:"chat_id"`
	SenderID uint      `json:"sender_id"`
	Text     string    `json:"text"`
	Time     time.Time `json:"time"`
}
