// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Buyer is a registered marketplace account. Every account starts as a buyer and may be promoted to a seller.
type Buyer struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	AvatarURL    string    `json:"avatar_url"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName returns the name shown to other users.
func (b *Buyer) DisplayName() string {
	return strings.TrimSpace(b.FirstName + " " + b.LastName)
}

// BuyerProfile holds the mutable profile fields of a buyer. Nil fields are left untouched.
type BuyerProfile struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	AvatarURL *string
}
