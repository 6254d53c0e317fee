// Package model contains the GORM table mappings.
package model

import "time"

// BuyerModel is the GORM-specific struct for the 'buyers' table.
type BuyerModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null;default:''"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:idx_buyers_email"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	AvatarURL    string `gorm:"type:text"`
	Phone        string `gorm:"type:varchar(50)"`
	Address      string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Notifications []NotificationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BuyerModel) TableName() string {
	return "buyers"
}

// SellerModel is the GORM-specific struct for the 'sellers' table.
type SellerModel struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	BuyerID          uint      `gorm:"not null;uniqueIndex:idx_sellers_buyer_id"`
	RegistrationDate time.Time `gorm:"not null"`
	QuantitySales    int       `gorm:"not null;default:0"`

	Buyer *BuyerModel `gorm:"foreignKey:BuyerID"`
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
