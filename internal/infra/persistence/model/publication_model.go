package model

import "time"

// PublicationModel is the GORM-specific struct for the 'publications' table.
type PublicationModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	Title         string    `gorm:"type:varchar(150);not null"`
	Brand         string    `gorm:"type:varchar(100)"`
	Price         float64   `gorm:"type:decimal(12,2);not null"`
	State         string    `gorm:"type:varchar(50)"`
	Sku           string    `gorm:"type:varchar(100)"`
	CategoryID    uint      `gorm:"index"`
	SubCategoryID uint      `gorm:"index"`
	Description   string    `gorm:"type:text"`
	ImageURL      string    `gorm:"type:text"`
	CityID        uint      `gorm:"index"`
	SellerID      uint      `gorm:"not null;index"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	// Lookup references are optional and carry no FK constraint.
	Category    *CategoryModel    `gorm:"foreignKey:CategoryID;-:migration"`
	SubCategory *SubCategoryModel `gorm:"foreignKey:SubCategoryID;-:migration"`
	City        *CityModel        `gorm:"foreignKey:CityID;-:migration"`

	Seller *SellerModel `gorm:"foreignKey:SellerID"`
}

// TableName explicitly sets the table name for GORM.
func (PublicationModel) TableName() string {
	return "publications"
}

// OrderDetailModel is the GORM-specific struct for the 'order_details' table.
type OrderDetailModel struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"`
	PublicationID uint    `gorm:"not null;index"`
	BuyerID       uint    `gorm:"not null;index"`
	Quantity      int     `gorm:"not null;default:1"`
	UnitPrice     float64 `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time

	Publication *PublicationModel `gorm:"foreignKey:PublicationID"`
	Buyer       *BuyerModel       `gorm:"foreignKey:BuyerID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderDetailModel) TableName() string {
	return "order_details"
}
