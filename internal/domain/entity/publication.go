package entity

import "time"

// Publication is a listing offered by a seller.
type Publication struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Brand         string    `json:"brand"`
	Price         float64   `json:"price"`
	State         string    `json:"state"`
	Sku           string    `json:"sku"`
	CategoryID    uint      `json:"category_id"`
	SubCategoryID uint      `json:"sub_category_id"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	CityID        uint      `json:"city_id"`
	SellerID      uint      `json:"seller_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Category    *Category    `json:"category,omitempty"`
	SubCategory *SubCategory `json:"sub_category,omitempty"`
	City        *City        `json:"city,omitempty"`
}

// PublicationPage is one page of publications plus the totals needed to render a pager.
type PublicationPage struct {
	Rows        []*Publication `json:"rows"`
	TotalPages  int            `json:"totalPages"`
	TotalItems  int64          `json:"totalItems"`
	CurrentPage int            `json:"currentPage"`
}
