package entity

import "time"

// OrderDetail is a purchased line item tied to a publication.
type OrderDetail struct {
	ID            uint      `json:"id"`
	PublicationID uint      `json:"publication_id"`
	BuyerID       uint      `json:"buyer_id"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	CreatedAt     time.Time `json:"created_at"`
}
