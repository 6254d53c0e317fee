package entity

import "time"

// Seller is the selling profile of a buyer. A buyer owns at most one.
type Seller struct {
	ID               uint      `json:"id"`
	BuyerID          uint      `json:"buyer_id"`
	RegistrationDate time.Time `json:"registration_date"`
	QuantitySales    int       `json:"quantity_sales"`
}
