package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

var (
	// ErrSellerNotFound is returned when a seller is not found.
	ErrSellerNotFound = errors.New("seller not found")
	// ErrSellerAlreadyExists is returned when the buyer already owns a seller profile.
	ErrSellerAlreadyExists = errors.New("seller already exists for buyer")
)

// SellerRepository defines the interface for seller-related database operations.
type SellerRepository interface {
	CreateSeller(ctx context.Context, seller *entity.Seller) error
	FindSellerByID(ctx context.Context, id uint) (*entity.Seller, error)
	FindSellerByBuyerID(ctx context.Context, buyerID uint) (*entity.Seller, error)

	// IncrementSales adds quantity to the seller's sales counter.
	IncrementSales(ctx context.Context, sellerID uint, quantity int) error

	DeleteSeller(ctx context.Context, id uint) error
}
