package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// OrderDetailRepository defines the interface for order line persistence.
type OrderDetailRepository interface {
	CreateOrderDetail(ctx context.Context, detail *entity.OrderDetail) error
	FindOrderDetailsByPublication(ctx context.Context, publicationID uint) ([]*entity.OrderDetail, error)
	DeleteOrderDetailsByPublication(ctx context.Context, publicationID uint) (int64, error)
	// DeleteOrderDetailsByBuyer removes the purchase lines where buyerID is the purchaser.
	DeleteOrderDetailsByBuyer(ctx context.Context, buyerID uint) (int64, error)
}
