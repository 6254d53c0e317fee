package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// CompletePurchaseInput defines a purchase of one publication.
type CompletePurchaseInput struct {
	BuyerID       uint
	PublicationID uint
	Quantity      int
}

// PurchaseUsecase records completed purchases.
type PurchaseUsecase interface {
	Complete(ctx context.Context, input CompletePurchaseInput) (*entity.OrderDetail, error)
}
