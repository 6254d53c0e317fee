package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// AccountUsecase manages the buyer/seller lifecycle.
type AccountUsecase interface {
	PromoteToSeller(ctx context.Context, buyerID uint) (*entity.Seller, error)

	// RemoveBuyerCascade deletes the buyer with everything that references it and returns the deleted record.
	RemoveBuyerCascade(ctx context.Context, buyerID uint) (*entity.Buyer, error)

	// RemoveSellerOnly deletes the seller profile, its publications and their order lines.
	RemoveSellerOnly(ctx context.Context, buyerID uint) (*entity.Buyer, error)
}
