package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// RegisterBuyerInput defines the data required to register a new buyer.
type RegisterBuyerInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Address   string
}

// UpdateBuyerInput lists the editable profile fields. Nil fields are left untouched.
type UpdateBuyerInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
}

// BuyerUsecase defines account operations available to buyers.
type BuyerUsecase interface {
	Register(ctx context.Context, input RegisterBuyerInput) (*entity.Buyer, error)
	GetByID(ctx context.Context, id uint) (*entity.Buyer, error)
	Update(ctx context.Context, id uint, input UpdateBuyerInput) (*entity.Buyer, error)
	UpdateAvatar(ctx context.Context, id uint, image *ImageUpload) (*entity.Buyer, error)

	// ForgotPassword emails a password reset link to a registered address.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword sets a new password for the buyer named by a reset token.
	ResetPassword(ctx context.Context, token, password string) error
}
