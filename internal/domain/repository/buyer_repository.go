// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

var (
	// ErrBuyerNotFound is returned when a buyer is not found.
	ErrBuyerNotFound = errors.New("buyer not found")
	// ErrBuyerEmailExists is returned when the email is already taken by another buyer.
	ErrBuyerEmailExists = errors.New("buyer email already exists")
)

// BuyerRepository defines the interface for buyer-related database operations.
type BuyerRepository interface {
	// CreateBuyer persists a new buyer and fills in generated fields.
	CreateBuyer(ctx context.Context, buyer *entity.Buyer) error

	// FindBuyerByID retrieves a buyer by its ID.
	FindBuyerByID(ctx context.Context, id uint) (*entity.Buyer, error)

	// FindBuyerByEmail retrieves a buyer by email.
	FindBuyerByEmail(ctx context.Context, email string) (*entity.Buyer, error)

	// UpdateBuyerProfile applies the non-nil profile fields.
	UpdateBuyerProfile(ctx context.Context, id uint, profile entity.BuyerProfile) error

	// UpdateBuyerPassword replaces the stored password hash.
	UpdateBuyerPassword(ctx context.Context, id uint, passwordHash string) error

	// DeleteBuyer removes the buyer row.
	DeleteBuyer(ctx context.Context, id uint) error
}
