package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

// ErrPublicationNotFound is returned when a publication is not found.
var ErrPublicationNotFound = errors.New("publication not found")

// PublicationChanges lists the columns an update may touch. Nil fields are left untouched.
type PublicationChanges struct {
	Title         *string
	Brand         *string
	Price         *float64
	State         *string
	Sku           *string
	Description   *string
	ImageURL      *string
	CategoryID    *uint
	SubCategoryID *uint
	CityID        *uint
	SellerID      *uint
}

// IsEmpty reports whether no field is set.
func (c PublicationChanges) IsEmpty() bool {
	return c.Title == nil && c.Brand == nil && c.Price == nil && c.State == nil && c.Sku == nil &&
		c.Description == nil && c.ImageURL == nil && c.CategoryID == nil && c.SubCategoryID == nil &&
		c.CityID == nil && c.SellerID == nil
}

// PublicationRepository defines the interface for publication-related database operations.
// Read methods return publications with Category, SubCategory and City (with Province) loaded.
type PublicationRepository interface {
	CreatePublication(ctx context.Context, publication *entity.Publication) error
	FindPublicationByID(ctx context.Context, id uint) (*entity.Publication, error)
	FindAllPublications(ctx context.Context) ([]*entity.Publication, error)

	// FindPublicationsPage returns one page ordered by ID and the total row count.
	FindPublicationsPage(ctx context.Context, offset, limit int) ([]*entity.Publication, int64, error)

	// FindLatestPublications returns the newest publications first.
	FindLatestPublications(ctx context.Context, limit int) ([]*entity.Publication, error)

	FindPublicationsBySeller(ctx context.Context, sellerID uint) ([]*entity.Publication, error)

	// UpdatePublication applies changes and returns the number of affected rows.
	UpdatePublication(ctx context.Context, id uint, changes PublicationChanges) (int64, error)

	DeletePublication(ctx context.Context, id uint) error
	DeletePublicationsBySeller(ctx context.Context, sellerID uint) (int64, error)
}
