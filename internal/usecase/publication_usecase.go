package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// --- Input DTOs ---

// CreatePublicationInput defines the data required to create a publication.
type CreatePublicationInput struct {
	Title         string
	Brand         string
	Price         float64
	State         string
	Sku           string
	CategoryID    uint
	SubCategoryID uint
	Description   string
	ImageURL      string
	CityID        uint
	SellerID      uint
}

// UpdatePublicationInput holds a plain update. Nil fields are left untouched.
type UpdatePublicationInput struct {
	Title         *string
	Brand         *string
	Price         *float64
	State         *string
	Sku           *string
	CategoryID    *uint
	SubCategoryID *uint
	Description   *string
	ImageURL      *string
	CityID        *uint
	SellerID      *uint
}

// PublicationUsecase defines the catalog operations.
type PublicationUsecase interface {
	List(ctx context.Context) ([]*entity.Publication, error)
	ListPaginated(ctx context.Context, page, pageSize int) (*entity.PublicationPage, error)
	Latest(ctx context.Context, limit int) ([]*entity.Publication, error)
	GetByID(ctx context.Context, id uint) (*entity.Publication, error)

	// SellerOfPublication returns the account that owns the publication's seller profile.
	SellerOfPublication(ctx context.Context, id uint) (*entity.Buyer, error)

	Create(ctx context.Context, input CreatePublicationInput, image *ImageUpload) (*entity.Publication, error)
	Update(ctx context.Context, id uint, input UpdatePublicationInput) (*entity.Publication, error)
	Delete(ctx context.Context, id uint) error

	// ReplaceImage applies whitelisted raw form fields and, when image is set, swaps the stored image.
	ReplaceImage(ctx context.Context, id uint, fields map[string]string, image *ImageUpload) (*entity.Publication, error)

	// ShareQRCode renders a PNG QR code linking to the publication page.
	ShareQRCode(ctx context.Context, id uint) ([]byte, error)
}
