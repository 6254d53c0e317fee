package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sellerRepository implements the repository.SellerRepository interface.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// CreateSeller persists a seller profile. The unique index on buyer_id rejects a second profile.
func (repo *sellerRepository) CreateSeller(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Omit("Buyer").Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSellerAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBuyerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.ID = sellerM.ID

	return nil
}

func (repo *sellerRepository) FindSellerByID(ctx context.Context, id uint) (*entity.Seller, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *sellerRepository) FindSellerByBuyerID(ctx context.Context, buyerID uint) (*entity.Seller, error) {
	return repo.findOne(ctx, "buyer_id = ?", buyerID)
}

func (repo *sellerRepository) findOne(ctx context.Context, query string, arg uint) (*entity.Seller, error) {
	var sellerM model.SellerModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}

	return toSellerDomain(&sellerM), nil
}

// IncrementSales adds quantity to the seller's sales counter.
func (repo *sellerRepository) IncrementSales(ctx context.Context, sellerID uint, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("id = ?", sellerID).
		UpdateColumn("quantity_sales", gorm.Expr("quantity_sales + ?", quantity))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment seller sales")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

func (repo *sellerRepository) DeleteSeller(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SellerModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete seller")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSellerDomain(data *model.SellerModel) *entity.Seller {
	if data == nil {
		return nil
	}

	return &entity.Seller{
		ID:               data.ID,
		BuyerID:          data.BuyerID,
		RegistrationDate: data.RegistrationDate,
		QuantitySales:    data.QuantitySales,
	}
}

func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	if data == nil {
		return nil
	}

	return &model.SellerModel{
		ID:               data.ID,
		BuyerID:          data.BuyerID,
		RegistrationDate: data.RegistrationDate,
		QuantitySales:    data.QuantitySales,
	}
}
