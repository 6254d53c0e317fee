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

// orderDetailRepository implements the repository.OrderDetailRepository interface.
type orderDetailRepository struct {
	db *gorm.DB
}

// NewOrderDetailRepository is the constructor for orderDetailRepository.
func NewOrderDetailRepository(db *gorm.DB) repository.OrderDetailRepository {
	return &orderDetailRepository{db: db}
}

func (repo *orderDetailRepository) CreateOrderDetail(ctx context.Context, detail *entity.OrderDetail) error {
	detailM := &model.OrderDetailModel{
		PublicationID: detail.PublicationID,
		BuyerID:       detail.BuyerID,
		Quantity:      detail.Quantity,
		UnitPrice:     detail.UnitPrice,
		CreatedAt:     detail.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(detailM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid publication or buyer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order detail")
	}

	detail.ID = detailM.ID
	detail.CreatedAt = detailM.CreatedAt

	return nil
}

func (repo *orderDetailRepository) FindOrderDetailsByPublication(ctx context.Context, publicationID uint) ([]*entity.OrderDetail, error) {
	var detailModels []*model.OrderDetailModel

	if err := repo.db.WithContext(ctx).
		Where("publication_id = ?", publicationID).
		Order("id ASC").
		Find(&detailModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order details by publication")
	}

	details := make([]*entity.OrderDetail, 0, len(detailModels))
	for _, d := range detailModels {
		details = append(details, &entity.OrderDetail{
			ID:            d.ID,
			PublicationID: d.PublicationID,
			BuyerID:       d.BuyerID,
			Quantity:      d.Quantity,
			UnitPrice:     d.UnitPrice,
			CreatedAt:     d.CreatedAt,
		})
	}

	return details, nil
}

func (repo *orderDetailRepository) DeleteOrderDetailsByPublication(ctx context.Context, publicationID uint) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("publication_id = ?", publicationID).
		Delete(&model.OrderDetailModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete order details by publication")
	}

	return result.RowsAffected, nil
}

func (repo *orderDetailRepository) DeleteOrderDetailsByBuyer(ctx context.Context, buyerID uint) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Delete(&model.OrderDetailModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete order details by buyer")
	}

	return result.RowsAffected, nil
}
