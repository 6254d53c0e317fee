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

// buyerRepository implements the repository.BuyerRepository interface.
type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository is the constructor for buyerRepository.
func NewBuyerRepository(db *gorm.DB) repository.BuyerRepository {
	return &buyerRepository{db: db}
}

// CreateBuyer persists a new buyer.
func (repo *buyerRepository) CreateBuyer(ctx context.Context, buyer *entity.Buyer) error {
	buyerM := fromBuyerDomain(buyer)

	if err := repo.db.WithContext(ctx).Omit("Notifications").Create(buyerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrBuyerEmailExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required buyer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create buyer")
	}

	buyer.ID = buyerM.ID
	buyer.CreatedAt = buyerM.CreatedAt
	buyer.UpdatedAt = buyerM.UpdatedAt

	return nil
}

// FindBuyerByID retrieves a buyer by its ID.
func (repo *buyerRepository) FindBuyerByID(ctx context.Context, id uint) (*entity.Buyer, error) {
	var buyerM model.BuyerModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&buyerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by ID")
	}

	return toBuyerDomain(&buyerM), nil
}

// FindBuyerByEmail retrieves a buyer by email.
func (repo *buyerRepository) FindBuyerByEmail(ctx context.Context, email string) (*entity.Buyer, error) {
	var buyerM model.BuyerModel

	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&buyerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by email")
	}

	return toBuyerDomain(&buyerM), nil
}

// UpdateBuyerProfile applies the non-nil profile fields.
func (repo *buyerRepository) UpdateBuyerProfile(ctx context.Context, id uint, profile entity.BuyerProfile) error {
	updates := map[string]any{}
	if profile.FirstName != nil {
		updates["first_name"] = *profile.FirstName
	}
	if profile.LastName != nil {
		updates["last_name"] = *profile.LastName
	}
	if profile.Phone != nil {
		updates["phone"] = *profile.Phone
	}
	if profile.Address != nil {
		updates["address"] = *profile.Address
	}
	if profile.AvatarURL != nil {
		updates["avatar_url"] = *profile.AvatarURL
	}

	return repo.update(ctx, id, updates, "failed to update buyer profile")
}

// UpdateBuyerPassword replaces the stored password hash.
func (repo *buyerRepository) UpdateBuyerPassword(ctx context.Context, id uint, passwordHash string) error {
	return repo.update(ctx, id, map[string]any{"password_hash": passwordHash}, "failed to update buyer password")
}

func (repo *buyerRepository) update(ctx context.Context, id uint, updates map[string]any, msg string) error {
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BuyerModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return repository.ErrBuyerNotFound
	}

	return nil
}

// DeleteBuyer removes the buyer row.
func (repo *buyerRepository) DeleteBuyer(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BuyerModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("buyer still referenced")
		}

		return errors.Wrap(result.Error, "failed to delete buyer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBuyerNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBuyerDomain(data *model.BuyerModel) *entity.Buyer {
	if data == nil {
		return nil
	}

	return &entity.Buyer{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		AvatarURL:    data.AvatarURL,
		Phone:        data.Phone,
		Address:      data.Address,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromBuyerDomain(data *entity.Buyer) *model.BuyerModel {
	if data == nil {
		return nil
	}

	return &model.BuyerModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		AvatarURL:    data.AvatarURL,
		Phone:        data.Phone,
		Address:      data.Address,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
