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

// publicationRepository implements the repository.PublicationRepository interface.
type publicationRepository struct {
	db *gorm.DB
}

// NewPublicationRepository is the constructor for publicationRepository.
func NewPublicationRepository(db *gorm.DB) repository.PublicationRepository {
	return &publicationRepository{db: db}
}

// withCatalog preloads the lookup rows rendered alongside a publication.
func (repo *publicationRepository) withCatalog(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Category").
		Preload("SubCategory").
		Preload("City.Province")
}

// CreatePublication persists a new publication.
func (repo *publicationRepository) CreatePublication(ctx context.Context, publication *entity.Publication) error {
	publicationM := fromPublicationDomain(publication)

	if err := repo.db.WithContext(ctx).Omit("Category", "SubCategory", "City").Create(publicationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid seller, category or city reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required publication information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create publication")
	}

	publication.ID = publicationM.ID
	publication.CreatedAt = publicationM.CreatedAt
	publication.UpdatedAt = publicationM.UpdatedAt

	return nil
}

func (repo *publicationRepository) FindPublicationByID(ctx context.Context, id uint) (*entity.Publication, error) {
	var publicationM model.PublicationModel

	if err := repo.withCatalog(ctx).Where("id = ?", id).First(&publicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPublicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find publication by ID")
	}

	return toPublicationDomain(&publicationM), nil
}

func (repo *publicationRepository) FindAllPublications(ctx context.Context) ([]*entity.Publication, error) {
	var publicationModels []*model.PublicationModel

	if err := repo.withCatalog(ctx).Order("id ASC").Find(&publicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find publications")
	}

	return toPublicationDomains(publicationModels), nil
}

// FindPublicationsPage returns one page ordered by ID and the total row count.
func (repo *publicationRepository) FindPublicationsPage(ctx context.Context, offset, limit int) ([]*entity.Publication, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.PublicationModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count publications")
	}

	var publicationModels []*model.PublicationModel
	if err := repo.withCatalog(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&publicationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find publications page")
	}

	return toPublicationDomains(publicationModels), total, nil
}

func (repo *publicationRepository) FindLatestPublications(ctx context.Context, limit int) ([]*entity.Publication, error) {
	var publicationModels []*model.PublicationModel

	if err := repo.withCatalog(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&publicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find latest publications")
	}

	return toPublicationDomains(publicationModels), nil
}

func (repo *publicationRepository) FindPublicationsBySeller(ctx context.Context, sellerID uint) ([]*entity.Publication, error) {
	var publicationModels []*model.PublicationModel

	if err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id ASC").
		Find(&publicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find publications by seller")
	}

	return toPublicationDomains(publicationModels), nil
}

// UpdatePublication applies changes and returns the number of affected rows.
func (repo *publicationRepository) UpdatePublication(ctx context.Context, id uint, changes repository.PublicationChanges) (int64, error) {
	updates := publicationUpdates(changes)
	if len(updates) == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.PublicationModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return 0, errors.Wrap(err, "failed to check publication")
		}

		return count, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PublicationModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return 0, domainerrors.ErrValidationFailed.WithDetails("invalid seller, category or city reference")
		}

		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update publication")
	}

	return result.RowsAffected, nil
}

func (repo *publicationRepository) DeletePublication(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PublicationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete publication")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPublicationNotFound
	}

	return nil
}

func (repo *publicationRepository) DeletePublicationsBySeller(ctx context.Context, sellerID uint) (int64, error) {
	result := repo.db.WithContext(ctx).Where("seller_id = ?", sellerID).Delete(&model.PublicationModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete publications by seller")
	}

	return result.RowsAffected, nil
}

func publicationUpdates(changes repository.PublicationChanges) map[string]any {
	updates := map[string]any{}
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Brand != nil {
		updates["brand"] = *changes.Brand
	}
	if changes.Price != nil {
		updates["price"] = *changes.Price
	}
	if changes.State != nil {
		updates["state"] = *changes.State
	}
	if changes.Sku != nil {
		updates["sku"] = *changes.Sku
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.ImageURL != nil {
		updates["image_url"] = *changes.ImageURL
	}
	if changes.CategoryID != nil {
		updates["category_id"] = *changes.CategoryID
	}
	if changes.SubCategoryID != nil {
		updates["sub_category_id"] = *changes.SubCategoryID
	}
	if changes.CityID != nil {
		updates["city_id"] = *changes.CityID
	}
	if changes.SellerID != nil {
		updates["seller_id"] = *changes.SellerID
	}

	return updates
}

// --- Mapper Functions ---

func toPublicationDomains(models []*model.PublicationModel) []*entity.Publication {
	publications := make([]*entity.Publication, 0, len(models))
	for _, publicationM := range models {
		publications = append(publications, toPublicationDomain(publicationM))
	}

	return publications
}

func toPublicationDomain(data *model.PublicationModel) *entity.Publication {
	if data == nil {
		return nil
	}

	publication := &entity.Publication{
		ID:            data.ID,
		Title:         data.Title,
		Brand:         data.Brand,
		Price:         data.Price,
		State:         data.State,
		Sku:           data.Sku,
		CategoryID:    data.CategoryID,
		SubCategoryID: data.SubCategoryID,
		Description:   data.Description,
		ImageURL:      data.ImageURL,
		CityID:        data.CityID,
		SellerID:      data.SellerID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.Category != nil {
		publication.Category = &entity.Category{ID: data.Category.ID, Name: data.Category.Name}
	}
	if data.SubCategory != nil {
		publication.SubCategory = &entity.SubCategory{ID: data.SubCategory.ID, Name: data.SubCategory.Name}
	}
	if data.City != nil {
		publication.City = &entity.City{ID: data.City.ID, Name: data.City.Name, ProvinceID: data.City.ProvinceID}
		if data.City.Province != nil {
			publication.City.Province = &entity.Province{ID: data.City.Province.ID, Name: data.City.Province.Name}
		}
	}

	return publication
}

func fromPublicationDomain(data *entity.Publication) *model.PublicationModel {
	if data == nil {
		return nil
	}

	return &model.PublicationModel{
		ID:            data.ID,
		Title:         data.Title,
		Brand:         data.Brand,
		Price:         data.Price,
		State:         data.State,
		Sku:           data.Sku,
		CategoryID:    data.CategoryID,
		SubCategoryID: data.SubCategoryID,
		Description:   data.Description,
		ImageURL:      data.ImageURL,
		CityID:        data.CityID,
		SellerID:      data.SellerID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
