package postgres

import (
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AllModels lists every table owned by the service, parents first.
func AllModels() []any {
	return []any{
		&model.CategoryModel{},
		&model.SubCategoryModel{},
		&model.ProvinceModel{},
		&model.CityModel{},
		&model.BuyerModel{},
		&model.SellerModel{},
		&model.PublicationModel{},
		&model.OrderDetailModel{},
		&model.ChatModel{},
		&model.MessageModel{},
		&model.NotificationModel{},
	}
}

// AutoMigrate creates or updates the schema. Used by tests and local development only;
// deployed databases are migrated out of band.
func AutoMigrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(AllModels()...), "auto migrate")
}
