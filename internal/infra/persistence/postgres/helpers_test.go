package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func seedBuyer(t *testing.T, db *gorm.DB, first, email string) *entity.Buyer {
	t.Helper()

	buyer := &entity.Buyer{FirstName: first, LastName: "Test", Email: email, PasswordHash: "hash"}
	require.NoError(t, NewBuyerRepository(db).CreateBuyer(context.Background(), buyer))

	return buyer
}

func seedSeller(t *testing.T, db *gorm.DB, buyerID uint) *entity.Seller {
	t.Helper()

	seller := &entity.Seller{BuyerID: buyerID, RegistrationDate: time.Now()}
	require.NoError(t, NewSellerRepository(db).CreateSeller(context.Background(), seller))

	return seller
}

func seedPublication(t *testing.T, db *gorm.DB, sellerID uint, title string) *entity.Publication {
	t.Helper()

	publication := &entity.Publication{Title: title, Price: 100, SellerID: sellerID}
	require.NoError(t, NewPublicationRepository(db).CreatePublication(context.Background(), publication))

	return publication
}

func ptr[T any](v T) *T {
	return &v
}
