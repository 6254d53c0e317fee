package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicationRepository_FindPublicationByIDLoadsCatalog(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPublicationRepository(db)

	require.NoError(t, db.Create(&model.CategoryModel{ID: 1, Name: "Deportes"}).Error)
	require.NoError(t, db.Create(&model.SubCategoryModel{ID: 2, Name: "Ciclismo"}).Error)
	require.NoError(t, db.Create(&model.ProvinceModel{ID: 3, Name: "Córdoba"}).Error)
	require.NoError(t, db.Create(&model.CityModel{ID: 4, Name: "Río Cuarto", ProvinceID: 3}).Error)
	seller := seedSeller(t, db, seedBuyer(t, db, "Ana", "ana@example.com").ID)

	publication := &entity.Publication{Title: "Bicicleta", Price: 1500, SellerID: seller.ID, CategoryID: 1, SubCategoryID: 2, CityID: 4}
	require.NoError(t, repo.CreatePublication(ctx, publication))

	found, err := repo.FindPublicationByID(ctx, publication.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Category)
	require.NotNil(t, found.SubCategory)
	require.NotNil(t, found.City)
	require.NotNil(t, found.City.Province)
	assert.Equal(t, "Deportes", found.Category.Name)
	assert.Equal(t, "Ciclismo", found.SubCategory.Name)
	assert.Equal(t, "Córdoba", found.City.Province.Name)

	_, err = repo.FindPublicationByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrPublicationNotFound)
}

func TestPublicationRepository_PageAndLatest(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPublicationRepository(db)
	seller := seedSeller(t, db, seedBuyer(t, db, "Ana", "ana@example.com").ID)

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"} {
		require.NoError(t, repo.CreatePublication(ctx, &entity.Publication{
			Title:     title,
			Price:     10,
			SellerID:  seller.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	rows, total, err := repo.FindPublicationsPage(ctx, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, rows, 2)
	assert.Equal(t, "p6", rows[0].Title)
	assert.Equal(t, "p7", rows[1].Title)

	latest, err := repo.FindLatestPublications(ctx, 3)
	require.NoError(t, err)
	require.Len(t, latest, 3)
	assert.Equal(t, "p7", latest[0].Title)
	assert.Equal(t, "p5", latest[2].Title)
}

func TestPublicationRepository_UpdatePublication(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPublicationRepository(db)
	seller := seedSeller(t, db, seedBuyer(t, db, "Ana", "ana@example.com").ID)

	publication := &entity.Publication{Title: "Mesa", Price: 50, SellerID: seller.ID, ImageURL: "old"}
	require.NoError(t, repo.CreatePublication(ctx, publication))

	affected, err := repo.UpdatePublication(ctx, publication.ID, repository.PublicationChanges{
		Price:    ptr(75.5),
		ImageURL: ptr("new"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err := repo.FindPublicationByID(ctx, publication.ID)
	require.NoError(t, err)
	assert.Equal(t, 75.5, found.Price)
	assert.Equal(t, "new", found.ImageURL)
	assert.Equal(t, "Mesa", found.Title)

	affected, err = repo.UpdatePublication(ctx, 999, repository.PublicationChanges{Title: ptr("x")})
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.UpdatePublication(ctx, publication.ID, repository.PublicationChanges{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestPublicationRepository_DeleteBySellerAndOrderDetails(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	publications := NewPublicationRepository(db)
	details := NewOrderDetailRepository(db)

	seller := seedSeller(t, db, seedBuyer(t, db, "Ana", "ana@example.com").ID)
	otherSeller := seedSeller(t, db, seedBuyer(t, db, "Luis", "luis@example.com").ID)
	customer := seedBuyer(t, db, "Eva", "eva@example.com")

	mine := seedPublication(t, db, seller.ID, "mine")
	seedPublication(t, db, seller.ID, "mine too")
	other := seedPublication(t, db, otherSeller.ID, "other")

	require.NoError(t, details.CreateOrderDetail(ctx, &entity.OrderDetail{PublicationID: mine.ID, BuyerID: customer.ID, Quantity: 2, UnitPrice: 100}))

	list, err := details.FindOrderDetailsByPublication(ctx, mine.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err := details.DeleteOrderDetailsByPublication(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = publications.DeletePublicationsBySeller(ctx, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = publications.FindPublicationByID(ctx, other.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, publications.DeletePublication(ctx, mine.ID), repository.ErrPublicationNotFound)
}

func TestPublicationRepository_CreatePublicationRequiresSeller(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := NewPublicationRepository(db).CreatePublication(ctx, &entity.Publication{Title: "Mesa", Price: 50, SellerID: 9999})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderDetailRepository_DeleteOrderDetailsByBuyer(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	details := NewOrderDetailRepository(db)

	seller := seedSeller(t, db, seedBuyer(t, db, "Ana", "ana@example.com").ID)
	customer := seedBuyer(t, db, "Eva", "eva@example.com")
	otherCustomer := seedBuyer(t, db, "Luis", "luis@example.com")
	bike := seedPublication(t, db, seller.ID, "Bicicleta")
	table := seedPublication(t, db, seller.ID, "Mesa")

	for _, detail := range []*entity.OrderDetail{
		{PublicationID: bike.ID, BuyerID: customer.ID, Quantity: 1, UnitPrice: 100},
		{PublicationID: table.ID, BuyerID: customer.ID, Quantity: 3, UnitPrice: 50},
		{PublicationID: bike.ID, BuyerID: otherCustomer.ID, Quantity: 1, UnitPrice: 100},
	} {
		require.NoError(t, details.CreateOrderDetail(ctx, detail))
	}

	deleted, err := details.DeleteOrderDetailsByBuyer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := details.FindOrderDetailsByPublication(ctx, bike.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, otherCustomer.ID, remaining[0].BuyerID)

	deleted, err = details.DeleteOrderDetailsByBuyer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
