package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyerRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewBuyerRepository(db)

	buyer := seedBuyer(t, db, "Ana", "ana@example.com")
	assert.NotZero(t, buyer.ID)

	byEmail, err := repo.FindBuyerByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, buyer.ID, byEmail.ID)
	assert.Equal(t, "Ana Test", byEmail.DisplayName())

	err = repo.CreateBuyer(ctx, &entity.Buyer{FirstName: "Otra", Email: "ana@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, repository.ErrBuyerEmailExists)

	_, err = repo.FindBuyerByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrBuyerNotFound)
}

func TestBuyerRepository_UpdateProfileAndPassword(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewBuyerRepository(db)

	buyer := seedBuyer(t, db, "Ana", "ana@example.com")

	require.NoError(t, repo.UpdateBuyerProfile(ctx, buyer.ID, entity.BuyerProfile{
		Phone:     ptr("351-555"),
		AvatarURL: ptr("https://cdn.example.com/a.png"),
	}))
	require.NoError(t, repo.UpdateBuyerPassword(ctx, buyer.ID, "new-hash"))

	found, err := repo.FindBuyerByID(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, "351-555", found.Phone)
	assert.Equal(t, "https://cdn.example.com/a.png", found.AvatarURL)
	assert.Equal(t, "new-hash", found.PasswordHash)
	assert.Equal(t, "Ana", found.FirstName)

	err = repo.UpdateBuyerPassword(ctx, 999, "x")
	assert.ErrorIs(t, err, repository.ErrBuyerNotFound)
}

func TestSellerRepository_OnePerBuyer(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSellerRepository(db)

	buyer := seedBuyer(t, db, "Ana", "ana@example.com")
	seller := seedSeller(t, db, buyer.ID)

	err := repo.CreateSeller(ctx, &entity.Seller{BuyerID: buyer.ID})
	assert.ErrorIs(t, err, repository.ErrSellerAlreadyExists)

	require.NoError(t, repo.IncrementSales(ctx, seller.ID, 3))

	found, err := repo.FindSellerByBuyerID(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.QuantitySales)

	require.NoError(t, repo.DeleteSeller(ctx, seller.ID))

	_, err = repo.FindSellerByID(ctx, seller.ID)
	assert.ErrorIs(t, err, repository.ErrSellerNotFound)
}

func TestBuyerRepository_DeleteBuyerRejectedWhilePurchasesRemain(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewBuyerRepository(db)
	details := NewOrderDetailRepository(db)

	seller := seedSeller(t, db, seedBuyer(t, db, "Ana", "ana@example.com").ID)
	customer := seedBuyer(t, db, "Eva", "eva@example.com")
	bike := seedPublication(t, db, seller.ID, "Bicicleta")
	require.NoError(t, details.CreateOrderDetail(ctx, &entity.OrderDetail{PublicationID: bike.ID, BuyerID: customer.ID, Quantity: 1, UnitPrice: 100}))

	assert.ErrorIs(t, repo.DeleteBuyer(ctx, customer.ID), domainerrors.ErrConflict)

	_, err := details.DeleteOrderDetailsByBuyer(ctx, customer.ID)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteBuyer(ctx, customer.ID))
}
