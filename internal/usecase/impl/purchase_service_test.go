package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type purchaseServiceFixtures struct {
	service       *purchaseService
	txManager     *mockRepo.MockTransactionManager
	notifications *mockUsecase.MockNotificationUsecase
	repos         *txRepos
}

func createTestPurchaseService(t *testing.T) purchaseServiceFixtures {
	fx := purchaseServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
		repos:         newTxRepos(t),
	}

	svc := NewPurchaseService(PurchaseServiceParams{
		TxManager:     fx.txManager,
		Notifications: fx.notifications,
		Logger:        newDiscardLogger(),
	})
	fx.service = svc.(*purchaseService)

	return fx
}

func TestPurchaseService_Complete(t *testing.T) {
	fx := createTestPurchaseService(t)
	ctx := context.Background()
	r := fx.repos
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	fx.service.now = func() time.Time { return now }

	expectTx(ctx, fx.txManager, r)
	r.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(2)).Return(&entity.Buyer{ID: 2}, nil)
	r.publicationRepo.EXPECT().FindPublicationByID(ctx, uint(20)).Return(&entity.Publication{ID: 20, SellerID: 4, Price: 300}, nil)
	r.sellerRepo.EXPECT().FindSellerByID(ctx, uint(4)).Return(&entity.Seller{ID: 4, BuyerID: 8}, nil)
	r.orderDetailRepo.EXPECT().CreateOrderDetail(ctx, &entity.OrderDetail{
		PublicationID: 20,
		BuyerID:       2,
		Quantity:      2,
		UnitPrice:     300,
		CreatedAt:     now,
	}).Return(nil)
	r.sellerRepo.EXPECT().IncrementSales(ctx, uint(4), 2).Return(nil)
	fx.notifications.EXPECT().OnPurchaseCompleted(ctx, uint(2), uint(20)).Return([]*entity.Notification{{}, {}}, nil)

	detail, err := fx.service.Complete(ctx, usecase.CompletePurchaseInput{BuyerID: 2, PublicationID: 20, Quantity: 2})

	require.NoError(t, err)
	assert.InEpsilon(t, 300.0, detail.UnitPrice, 0.0001)
}

func TestPurchaseService_Complete_OwnPublication(t *testing.T) {
	fx := createTestPurchaseService(t)
	ctx := context.Background()
	r := fx.repos

	expectTx(ctx, fx.txManager, r)
	r.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(8)).Return(&entity.Buyer{ID: 8}, nil)
	r.publicationRepo.EXPECT().FindPublicationByID(ctx, uint(20)).Return(&entity.Publication{ID: 20, SellerID: 4}, nil)
	r.sellerRepo.EXPECT().FindSellerByID(ctx, uint(4)).Return(&entity.Seller{ID: 4, BuyerID: 8}, nil)

	_, err := fx.service.Complete(ctx, usecase.CompletePurchaseInput{BuyerID: 8, PublicationID: 20, Quantity: 1})

	assert.ErrorIs(t, err, domainerrors.ErrOwnPublicationPurchase)
	fx.notifications.AssertNotCalled(t, "OnPurchaseCompleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseService_Complete_InvalidQuantity(t *testing.T) {
	fx := createTestPurchaseService(t)

	_, err := fx.service.Complete(context.Background(), usecase.CompletePurchaseInput{BuyerID: 2, PublicationID: 20})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPurchaseService_Complete_UnknownPublication(t *testing.T) {
	fx := createTestPurchaseService(t)
	ctx := context.Background()
	r := fx.repos

	expectTx(ctx, fx.txManager, r)
	r.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(2)).Return(&entity.Buyer{ID: 2}, nil)
	r.publicationRepo.EXPECT().FindPublicationByID(ctx, uint(20)).Return(nil, repository.ErrPublicationNotFound)

	_, err := fx.service.Complete(ctx, usecase.CompletePurchaseInput{BuyerID: 2, PublicationID: 20, Quantity: 1})

	assert.ErrorIs(t, err, domainerrors.ErrPublicationNotFound)
}

func TestPurchaseService_Complete_NotificationFailureIsLogged(t *testing.T) {
	fx := createTestPurchaseService(t)
	ctx := context.Background()
	r := fx.repos

	expectTx(ctx, fx.txManager, r)
	r.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(2)).Return(&entity.Buyer{ID: 2}, nil)
	r.publicationRepo.EXPECT().FindPublicationByID(ctx, uint(20)).Return(&entity.Publication{ID: 20, SellerID: 4}, nil)
	r.sellerRepo.EXPECT().FindSellerByID(ctx, uint(4)).Return(&entity.Seller{ID: 4, BuyerID: 8}, nil)
	r.orderDetailRepo.EXPECT().CreateOrderDetail(ctx, mock.Anything).Return(nil)
	r.sellerRepo.EXPECT().IncrementSales(ctx, uint(4), 1).Return(nil)
	fx.notifications.EXPECT().OnPurchaseCompleted(ctx, uint(2), uint(20)).Return(nil, errors.New("db gone"))

	detail, err := fx.service.Complete(ctx, usecase.CompletePurchaseInput{BuyerID: 2, PublicationID: 20, Quantity: 1})

	require.NoError(t, err)
	assert.NotNil(t, detail)
}
