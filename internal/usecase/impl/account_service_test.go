package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const txFnType = "func(repository.RepositoryFactory) error"

// txRepos is a transaction-scoped factory whose repositories are all mocks.
type txRepos struct {
	factory         *mockRepo.MockRepositoryFactory
	buyerRepo       *mockRepo.MockBuyerRepository
	sellerRepo      *mockRepo.MockSellerRepository
	publicationRepo *mockRepo.MockPublicationRepository
	orderDetailRepo *mockRepo.MockOrderDetailRepository
	chatRepo        *mockRepo.MockChatRepository
	messageRepo     *mockRepo.MockMessageRepository
	notifyRepo      *mockRepo.MockNotificationRepository
}

func newTxRepos(t *testing.T) *txRepos {
	r := &txRepos{
		factory:         mockRepo.NewMockRepositoryFactory(t),
		buyerRepo:       mockRepo.NewMockBuyerRepository(t),
		sellerRepo:      mockRepo.NewMockSellerRepository(t),
		publicationRepo: mockRepo.NewMockPublicationRepository(t),
		orderDetailRepo: mockRepo.NewMockOrderDetailRepository(t),
		chatRepo:        mockRepo.NewMockChatRepository(t),
		messageRepo:     mockRepo.NewMockMessageRepository(t),
		notifyRepo:      mockRepo.NewMockNotificationRepository(t),
	}

	r.factory.EXPECT().NewBuyerRepository().Return(r.buyerRepo).Maybe()
	r.factory.EXPECT().NewSellerRepository().Return(r.sellerRepo).Maybe()
	r.factory.EXPECT().NewPublicationRepository().Return(r.publicationRepo).Maybe()
	r.factory.EXPECT().NewOrderDetailRepository().Return(r.orderDetailRepo).Maybe()
	r.factory.EXPECT().NewChatRepository().Return(r.chatRepo).Maybe()
	r.factory.EXPECT().NewMessageRepository().Return(r.messageRepo).Maybe()
	r.factory.EXPECT().NewNotificationRepository().Return(r.notifyRepo).Maybe()

	return r
}

// expectTx makes txManager run the callback against repos and return its error.
func expectTx(ctx context.Context, txManager *mockRepo.MockTransactionManager, repos *txRepos) {
	txManager.EXPECT().Execute(ctx, mock.AnythingOfType(txFnType)).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}

// callLog records the order in which repository methods run.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

type accountServiceFixtures struct {
	service   *accountService
	txManager *mockRepo.MockTransactionManager
	storage   *mockSvc.MockMediaStorage
	cache     *mockSvc.MockPublicationCache
	metrics   *mockSvc.MockMetrics
	repos     *txRepos
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fx := accountServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		storage:   mockSvc.NewMockMediaStorage(t),
		cache:     mockSvc.NewMockPublicationCache(t),
		metrics:   mockSvc.NewMockMetrics(t),
		repos:     newTxRepos(t),
	}

	svc := NewAccountService(AccountServiceParams{
		TxManager: fx.txManager,
		Storage:   fx.storage,
		Cache:     fx.cache,
		Metrics:   fx.metrics,
		Logger:    newDiscardLogger(),
	})
	fx.service = svc.(*accountService)

	return fx
}

func TestAccountService_PromoteToSeller(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fx.service.now = func() time.Time { return now }

	expectTx(ctx, fx.txManager, fx.repos)
	fx.repos.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(1)).Return(&entity.Buyer{ID: 1}, nil)
	fx.repos.sellerRepo.EXPECT().FindSellerByBuyerID(ctx, uint(1)).Return(nil, repository.ErrSellerNotFound)
	fx.repos.sellerRepo.EXPECT().CreateSeller(ctx, mock.AnythingOfType("*entity.Seller")).
		RunAndReturn(func(_ context.Context, s *entity.Seller) error {
			s.ID = 12

			return nil
		})

	seller, err := fx.service.PromoteToSeller(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, uint(12), seller.ID)
	assert.Equal(t, uint(1), seller.BuyerID)
	assert.Equal(t, 0, seller.QuantitySales)
	assert.Equal(t, now, seller.RegistrationDate)
}

func TestAccountService_PromoteToSeller_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(ctx context.Context, r *txRepos)
		wantErr error
	}{
		{
			name: "buyer missing",
			setup: func(ctx context.Context, r *txRepos) {
				r.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(1)).Return(nil, repository.ErrBuyerNotFound)
			},
			wantErr: domainerrors.ErrBuyerNotFound,
		},
		{
			name: "seller already registered",
			setup: func(ctx context.Context, r *txRepos) {
				r.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(1)).Return(&entity.Buyer{ID: 1}, nil)
				r.sellerRepo.EXPECT().FindSellerByBuyerID(ctx, uint(1)).Return(&entity.Seller{ID: 4, BuyerID: 1}, nil)
			},
			wantErr: domainerrors.ErrSellerAlreadyExists,
		},
		{
			name: "unique index rejects a concurrent promotion",
			setup: func(ctx context.Context, r *txRepos) {
				r.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(1)).Return(&entity.Buyer{ID: 1}, nil)
				r.sellerRepo.EXPECT().FindSellerByBuyerID(ctx, uint(1)).Return(nil, repository.ErrSellerNotFound)
				r.sellerRepo.EXPECT().CreateSeller(ctx, mock.Anything).Return(repository.ErrSellerAlreadyExists)
			},
			wantErr: domainerrors.ErrSellerAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()

			expectTx(ctx, fx.txManager, fx.repos)
			tt.setup(ctx, fx.repos)

			seller, err := fx.service.PromoteToSeller(ctx, 1)

			assert.Nil(t, seller)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountService_RemoveBuyerCascade_DeletesInOrder(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	r := fx.repos
	log := &callLog{}

	const (
		avatarURL = "https://res.cloudinary.com/demo/image/upload/v1/buyer_avatars/a.png"
		imageURL  = "https://res.cloudinary.com/demo/image/upload/v1/publications/p10.png"
	)
	buyer := &entity.Buyer{ID: 1, FirstName: "Ana", AvatarURL: avatarURL}
	publications := []*entity.Publication{{ID: 10, SellerID: 5, ImageURL: imageURL}, {ID: 11, SellerID: 5}}

	expectTx(ctx, fx.txManager, r)
	r.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(1)).
		Run(func(context.Context, uint) { log.add("find buyer") }).Return(buyer, nil)
	r.sellerRepo.EXPECT().FindSellerByBuyerID(ctx, uint(1)).
		Run(func(context.Context, uint) { log.add("find seller") }).Return(&entity.Seller{ID: 5, BuyerID: 1}, nil)
	r.publicationRepo.EXPECT().FindPublicationsBySeller(ctx, uint(5)).
		Run(func(context.Context, uint) { log.add("find publications") }).Return(publications, nil)
	r.orderDetailRepo.EXPECT().DeleteOrderDetailsByPublication(ctx, mock.AnythingOfType("uint")).
		Run(func(_ context.Context, id uint) { log.add("delete order details %d", id) }).Return(1, nil).Times(2)
	r.publicationRepo.EXPECT().DeletePublicationsBySeller(ctx, uint(5)).
		Run(func(context.Context, uint) { log.add("delete publications") }).Return(2, nil)
	r.sellerRepo.EXPECT().DeleteSeller(ctx, uint(5)).
		Run(func(context.Context, uint) { log.add("delete seller") }).Return(nil)
	r.chatRepo.EXPECT().FindChatsByParticipant(ctx, uint(1)).
		Run(func(context.Context, uint) { log.add("find chats") }).Return([]*entity.Chat{{ID: 30}, {ID: 31}}, nil)
	r.messageRepo.EXPECT().DeleteMessagesBySender(ctx, uint(1)).
		Run(func(context.Context, uint) { log.add("delete sent messages") }).Return(3, nil)
	r.messageRepo.EXPECT().DeleteMessagesByChats(ctx, []uint{30, 31}).
		Run(func(context.Context, []uint) { log.add("delete chat messages") }).Return(4, nil)
	r.chatRepo.EXPECT().DeleteChatsByParticipant(ctx, uint(1)).
		Run(func(context.Context, uint) { log.add("delete chats") }).Return(2, nil)
	r.notifyRepo.EXPECT().DeleteNotificationsByUser(ctx, uint(1)).
		Run(func(context.Context, uint) { log.add("delete notifications") }).Return(5, nil)
	r.orderDetailRepo.EXPECT().DeleteOrderDetailsByBuyer(ctx, uint(1)).
		Run(func(context.Context, uint) { log.add("delete purchases") }).Return(2, nil)
	r.buyerRepo.EXPECT().DeleteBuyer(ctx, uint(1)).
		Run(func(context.Context, uint) { log.add("delete buyer") }).Return(nil)

	destroyOpts := service.DestroyOptions{ResourceType: constants.ResourceTypeImage, Invalidate: true}
	fx.cache.EXPECT().Delete(ctx, uint(10)).Return(nil)
	fx.cache.EXPECT().Delete(ctx, uint(11)).Return(nil)
	fx.storage.EXPECT().PublicIDFromURL(imageURL).Return("publications/p10", true)
	fx.storage.EXPECT().Destroy(ctx, "publications/p10", destroyOpts).Return(nil)
	fx.storage.EXPECT().PublicIDFromURL(avatarURL).Return("buyer_avatars/a", true)
	fx.storage.EXPECT().Destroy(ctx, "buyer_avatars/a", destroyOpts).Return(nil)

	removed, err := fx.service.RemoveBuyerCascade(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, buyer, removed)
	assert.Equal(t, []string{
		"find buyer",
		"find seller",
		"find publications",
		"delete order details 10",
		"delete order details 11",
		"delete publications",
		"delete seller",
		"find chats",
		"delete sent messages",
		"delete chat messages",
		"delete chats",
		"delete notifications",
		"delete purchases",
		"delete buyer",
	}, log.calls)
}

func TestAccountService_RemoveBuyerCascade_BuyerWithoutSeller(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	r := fx.repos

	expectTx(ctx, fx.txManager, r)
	r.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(2)).Return(&entity.Buyer{ID: 2}, nil)
	r.sellerRepo.EXPECT().FindSellerByBuyerID(ctx, uint(2)).Return(nil, repository.ErrSellerNotFound)
	r.chatRepo.EXPECT().FindChatsByParticipant(ctx, uint(2)).Return(nil, nil)
	r.messageRepo.EXPECT().DeleteMessagesBySender(ctx, uint(2)).Return(0, nil)
	r.messageRepo.EXPECT().DeleteMessagesByChats(ctx, []uint{}).Return(0, nil)
	r.chatRepo.EXPECT().DeleteChatsByParticipant(ctx, uint(2)).Return(0, nil)
	r.notifyRepo.EXPECT().DeleteNotificationsByUser(ctx, uint(2)).Return(0, nil)
	r.orderDetailRepo.EXPECT().DeleteOrderDetailsByBuyer(ctx, uint(2)).Return(0, nil)
	r.buyerRepo.EXPECT().DeleteBuyer(ctx, uint(2)).Return(nil)

	removed, err := fx.service.RemoveBuyerCascade(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, uint(2), removed.ID)
}

func TestAccountService_RemoveBuyerCascade_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expectTx(ctx, fx.txManager, fx.repos)
	fx.repos.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(3)).Return(nil, repository.ErrBuyerNotFound)

	removed, err := fx.service.RemoveBuyerCascade(ctx, 3)

	assert.Nil(t, removed)
	assert.ErrorIs(t, err, domainerrors.ErrBuyerNotFound)
}

func TestAccountService_RemoveBuyerCascade_FailureSkipsMediaCleanup(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	r := fx.repos
	boom := errors.New("connection reset")

	expectTx(ctx, fx.txManager, r)
	r.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(1)).Return(&entity.Buyer{ID: 1, AvatarURL: "https://cdn/a.png"}, nil)
	r.sellerRepo.EXPECT().FindSellerByBuyerID(ctx, uint(1)).Return(nil, repository.ErrSellerNotFound)
	r.chatRepo.EXPECT().FindChatsByParticipant(ctx, uint(1)).Return([]*entity.Chat{{ID: 30}}, nil)
	r.messageRepo.EXPECT().DeleteMessagesBySender(ctx, uint(1)).Return(0, nil)
	r.messageRepo.EXPECT().DeleteMessagesByChats(ctx, []uint{30}).Return(0, nil)
	r.chatRepo.EXPECT().DeleteChatsByParticipant(ctx, uint(1)).Return(0, boom)

	removed, err := fx.service.RemoveBuyerCascade(ctx, 1)

	assert.Nil(t, removed)
	assert.ErrorIs(t, err, boom)
	fx.storage.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_RemoveBuyerCascade_MediaFailureIsSwallowed(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	r := fx.repos

	expectTx(ctx, fx.txManager, r)
	r.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(1)).Return(&entity.Buyer{ID: 1, AvatarURL: "https://cdn/a.png"}, nil)
	r.sellerRepo.EXPECT().FindSellerByBuyerID(ctx, uint(1)).Return(nil, repository.ErrSellerNotFound)
	r.chatRepo.EXPECT().FindChatsByParticipant(ctx, uint(1)).Return(nil, nil)
	r.messageRepo.EXPECT().DeleteMessagesBySender(ctx, uint(1)).Return(0, nil)
	r.messageRepo.EXPECT().DeleteMessagesByChats(ctx, []uint{}).Return(0, nil)
	r.chatRepo.EXPECT().DeleteChatsByParticipant(ctx, uint(1)).Return(0, nil)
	r.notifyRepo.EXPECT().DeleteNotificationsByUser(ctx, uint(1)).Return(0, nil)
	r.orderDetailRepo.EXPECT().DeleteOrderDetailsByBuyer(ctx, uint(1)).Return(0, nil)
	r.buyerRepo.EXPECT().DeleteBuyer(ctx, uint(1)).Return(nil)

	fx.storage.EXPECT().PublicIDFromURL("https://cdn/a.png").Return("a", true)
	fx.storage.EXPECT().Destroy(ctx, "a", mock.Anything).Return(errors.New("cdn timeout"))
	fx.metrics.EXPECT().MediaCleanupFailed("buyer_delete").Return()

	removed, err := fx.service.RemoveBuyerCascade(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, uint(1), removed.ID)
}

func TestAccountService_RemoveSellerOnly(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	r := fx.repos

	expectTx(ctx, fx.txManager, r)
	r.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(1)).Return(&entity.Buyer{ID: 1}, nil)
	r.sellerRepo.EXPECT().FindSellerByBuyerID(ctx, uint(1)).Return(&entity.Seller{ID: 5, BuyerID: 1}, nil)
	r.publicationRepo.EXPECT().FindPublicationsBySeller(ctx, uint(5)).Return([]*entity.Publication{{ID: 10}}, nil)
	r.orderDetailRepo.EXPECT().DeleteOrderDetailsByPublication(ctx, uint(10)).Return(0, nil)
	r.publicationRepo.EXPECT().DeletePublicationsBySeller(ctx, uint(5)).Return(1, nil)
	r.sellerRepo.EXPECT().DeleteSeller(ctx, uint(5)).Return(nil)
	fx.cache.EXPECT().Delete(ctx, uint(10)).Return(nil)

	buyer, err := fx.service.RemoveSellerOnly(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, uint(1), buyer.ID)
	r.chatRepo.AssertNotCalled(t, "DeleteChatsByParticipant", mock.Anything, mock.Anything)
	r.buyerRepo.AssertNotCalled(t, "DeleteBuyer", mock.Anything, mock.Anything)
}

func TestAccountService_RemoveSellerOnly_NotASeller(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expectTx(ctx, fx.txManager, fx.repos)
	fx.repos.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(1)).Return(&entity.Buyer{ID: 1}, nil)
	fx.repos.sellerRepo.EXPECT().FindSellerByBuyerID(ctx, uint(1)).Return(nil, repository.ErrSellerNotFound)

	buyer, err := fx.service.RemoveSellerOnly(ctx, 1)

	assert.Nil(t, buyer)
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}
