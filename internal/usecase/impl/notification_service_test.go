package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	chatRepo         *mockRepo.MockChatRepository
	buyerRepo        *mockRepo.MockBuyerRepository
	sellerRepo       *mockRepo.MockSellerRepository
	publicationRepo  *mockRepo.MockPublicationRepository
	publisher        *mockSvc.MockRealtimePublisher
	metrics          *mockSvc.MockMetrics
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		chatRepo:         mockRepo.NewMockChatRepository(t),
		buyerRepo:        mockRepo.NewMockBuyerRepository(t),
		sellerRepo:       mockRepo.NewMockSellerRepository(t),
		publicationRepo:  mockRepo.NewMockPublicationRepository(t),
		publisher:        mockSvc.NewMockRealtimePublisher(t),
		metrics:          mockSvc.NewMockMetrics(t),
	}

	fx.service = NewNotificationService(NotificationServiceParams{
		NotificationRepo: fx.notificationRepo,
		ChatRepo:         fx.chatRepo,
		BuyerRepo:        fx.buyerRepo,
		SellerRepo:       fx.sellerRepo,
		PublicationRepo:  fx.publicationRepo,
		Publisher:        fx.publisher,
		Metrics:          fx.metrics,
		Logger:           newDiscardLogger(),
	})

	return fx
}

func TestNotificationService_ListForUser(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	newest := &entity.Notification{ID: 2, UserID: 5, Title: "b"}
	oldest := &entity.Notification{ID: 1, UserID: 5, Title: "a"}
	fx.notificationRepo.EXPECT().FindNotificationsByUser(ctx, uint(5)).Return([]*entity.Notification{newest, oldest}, nil)

	notifications, err := fx.service.ListForUser(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, []*entity.Notification{newest, oldest}, notifications)
}

func TestNotificationService_ListForUser_EmptyIsNotAnError(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().FindNotificationsByUser(ctx, uint(9)).Return(nil, nil)

	notifications, err := fx.service.ListForUser(ctx, 9)

	require.NoError(t, err)
	assert.NotNil(t, notifications)
	assert.Empty(t, notifications)
}

func TestNotificationService_Delete(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, uint(3)).
		Return(&entity.Notification{ID: 3, Title: "Nuevo/s Mensaje/s"}, nil)
	fx.notificationRepo.EXPECT().DeleteNotification(ctx, uint(3)).Return(nil)

	message, err := fx.service.Delete(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, "La notificación Nuevo/s Mensaje/s ha sido eliminada correctamente", message)
}

func TestNotificationService_Delete_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, uint(3)).Return(nil, repository.ErrNotificationNotFound)

	message, err := fx.service.Delete(ctx, 3)

	require.Error(t, err)
	assert.Empty(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkAsRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().MarkNotificationAsRead(ctx, uint(4)).Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkAsRead(ctx, 4)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_OnMessageSent_CreatesAndPublishes(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	message := &entity.Message{ID: 10, ChatID: 1, SenderID: 3, Text: "hola"}

	fx.chatRepo.EXPECT().FindChatByID(ctx, uint(1)).Return(&entity.Chat{ID: 1, UserID: 3, BuyerID: 7}, nil)
	fx.notificationRepo.EXPECT().ExistsUnreadMessageNotification(ctx, uint(7), uint(3)).Return(false, nil)
	fx.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(3)).Return(&entity.Buyer{ID: 3, FirstName: "Ana", LastName: "Paz"}, nil)
	fx.notificationRepo.EXPECT().CreateMessageNotificationIfAbsent(ctx, mock.AnythingOfType("*entity.Notification")).
		RunAndReturn(func(_ context.Context, n *entity.Notification) (bool, error) {
			n.ID = 99

			return true, nil
		})
	fx.metrics.EXPECT().NotificationCreated(string(entity.NotificationTypeMessage)).Return()
	fx.publisher.EXPECT().Publish(ctx, "7", constants.RealtimeEventNotification, mock.AnythingOfType("*entity.Notification")).Return(nil)

	notification, err := fx.service.OnMessageSent(ctx, message)

	require.NoError(t, err)
	require.NotNil(t, notification)
	assert.Equal(t, uint(99), notification.ID)
	assert.Equal(t, uint(7), notification.UserID)
	assert.Equal(t, "Nuevo/s Mensaje/s", notification.Title)
	assert.Equal(t, entity.NotificationTypeMessage, notification.Type)
	require.NotNil(t, notification.SenderID)
	assert.Equal(t, uint(3), *notification.SenderID)
	assert.Contains(t, notification.Description, "Ana Paz")
}

func TestNotificationService_OnMessageSent_RecipientIsOpenerWhenBuyerWrites(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	message := &entity.Message{ChatID: 1, SenderID: 7}

	fx.chatRepo.EXPECT().FindChatByID(ctx, uint(1)).Return(&entity.Chat{ID: 1, UserID: 3, BuyerID: 7}, nil)
	fx.notificationRepo.EXPECT().ExistsUnreadMessageNotification(ctx, uint(3), uint(7)).Return(true, nil)
	fx.metrics.EXPECT().NotificationSkipped(skipReasonUnreadExists).Return()

	notification, err := fx.service.OnMessageSent(ctx, message)

	require.NoError(t, err)
	assert.Nil(t, notification)
}

func TestNotificationService_OnMessageSent_MissingChat(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.chatRepo.EXPECT().FindChatByID(ctx, uint(42)).Return(nil, repository.ErrChatNotFound)

	notification, err := fx.service.OnMessageSent(ctx, &entity.Message{ChatID: 42, SenderID: 3})

	require.Error(t, err)
	assert.Nil(t, notification)

	var integrityErr *domainerrors.DataIntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, "chat", integrityErr.Entity())
}

func TestNotificationService_OnMessageSent_LostInsertRaceIsSilent(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.chatRepo.EXPECT().FindChatByID(ctx, uint(1)).Return(&entity.Chat{ID: 1, UserID: 3, BuyerID: 7}, nil)
	fx.notificationRepo.EXPECT().ExistsUnreadMessageNotification(ctx, uint(7), uint(3)).Return(false, nil)
	fx.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(3)).Return(&entity.Buyer{ID: 3, FirstName: "Ana"}, nil)
	fx.notificationRepo.EXPECT().CreateMessageNotificationIfAbsent(ctx, mock.Anything).Return(false, nil)
	fx.metrics.EXPECT().NotificationSkipped(skipReasonUnreadExists).Return()

	notification, err := fx.service.OnMessageSent(ctx, &entity.Message{ChatID: 1, SenderID: 3})

	require.NoError(t, err)
	assert.Nil(t, notification)
}

func TestNotificationService_OnMessageSent_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.chatRepo.EXPECT().FindChatByID(ctx, uint(1)).Return(&entity.Chat{ID: 1, UserID: 3, BuyerID: 7}, nil)
	fx.notificationRepo.EXPECT().ExistsUnreadMessageNotification(ctx, uint(7), uint(3)).Return(false, nil)
	fx.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(3)).Return(&entity.Buyer{ID: 3, FirstName: "Ana"}, nil)
	fx.notificationRepo.EXPECT().CreateMessageNotificationIfAbsent(ctx, mock.Anything).Return(true, nil)
	fx.metrics.EXPECT().NotificationCreated(string(entity.NotificationTypeMessage)).Return()
	fx.publisher.EXPECT().Publish(ctx, "7", constants.RealtimeEventNotification, mock.Anything).Return(errors.New("broker down"))
	fx.metrics.EXPECT().RealtimePublishFailed(constants.RealtimeEventNotification).Return()

	notification, err := fx.service.OnMessageSent(ctx, &entity.Message{ChatID: 1, SenderID: 3})

	require.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestNotificationService_OnMessageSent_ConcurrentSendsCreateOneNotification(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	const senders = 20

	// Stand-in for the partial unique index: one unread row per (recipient, sender).
	var (
		mu     sync.Mutex
		stored []*entity.Notification
	)
	key := func(n *entity.Notification) [2]uint { return [2]uint{n.UserID, *n.SenderID} }

	fx.chatRepo.EXPECT().FindChatByID(ctx, uint(1)).Return(&entity.Chat{ID: 1, UserID: 3, BuyerID: 7}, nil)
	fx.notificationRepo.EXPECT().ExistsUnreadMessageNotification(ctx, uint(7), uint(3)).Return(false, nil)
	fx.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(3)).Return(&entity.Buyer{ID: 3, FirstName: "Ana"}, nil)
	fx.notificationRepo.EXPECT().CreateMessageNotificationIfAbsent(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.Notification) (bool, error) {
			mu.Lock()
			defer mu.Unlock()

			for _, existing := range stored {
				if !existing.IsRead && key(existing) == key(n) {
					return false, nil
				}
			}
			n.ID = uint(len(stored) + 1)
			stored = append(stored, n)

			return true, nil
		})
	fx.metrics.EXPECT().NotificationCreated(string(entity.NotificationTypeMessage)).Return().Once()
	fx.metrics.EXPECT().NotificationSkipped(skipReasonUnreadExists).Return().Times(senders - 1)
	fx.publisher.EXPECT().Publish(ctx, "7", constants.RealtimeEventNotification, mock.Anything).Return(nil).Once()

	var (
		wg      sync.WaitGroup
		created sync.Map
	)
	for i := range senders {
		wg.Add(1)
		go func() {
			defer wg.Done()

			notification, err := fx.service.OnMessageSent(ctx, &entity.Message{ID: uint(i + 1), ChatID: 1, SenderID: 3})
			assert.NoError(t, err)
			if notification != nil {
				created.Store(notification.ID, notification)
			}
		}()
	}
	wg.Wait()

	count := 0
	created.Range(func(_, _ any) bool {
		count++

		return true
	})
	assert.Equal(t, 1, count)
	assert.Len(t, stored, 1)
}

func TestNotificationService_OnPurchaseCompleted(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.publicationRepo.EXPECT().FindPublicationByID(ctx, uint(20)).
		Return(&entity.Publication{ID: 20, Title: "Guitarra", SellerID: 4}, nil)
	fx.sellerRepo.EXPECT().FindSellerByID(ctx, uint(4)).Return(&entity.Seller{ID: 4, BuyerID: 8}, nil)
	fx.buyerRepo.EXPECT().FindBuyerByID(ctx, uint(2)).Return(&entity.Buyer{ID: 2, FirstName: "Luis", LastName: "Gil"}, nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil).Times(2)
	fx.metrics.EXPECT().NotificationCreated(string(entity.NotificationTypePurchaseDone)).Return().Once()
	fx.metrics.EXPECT().NotificationCreated(string(entity.NotificationTypeSaleDone)).Return().Once()
	fx.publisher.EXPECT().Publish(ctx, "2", constants.RealtimeEventNotification, mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().Publish(ctx, "8", constants.RealtimeEventNotification, mock.Anything).Return(nil).Once()

	notifications, err := fx.service.OnPurchaseCompleted(ctx, 2, 20)

	require.NoError(t, err)
	require.Len(t, notifications, 2)

	purchase, sale := notifications[0], notifications[1]
	assert.Equal(t, uint(2), purchase.UserID)
	assert.Equal(t, entity.NotificationTypePurchaseDone, purchase.Type)
	assert.Equal(t, "¡Compra exitosa!", purchase.Title)
	assert.Contains(t, purchase.Description, "Guitarra")

	// The sale goes to the seller's owning buyer, not to the seller row id.
	assert.Equal(t, uint(8), sale.UserID)
	assert.Equal(t, entity.NotificationTypeSaleDone, sale.Type)
	assert.Equal(t, "¡Venta exitosa!", sale.Title)
	assert.Contains(t, sale.Description, "Luis Gil")
	assert.Contains(t, sale.Description, "Guitarra")
}

func TestNotificationService_OnPurchaseCompleted_MissingSeller(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.publicationRepo.EXPECT().FindPublicationByID(ctx, uint(20)).Return(&entity.Publication{ID: 20, SellerID: 4}, nil)
	fx.sellerRepo.EXPECT().FindSellerByID(ctx, uint(4)).Return(nil, repository.ErrSellerNotFound)

	notifications, err := fx.service.OnPurchaseCompleted(ctx, 2, 20)

	assert.Nil(t, notifications)

	var integrityErr *domainerrors.DataIntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, "seller", integrityErr.Entity())
}

func TestNotificationService_OnPurchaseCompleted_MissingPublication(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.publicationRepo.EXPECT().FindPublicationByID(ctx, uint(20)).Return(nil, repository.ErrPublicationNotFound)

	_, err := fx.service.OnPurchaseCompleted(ctx, 2, 20)

	var integrityErr *domainerrors.DataIntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, "publication", integrityErr.Entity())
}
