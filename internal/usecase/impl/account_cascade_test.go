package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/persistence/model"
	"marketplace/internal/infra/persistence/postgres"
	mockSvc "marketplace/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openSchemaDB opens an in-memory SQLite database with foreign keys enforced and the full schema.
func openSchemaDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// marketplaceSeed creates rows through the real repositories.
type marketplaceSeed struct {
	t   *testing.T
	ctx context.Context
	db  *gorm.DB
}

func (s marketplaceSeed) buyer(first string) *entity.Buyer {
	s.t.Helper()

	buyer := &entity.Buyer{
		FirstName:    first,
		LastName:     "Test",
		Email:        first + "@example.com",
		PasswordHash: "hash",
		AvatarURL:    "https://media.example.com/avatars/" + first + ".png",
	}
	require.NoError(s.t, postgres.NewBuyerRepository(s.db).CreateBuyer(s.ctx, buyer))

	return buyer
}

func (s marketplaceSeed) seller(buyerID uint) *entity.Seller {
	s.t.Helper()

	seller := &entity.Seller{BuyerID: buyerID, RegistrationDate: time.Now()}
	require.NoError(s.t, postgres.NewSellerRepository(s.db).CreateSeller(s.ctx, seller))

	return seller
}

func (s marketplaceSeed) publication(sellerID uint, title string) *entity.Publication {
	s.t.Helper()

	publication := &entity.Publication{
		Title:    title,
		Price:    100,
		SellerID: sellerID,
		ImageURL: "https://media.example.com/publications/" + title + ".png",
	}
	require.NoError(s.t, postgres.NewPublicationRepository(s.db).CreatePublication(s.ctx, publication))

	return publication
}

func (s marketplaceSeed) purchase(publicationID, buyerID uint) {
	s.t.Helper()

	require.NoError(s.t, postgres.NewOrderDetailRepository(s.db).CreateOrderDetail(s.ctx, &entity.OrderDetail{
		PublicationID: publicationID,
		BuyerID:       buyerID,
		Quantity:      1,
		UnitPrice:     100,
	}))
}

func (s marketplaceSeed) chat(userID, buyerID uint) *entity.Chat {
	s.t.Helper()

	chat := &entity.Chat{UserID: userID, BuyerID: buyerID}
	require.NoError(s.t, postgres.NewChatRepository(s.db).CreateChat(s.ctx, chat))

	return chat
}

func (s marketplaceSeed) message(chatID, senderID uint, text string) {
	s.t.Helper()

	require.NoError(s.t, postgres.NewMessageRepository(s.db).CreateMessage(s.ctx, &entity.Message{
		ChatID:   chatID,
		SenderID: senderID,
		Text:     text,
		Time:     time.Now(),
	}))
}

func (s marketplaceSeed) notification(userID uint, senderID *uint, kind entity.NotificationType) *entity.Notification {
	s.t.Helper()

	notification := &entity.Notification{UserID: userID, Description: "d", Type: kind, SenderID: senderID}
	require.NoError(s.t, postgres.NewNotificationRepository(s.db).CreateNotification(s.ctx, notification))

	return notification
}

func countRows(t *testing.T, db *gorm.DB, table any, query string, args ...any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(table).Where(query, args...).Count(&n).Error)

	return n
}

func TestAccountService_RemoveBuyerCascade_SellerWithFullHistory(t *testing.T) {
	const (
		publicationCount = 3
		salesPerItem     = 2
	)

	db := openSchemaDB(t)
	ctx := context.Background()
	seed := marketplaceSeed{t: t, ctx: ctx, db: db}

	target := seed.buyer("ana")
	luis := seed.buyer("luis")
	eva := seed.buyer("eva")
	targetSeller := seed.seller(target.ID)
	evaSeller := seed.seller(eva.ID)

	// Sales: every publication of the target was bought several times by others.
	targetPublications := make([]uint, 0, publicationCount)
	for i := range publicationCount {
		publication := seed.publication(targetSeller.ID, fmt.Sprintf("item-%d", i))
		targetPublications = append(targetPublications, publication.ID)
		for j := range salesPerItem {
			if j%2 == 0 {
				seed.purchase(publication.ID, luis.ID)
			} else {
				seed.purchase(publication.ID, eva.ID)
			}
		}
	}

	// Purchases made by the target from another seller.
	evaPublication := seed.publication(evaSeller.ID, "lampara")
	seed.purchase(evaPublication.ID, target.ID)
	seed.purchase(evaPublication.ID, target.ID)

	// Chats in both roles with messages received and sent.
	asInitiator := seed.chat(target.ID, luis.ID)
	seed.message(asInitiator.ID, target.ID, "hola")
	seed.message(asInitiator.ID, luis.ID, "buenas")
	asCounterpart := seed.chat(eva.ID, target.ID)
	seed.message(asCounterpart.ID, eva.ID, "¿sigue disponible?")
	seed.message(asCounterpart.ID, eva.ID, "¿hola?")
	untouched := seed.chat(luis.ID, eva.ID)
	seed.message(untouched.ID, luis.ID, "te escribo")

	seed.notification(target.ID, &luis.ID, entity.NotificationTypeMessage)
	seed.notification(target.ID, nil, entity.NotificationTypeSaleDone)
	seed.notification(target.ID, nil, entity.NotificationTypePurchaseDone)
	fromTarget := seed.notification(luis.ID, &target.ID, entity.NotificationTypeMessage)
	unrelated := seed.notification(eva.ID, &luis.ID, entity.NotificationTypeMessage)

	storage := mockSvc.NewMockMediaStorage(t)
	cache := mockSvc.NewMockPublicationCache(t)
	metrics := mockSvc.NewMockMetrics(t)

	var evicted []uint
	cache.EXPECT().Delete(mock.Anything, mock.AnythingOfType("uint")).
		Run(func(_ context.Context, id uint) { evicted = append(evicted, id) }).
		Return(nil).Times(publicationCount)

	var destroyed []string
	storage.EXPECT().PublicIDFromURL(mock.AnythingOfType("string")).
		RunAndReturn(func(rawURL string) (string, bool) { return rawURL, true })
	storage.EXPECT().Destroy(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Run(func(_ context.Context, publicID string, _ service.DestroyOptions) {
			destroyed = append(destroyed, publicID)
		}).
		Return(nil).Times(publicationCount + 1)

	svc := NewAccountService(AccountServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		Storage:   storage,
		Cache:     cache,
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	})

	removed, err := svc.RemoveBuyerCascade(ctx, target.ID)

	require.NoError(t, err)
	assert.Equal(t, target.ID, removed.ID)
	assert.ElementsMatch(t, targetPublications, evicted)
	assert.Contains(t, destroyed, target.AvatarURL)

	assert.Zero(t, countRows(t, db, &model.BuyerModel{}, "id = ?", target.ID))
	assert.Zero(t, countRows(t, db, &model.SellerModel{}, "buyer_id = ?", target.ID))
	assert.Zero(t, countRows(t, db, &model.PublicationModel{}, "seller_id = ?", targetSeller.ID))
	assert.Zero(t, countRows(t, db, &model.OrderDetailModel{}, "buyer_id = ?", target.ID))
	assert.Zero(t, countRows(t, db, &model.OrderDetailModel{}, "publication_id IN ?", targetPublications))
	assert.Zero(t, countRows(t, db, &model.ChatModel{}, "user_id = ? OR buyer_id = ?", target.ID, target.ID))
	assert.Zero(t, countRows(t, db, &model.MessageModel{}, "sender_id = ?", target.ID))
	assert.Zero(t, countRows(t, db, &model.MessageModel{}, "chat_id IN ?", []uint{asInitiator.ID, asCounterpart.ID}))
	assert.Zero(t, countRows(t, db, &model.NotificationModel{}, "user_id = ?", target.ID))
	assert.Zero(t, countRows(t, db, &model.NotificationModel{}, "sender_id = ?", target.ID))

	// Everything that belongs to other accounts survives.
	assert.Equal(t, int64(2), countRows(t, db, &model.BuyerModel{}, "id IN ?", []uint{luis.ID, eva.ID}))
	assert.Equal(t, int64(1), countRows(t, db, &model.SellerModel{}, "id = ?", evaSeller.ID))
	assert.Equal(t, int64(1), countRows(t, db, &model.PublicationModel{}, "id = ?", evaPublication.ID))
	assert.Equal(t, int64(1), countRows(t, db, &model.ChatModel{}, "id = ?", untouched.ID))
	assert.Equal(t, int64(1), countRows(t, db, &model.MessageModel{}, "chat_id = ?", untouched.ID))
	assert.Zero(t, countRows(t, db, &model.OrderDetailModel{}, "1 = 1"))

	notifications := postgres.NewNotificationRepository(db)
	kept, err := notifications.FindNotificationByID(ctx, fromTarget.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.SenderID)

	other, err := notifications.FindNotificationByID(ctx, unrelated.ID)
	require.NoError(t, err)
	require.NotNil(t, other.SenderID)
	assert.Equal(t, luis.ID, *other.SenderID)
}

func TestAccountService_RemoveBuyerCascade_UnknownBuyerLeavesDataIntact(t *testing.T) {
	db := openSchemaDB(t)
	ctx := context.Background()
	seed := marketplaceSeed{t: t, ctx: ctx, db: db}

	ana := seed.buyer("ana")
	luis := seed.buyer("luis")
	seed.chat(ana.ID, luis.ID)

	svc := NewAccountService(AccountServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		Storage:   mockSvc.NewMockMediaStorage(t),
		Cache:     mockSvc.NewMockPublicationCache(t),
		Metrics:   mockSvc.NewMockMetrics(t),
		Logger:    newDiscardLogger(),
	})

	removed, err := svc.RemoveBuyerCascade(ctx, 9999)

	assert.Nil(t, removed)
	assert.ErrorIs(t, err, domainerrors.ErrBuyerNotFound)
	assert.Equal(t, int64(2), countRows(t, db, &model.BuyerModel{}, "1 = 1"))
	assert.Equal(t, int64(1), countRows(t, db, &model.ChatModel{}, "1 = 1"))
}
