package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_CreateMessageNotificationIfAbsent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewNotificationRepository(db)

	recipient := seedBuyer(t, db, "Ana", "ana@example.com")
	sender := seedBuyer(t, db, "Luis", "luis@example.com")

	newMessageNotification := func() *entity.Notification {
		return &entity.Notification{
			UserID:      recipient.ID,
			Title:       "Nuevo/s Mensaje/s",
			Description: "Luis Test te ha enviado un mensaje",
			Type:        entity.NotificationTypeMessage,
			SenderID:    ptr(sender.ID),
		}
	}

	first := newMessageNotification()
	created, err := repo.CreateMessageNotificationIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, first.ID)

	exists, err := repo.ExistsUnreadMessageNotification(ctx, recipient.ID, sender.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	created, err = repo.CreateMessageNotificationIfAbsent(ctx, newMessageNotification())
	require.NoError(t, err)
	assert.False(t, created)

	// Once read, the pair can be notified again.
	require.NoError(t, repo.MarkNotificationAsRead(ctx, first.ID))

	exists, err = repo.ExistsUnreadMessageNotification(ctx, recipient.ID, sender.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	created, err = repo.CreateMessageNotificationIfAbsent(ctx, newMessageNotification())
	require.NoError(t, err)
	assert.True(t, created)

	list, err := repo.FindNotificationsByUser(ctx, recipient.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestNotificationRepository_PurchaseNotificationsAreNotDeduplicated(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewNotificationRepository(db)

	buyer := seedBuyer(t, db, "Ana", "ana@example.com")

	for range 2 {
		require.NoError(t, repo.CreateNotification(ctx, &entity.Notification{
			UserID:      buyer.ID,
			Title:       "¡Compra exitosa!",
			Description: "Compraste Bicicleta",
			Type:        entity.NotificationTypePurchaseDone,
		}))
	}

	list, err := repo.FindNotificationsByUser(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestNotificationRepository_FindNotificationsByUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewNotificationRepository(db)

	buyer := seedBuyer(t, db, "Ana", "ana@example.com")
	other := seedBuyer(t, db, "Luis", "luis@example.com")
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	for i, title := range []string{"old", "newest", "middle"} {
		offset := map[string]time.Duration{"old": 0, "newest": 2 * time.Hour, "middle": time.Hour}[title]
		require.NoError(t, repo.CreateNotification(ctx, &entity.Notification{
			UserID:      buyer.ID,
			Title:       title,
			Description: "d",
			Type:        entity.NotificationTypeSaleDone,
			CreatedAt:   base.Add(offset),
		}), "notification %d", i)
	}
	require.NoError(t, repo.CreateNotification(ctx, &entity.Notification{
		UserID: other.ID, Description: "d", Type: entity.NotificationTypeSaleDone,
	}))

	list, err := repo.FindNotificationsByUser(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "newest", list[0].Title)
	assert.Equal(t, "middle", list[1].Title)
	assert.Equal(t, "old", list[2].Title)

	empty, err := repo.FindNotificationsByUser(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNotificationRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewNotificationRepository(db)

	_, err := repo.FindNotificationByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)

	assert.ErrorIs(t, repo.DeleteNotification(ctx, 42), repository.ErrNotificationNotFound)
	assert.ErrorIs(t, repo.MarkNotificationAsRead(ctx, 42), repository.ErrNotificationNotFound)
}

func TestNotificationRepository_OptionalTitle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewNotificationRepository(db)

	buyer := seedBuyer(t, db, "Ana", "ana@example.com")
	notification := &entity.Notification{UserID: buyer.ID, Description: "d", Type: entity.NotificationTypeSaleDone}
	require.NoError(t, repo.CreateNotification(ctx, notification))

	found, err := repo.FindNotificationByID(ctx, notification.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Title)
	assert.Nil(t, found.SenderID)
	assert.False(t, found.IsRead)
}

func TestNotificationRepository_SenderRemovalClearsReference(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewNotificationRepository(db)

	recipient := seedBuyer(t, db, "Ana", "ana@example.com")
	sender := seedBuyer(t, db, "Luis", "luis@example.com")

	notification := &entity.Notification{
		UserID:      recipient.ID,
		Description: "Luis Test te ha enviado un mensaje",
		Type:        entity.NotificationTypeMessage,
		SenderID:    ptr(sender.ID),
	}
	require.NoError(t, repo.CreateNotification(ctx, notification))

	require.NoError(t, NewBuyerRepository(db).DeleteBuyer(ctx, sender.ID))

	found, err := repo.FindNotificationByID(ctx, notification.ID)
	require.NoError(t, err)
	assert.Nil(t, found.SenderID)
}
