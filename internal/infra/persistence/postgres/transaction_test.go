package postgres

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)

	buyer := seedBuyer(t, db, "Ana", "ana@example.com")
	errBoom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewNotificationRepository().CreateNotification(ctx, &entity.Notification{
			UserID: buyer.ID, Description: "d", Type: entity.NotificationTypeSaleDone,
		}); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	list, err := NewNotificationRepository(db).FindNotificationsByUser(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTransactionManager_BuyerCascadeDeletesNotifications(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)

	buyer := seedBuyer(t, db, "Ana", "ana@example.com")
	require.NoError(t, NewNotificationRepository(db).CreateNotification(ctx, &entity.Notification{
		UserID: buyer.ID, Description: "d", Type: entity.NotificationTypeSaleDone,
	}))

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewNotificationRepository().DeleteNotificationsByUser(ctx, buyer.ID); err != nil {
			return err
		}

		return factory.NewBuyerRepository().DeleteBuyer(ctx, buyer.ID)
	})
	require.NoError(t, err)

	_, err = NewBuyerRepository(db).FindBuyerByID(ctx, buyer.ID)
	assert.ErrorIs(t, err, repository.ErrBuyerNotFound)

	list, err := NewNotificationRepository(db).FindNotificationsByUser(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
