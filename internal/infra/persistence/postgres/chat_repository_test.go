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

func TestChatRepository_FindChatBetweenIgnoresRole(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewChatRepository(db)

	ana := seedBuyer(t, db, "Ana", "ana@example.com")
	luis := seedBuyer(t, db, "Luis", "luis@example.com")
	eva := seedBuyer(t, db, "Eva", "eva@example.com")

	chat := &entity.Chat{UserID: ana.ID, BuyerID: luis.ID}
	require.NoError(t, repo.CreateChat(ctx, chat))

	found, err := repo.FindChatBetween(ctx, luis.ID, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, chat.ID, found.ID)

	_, err = repo.FindChatBetween(ctx, ana.ID, eva.ID)
	assert.ErrorIs(t, err, repository.ErrChatNotFound)
}

func TestChatRepository_CreateChatRejectsUnknownParticipant(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewChatRepository(db)

	ana := seedBuyer(t, db, "Ana", "ana@example.com")

	err := repo.CreateChat(ctx, &entity.Chat{UserID: ana.ID, BuyerID: 9999})
	assert.ErrorIs(t, err, repository.ErrBuyerNotFound)

	err = repo.CreateChat(ctx, &entity.Chat{UserID: 9999, BuyerID: ana.ID})
	assert.ErrorIs(t, err, repository.ErrBuyerNotFound)

	chats, err := repo.FindChatsByParticipant(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, chats)
}

func TestMessageRepository_CreateMessageRejectsUnknownChat(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewMessageRepository(db)

	ana := seedBuyer(t, db, "Ana", "ana@example.com")

	err := repo.CreateMessage(ctx, &entity.Message{ChatID: 77, SenderID: ana.ID, Text: "hola", Time: time.Now()})
	assert.ErrorIs(t, err, repository.ErrChatNotFound)
}

func TestChatRepository_DeleteChatsByParticipant(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	chats := NewChatRepository(db)
	messages := NewMessageRepository(db)

	ana := seedBuyer(t, db, "Ana", "ana@example.com")
	luis := seedBuyer(t, db, "Luis", "luis@example.com")
	eva := seedBuyer(t, db, "Eva", "eva@example.com")

	asInitiator := &entity.Chat{UserID: ana.ID, BuyerID: luis.ID}
	asCounterpart := &entity.Chat{UserID: eva.ID, BuyerID: ana.ID}
	unrelated := &entity.Chat{UserID: luis.ID, BuyerID: eva.ID}
	for _, c := range []*entity.Chat{asInitiator, asCounterpart, unrelated} {
		require.NoError(t, chats.CreateChat(ctx, c))
	}

	participating, err := chats.FindChatsByParticipant(ctx, ana.ID)
	require.NoError(t, err)
	assert.Len(t, participating, 2)

	now := time.Now()
	require.NoError(t, messages.CreateMessage(ctx, &entity.Message{ChatID: asInitiator.ID, SenderID: luis.ID, Text: "hola", Time: now}))
	require.NoError(t, messages.CreateMessage(ctx, &entity.Message{ChatID: asCounterpart.ID, SenderID: eva.ID, Text: "hola", Time: now}))
	require.NoError(t, messages.CreateMessage(ctx, &entity.Message{ChatID: asCounterpart.ID, SenderID: ana.ID, Text: "chau", Time: now}))

	deleted, err := messages.DeleteMessagesBySender(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = messages.DeleteMessagesByChats(ctx, []uint{asInitiator.ID, asCounterpart.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = chats.DeleteChatsByParticipant(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = chats.FindChatByID(ctx, unrelated.ID)
	assert.NoError(t, err)
}

func TestMessageRepository_FindMessagesByChatOrdered(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewMessageRepository(db)

	ana := seedBuyer(t, db, "Ana", "ana@example.com")
	luis := seedBuyer(t, db, "Luis", "luis@example.com")
	chat := &entity.Chat{UserID: ana.ID, BuyerID: luis.ID}
	require.NoError(t, NewChatRepository(db).CreateChat(ctx, chat))

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateMessage(ctx, &entity.Message{ChatID: chat.ID, SenderID: ana.ID, Text: "second", Time: base.Add(time.Minute)}))
	require.NoError(t, repo.CreateMessage(ctx, &entity.Message{ChatID: chat.ID, SenderID: luis.ID, Text: "first", Time: base}))

	list, err := repo.FindMessagesByChat(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Text)
	assert.Equal(t, "second", list[1].Text)

	deleted, err := repo.DeleteMessagesByChats(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
