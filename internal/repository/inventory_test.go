package repository

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisInventoryStore_Add(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisInventoryStore(client)

	mock.ExpectIncrBy("inventory:seats_reserved", 3).SetVal(3)

	value, err := store.Add(context.Background(), "seats_reserved", 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisInventoryStore_Get(t *testing.T) {
	t.Run("returns the stored counter", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := NewRedisInventoryStore(client)

		mock.ExpectGet("inventory:bookings_created").SetVal("7")

		value, err := store.Get(context.Background(), "bookings_created")

		require.NoError(t, err)
		assert.Equal(t, int64(7), value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing counter reads as zero", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := NewRedisInventoryStore(client)

		mock.ExpectGet("inventory:seats_released").RedisNil()

		value, err := store.Get(context.Background(), "seats_released")

		require.NoError(t, err)
		assert.Zero(t, value)
	})
}

func TestInMemoryInventoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryInventoryStore()

	value, err := store.Add(ctx, "seats_reserved", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), value)

	value, err = store.Add(ctx, "seats_reserved", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), value)

	got, err := store.Get(ctx, "seats_reserved")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)

	missing, err := store.Get(ctx, "unknown")
	require.NoError(t, err)
	assert.Zero(t, missing)
}
