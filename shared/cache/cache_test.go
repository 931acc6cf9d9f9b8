package cache_test

import (
	"context"
	"errors"
	otelMocks "hotie/infras/otel/mocks"
	"hotie/shared/cache"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_Save(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisCache(db, otelMocks.NewOtel())

	mockRedis.ExpectSet("guest_3", []byte(`{"id":3,"name":"Ada"}`), 300*time.Second).SetVal("OK")

	err := c.Save(context.Background(), "guest_3", guest{ID: 3, Name: "Ada"}, 300)

	require.NoError(t, err)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisCache_Get(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisCache(db, otelMocks.NewOtel())
	ctx := context.Background()

	t.Run("hit decodes json", func(t *testing.T) {
		mockRedis.ExpectGet("guest_3").SetVal(`{"id":3,"name":"Ada"}`)

		var got guest
		require.NoError(t, c.Get(ctx, "guest_3", &got))
		assert.Equal(t, guest{ID: 3, Name: "Ada"}, got)
	})

	t.Run("miss wraps nil", func(t *testing.T) {
		mockRedis.ExpectGet("guest_4").RedisNil()

		var got guest
		err := c.Get(ctx, "guest_4", &got)
		assert.ErrorIs(t, err, cache.Nil)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		mockRedis.ExpectGet("guest_5").SetVal(`{not json`)

		var got guest
		err := c.Get(ctx, "guest_5", &got)
		require.Error(t, err)
		assert.NotErrorIs(t, err, cache.Nil)
	})

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisCache_Delete(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisCache(db, otelMocks.NewOtel())
	ctx := context.Background()

	mockRedis.ExpectDel("all_guests", "guest_3").SetVal(1)
	require.NoError(t, c.Delete(ctx, "all_guests", "guest_3"))

	mockRedis.ExpectDel("all_guests").SetErr(errors.New("connection reset"))
	assert.Error(t, c.Delete(ctx, "all_guests"))

	// Nothing to delete issues no command.
	assert.NoError(t, c.Delete(ctx))

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestMemoryCache_DeleteIsIdempotent(t *testing.T) {
	c := newMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "payment_1", guest{ID: 1}, 300))
	require.NoError(t, c.Delete(ctx, "payment_1", "payment_2"))
	require.NoError(t, c.Delete(ctx, "payment_1"))

	var got guest
	assert.ErrorIs(t, c.Get(ctx, "payment_1", &got), cache.Nil)
}
