package cache_test

import (
	"context"
	"errors"
	"hotie/shared/cache"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()

	var res guest

	err := c.Get(ctx, "guest_3", &res)
	assert.True(t, errors.Is(err, cache.Nil))

	require.NoError(t, c.Save(ctx, "guest_3", guest{ID: 3, Name: "Ada"}, 300))
	require.NoError(t, c.Get(ctx, "guest_3", &res))
	assert.Equal(t, guest{ID: 3, Name: "Ada"}, res)

	require.NoError(t, c.Delete(ctx, "guest_3", "all_guests"))

	err = c.Get(ctx, "guest_3", &res)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestMemoryCache_HonoursSaveDuration(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()

	require.NoError(t, c.Save(ctx, "rate_limit:10.0.0.1", 3, 1))
	require.NoError(t, c.Save(ctx, "guest_3", guest{ID: 3}, 300))

	time.Sleep(1100 * time.Millisecond)

	var count int
	assert.True(t, errors.Is(c.Get(ctx, "rate_limit:10.0.0.1", &count), cache.Nil))

	var res guest
	require.NoError(t, c.Get(ctx, "guest_3", &res))
	assert.Equal(t, int64(3), res.ID)
}

func TestMemoryCache_ResaveMovesKeyToNewDuration(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()

	require.NoError(t, c.Save(ctx, "rate_limit:10.0.0.1", 1, 300))
	require.NoError(t, c.Save(ctx, "rate_limit:10.0.0.1", 2, 60))

	var count int
	require.NoError(t, c.Get(ctx, "rate_limit:10.0.0.1", &count))
	assert.Equal(t, 2, count)

	require.NoError(t, c.Delete(ctx, "rate_limit:10.0.0.1"))
	assert.True(t, errors.Is(c.Get(ctx, "rate_limit:10.0.0.1", &count), cache.Nil))
}

func TestInvalidate_BookingDeleteEvictsItsPayments(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()

	require.NoError(t, c.Save(ctx, cache.PaymentKey(9), guest{ID: 9}, 300))
	require.NoError(t, c.Save(ctx, cache.PaymentKey(10), guest{ID: 10}, 300))

	cache.NewInvalidator(c).Invalidate(ctx, cache.WriteBooking, cache.Refs{
		cache.ResourceBooking: {42},
		cache.ResourceRoom:    {7},
		cache.ResourcePayment: {9},
	})

	var res guest

	assert.True(t, errors.Is(c.Get(ctx, cache.PaymentKey(9), &res), cache.Nil))
	require.NoError(t, c.Get(ctx, cache.PaymentKey(10), &res))
	assert.Equal(t, int64(10), res.ID)
}
