package cache_test

import (
	"context"
	"errors"
	"hotie/shared/cache"
	"hotie/shared/cache/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestKeys(t *testing.T) {
	tests := []struct {
		name  string
		write cache.Write
		refs  cache.Refs
		want  []string
	}{
		{
			name:  "booking create",
			write: cache.WriteBooking,
			refs:  cache.Refs{cache.ResourceBooking: {42}, cache.ResourceRoom: {7}},
			want:  []string{"all_bookings", "all_payments", "all_rooms", "available_rooms", "booking_42", "room_7"},
		},
		{
			name:  "booking moved between rooms",
			write: cache.WriteBooking,
			refs:  cache.Refs{cache.ResourceBooking: {42}, cache.ResourceRoom: {7, 8}},
			want:  []string{"all_bookings", "all_payments", "all_rooms", "available_rooms", "booking_42", "room_7", "room_8"},
		},
		{
			name:  "booking delete with its payments",
			write: cache.WriteBooking,
			refs:  cache.Refs{cache.ResourceBooking: {42}, cache.ResourceRoom: {7}, cache.ResourcePayment: {9, 11}},
			want: []string{
				"all_bookings", "all_payments", "all_rooms", "available_rooms",
				"booking_42", "payment_11", "payment_9", "room_7",
			},
		},
		{
			name:  "room update",
			write: cache.WriteRoom,
			refs:  cache.Refs{cache.ResourceRoom: {7}},
			want:  []string{"all_bookings", "all_housekeeping", "all_payments", "all_rooms", "available_rooms", "room_7"},
		},
		{
			name:  "guest update",
			write: cache.WriteGuest,
			refs:  cache.Refs{cache.ResourceGuest: {3}},
			want:  []string{"all_bookings", "all_guests", "all_payments", "guest_3"},
		},
		{
			name:  "payment delete",
			write: cache.WritePayment,
			refs:  cache.Refs{cache.ResourcePayment: {9}},
			want:  []string{"all_payments", "payment_9"},
		},
		{
			name:  "housekeeping create without id keeps collection key",
			write: cache.WriteHousekeeping,
			want:  []string{"all_housekeeping"},
		},
		{
			name:  "duplicate ids collapse",
			write: cache.WritePayment,
			refs:  cache.Refs{cache.ResourcePayment: {9, 9}},
			want:  []string{"all_payments", "payment_9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cache.Keys(tt.write, tt.refs))
		})
	}
}

func TestPolicyCoversEveryWrite(t *testing.T) {
	for _, write := range []cache.Write{
		cache.WriteRoom, cache.WriteBooking, cache.WriteGuest, cache.WritePayment, cache.WriteHousekeeping,
	} {
		assert.NotEmpty(t, cache.Policy[write], write.String())
	}

	// Every write that can move a room must evict the availability list.
	assert.Contains(t, cache.Policy[cache.WriteBooking], cache.ReadAvailableRooms)
	assert.Contains(t, cache.Policy[cache.WriteRoom], cache.ReadAvailableRooms)
}

func TestInvalidator_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockCache(ctrl)
	invalidator := cache.NewInvalidator(mockCache)

	t.Run("deletes all keys in one call", func(t *testing.T) {
		mockCache.EXPECT().
			Delete(gomock.Any(), "all_payments", "payment_9").
			Return(nil)

		invalidator.Invalidate(context.Background(), cache.WritePayment, cache.Refs{cache.ResourcePayment: {9}})
	})

	t.Run("cache failure is swallowed", func(t *testing.T) {
		mockCache.EXPECT().
			Delete(gomock.Any(), "all_housekeeping").
			Return(errors.New("connection refused"))

		assert.NotPanics(t, func() {
			invalidator.Invalidate(context.Background(), cache.WriteHousekeeping, nil)
		})
	})

	t.Run("survives a cancelled request", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		mockCache.EXPECT().
			Delete(gomock.Any(), "all_housekeeping").
			DoAndReturn(func(ctx context.Context, _ ...string) error {
				assert.NoError(t, ctx.Err())

				return nil
			})

		invalidator.Invalidate(ctx, cache.WriteHousekeeping, nil)
	})
}
