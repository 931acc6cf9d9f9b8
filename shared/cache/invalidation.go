package cache

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"
)

// Write is a kind of store mutation that can make cached reads stale.
type Write int

const (
	WriteRoom Write = iota + 1
	WriteBooking
	WriteGuest
	WritePayment
	WriteHousekeeping
)

func (w Write) String() string {
	switch w {
	case WriteRoom:
		return "room"
	case WriteBooking:
		return "booking"
	case WriteGuest:
		return "guest"
	case WritePayment:
		return "payment"
	case WriteHousekeeping:
		return "housekeeping"
	default:
		return "unknown"
	}
}

// Policy lists, for every write, each read whose cached result may have
// observed the written rows.
var Policy = map[Write][]Read{
	WriteBooking: {
		ReadBookings, ReadBooking, ReadAvailableRooms, ReadRooms, ReadRoom,
		ReadPayments, ReadPayment,
	},
	WriteRoom: {
		ReadRooms, ReadAvailableRooms, ReadRoom,
		ReadBookings, ReadPayments, ReadHousekeepingTasks,
	},
	WriteGuest:        {ReadGuests, ReadGuest, ReadBookings, ReadPayments},
	WritePayment:      {ReadPayments, ReadPayment},
	WriteHousekeeping: {ReadHousekeepingTasks, ReadHousekeepingTask},
}

// Refs carries the ids touched by a write, grouped by resource. A booking
// moved between rooms lists both room ids.
type Refs map[Resource][]int64

// Keys resolves the cache keys a write must evict. Single reads without a
// matching id in refs are skipped.
func Keys(write Write, refs Refs) []string {
	keys := []string{}

	for _, read := range Policy[write] {
		if !read.Single() {
			keys = append(keys, read.Key(0))

			continue
		}

		for _, id := range refs[read.Resource()] {
			keys = append(keys, read.Key(id))
		}
	}

	slices.Sort(keys)

	return slices.Compact(keys)
}

// Invalidator evicts the keys a committed write made stale.
type Invalidator struct {
	cache Cache
}

func NewInvalidator(c Cache) *Invalidator {
	return &Invalidator{cache: c}
}

// Invalidate deletes every key for write in one call. It is detached from
// request cancellation and never fails the caller; a failed delete leaves the
// entries to expire with their TTL.
func (i *Invalidator) Invalidate(ctx context.Context, write Write, refs Refs) {
	keys := Keys(write, refs)
	if len(keys) == 0 {
		return
	}

	if err := i.cache.Delete(context.WithoutCancel(ctx), keys...); err != nil {
		log.Error().Err(err).Str("write", write.String()).Strs("keys", keys).Msg("failed to invalidate cache")

		return
	}

	log.Debug().Str("write", write.String()).Strs("keys", keys).Msg("cache invalidated")
}
