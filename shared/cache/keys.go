package cache

import "strconv"

// Resource names an entity whose rows can back a cached read.
type Resource string

const (
	ResourceRoom         Resource = "room"
	ResourceBooking      Resource = "booking"
	ResourceGuest        Resource = "guest"
	ResourcePayment      Resource = "payment"
	ResourceHousekeeping Resource = "housekeeping"
)

// Read is a cacheable read shape. Collection reads map to one fixed key,
// single reads to one key per id.
type Read int

const (
	ReadRooms Read = iota + 1
	ReadAvailableRooms
	ReadRoom
	ReadBookings
	ReadBooking
	ReadGuests
	ReadGuest
	ReadPayments
	ReadPayment
	ReadHousekeepingTasks
	ReadHousekeepingTask
)

type readKey struct {
	name     string
	resource Resource
	single   bool
}

var readKeys = map[Read]readKey{
	ReadRooms:             {name: "all_rooms"},
	ReadAvailableRooms:    {name: "available_rooms"},
	ReadRoom:              {name: "room_", resource: ResourceRoom, single: true},
	ReadBookings:          {name: "all_bookings"},
	ReadBooking:           {name: "booking_", resource: ResourceBooking, single: true},
	ReadGuests:            {name: "all_guests"},
	ReadGuest:             {name: "guest_", resource: ResourceGuest, single: true},
	ReadPayments:          {name: "all_payments"},
	ReadPayment:           {name: "payment_", resource: ResourcePayment, single: true},
	ReadHousekeepingTasks: {name: "all_housekeeping"},
	ReadHousekeepingTask:  {name: "housekeeping_", resource: ResourceHousekeeping, single: true},
}

// Single reports whether the read is keyed by an entity id.
func (r Read) Single() bool {
	return readKeys[r].single
}

// Resource returns the entity a single read is keyed by.
func (r Read) Resource() Resource {
	return readKeys[r].resource
}

// Key returns the cache key for the read. The id is ignored for collection reads.
func (r Read) Key(id int64) string {
	k, ok := readKeys[r]
	if !ok {
		return ""
	}

	if !k.single {
		return k.name
	}

	return k.name + strconv.FormatInt(id, 10)
}

func (r Read) String() string {
	k := readKeys[r]
	if k.single {
		return k.name + "{id}"
	}

	return k.name
}

func RoomsKey() string { return ReadRooms.Key(0) }
func AvailableRoomsKey() string { return ReadAvailableRooms.Key(0) }
func RoomKey(id int64) string { return ReadRoom.Key(id) }
func BookingsKey() string { return ReadBookings.Key(0) }
func BookingKey(id int64) string { return ReadBooking.Key(id) }
func GuestsKey() string { return ReadGuests.Key(0) }
func GuestKey(id int64) string { return ReadGuest.Key(id) }
func PaymentsKey() string { return ReadPayments.Key(0) }
func PaymentKey(id int64) string { return ReadPayment.Key(id) }
func HousekeepingTasksKey() string { return ReadHousekeepingTasks.Key(0) }

func HousekeepingTaskKey(id int64) string {
	return ReadHousekeepingTask.Key(id)
}
