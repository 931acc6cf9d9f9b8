package model

import "time"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID       = "id"
	FieldGuestID  = "guest_id"
	FieldRoomID   = "room_id"
	FieldCheckIn  = "check_in"
	FieldCheckOut = "check_out"
	FieldStatus   = "status"
)

const StatusReserved = "Reserved"

type Booking struct {
	ID       int64     `db:"id"        readonly:"true"`
	GuestID  int64     `db:"guest_id"`
	RoomID   int64     `db:"room_id"`
	CheckIn  time.Time `db:"check_in"`
	CheckOut time.Time `db:"check_out"`
	Status   string    `db:"status"`

	GuestName  *string `db:"guest_name"  table:"guests" column:"name"`
	RoomNumber *string `db:"room_number" table:"rooms"  column:"number"`
}

func (Booking) GetJoinQuery() string {
	return `LEFT JOIN guests ON bookings.guest_id = guests.id
		LEFT JOIN rooms ON bookings.room_id = rooms.id`
}
