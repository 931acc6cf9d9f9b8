package model

import "time"

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldAmount    = "amount"
	FieldMethod    = "method"
	FieldPaidAt    = "paid_at"
)

type Payment struct {
	ID        int64     `db:"id"         readonly:"true"`
	BookingID int64     `db:"booking_id"`
	Amount    float64   `db:"amount"`
	Method    string    `db:"method"`
	PaidAt    time.Time `db:"paid_at"    readonly:"true"`

	GuestName  *string `db:"guest_name"  table:"guests" column:"name"`
	RoomNumber *string `db:"room_number" table:"rooms"  column:"number"`
}

func (Payment) GetJoinQuery() string {
	return `LEFT JOIN bookings ON payments.booking_id = bookings.id
		LEFT JOIN guests ON bookings.guest_id = guests.id
		LEFT JOIN rooms ON bookings.room_id = rooms.id`
}
