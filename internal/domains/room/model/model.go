package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID     = "id"
	FieldNumber = "number"
	FieldTypeID = "type_id"
	FieldStatus = "status"
	FieldPrice  = "price"
)

const (
	StatusAvailable = "Available"
	StatusBooked    = "Booked"
	StatusOccupied  = "Occupied"
	StatusCleaning  = "Cleaning"
)

type Room struct {
	ID     int64   `db:"id"      readonly:"true"`
	Number string  `db:"number"`
	TypeID int64   `db:"type_id"`
	Status string  `db:"status"`
	Price  float64 `db:"price"`
}
