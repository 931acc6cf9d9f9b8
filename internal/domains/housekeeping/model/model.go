package model

import "time"

const (
	TableName  = "housekeeping"
	EntityName = "housekeeping"

	FieldID      = "id"
	FieldRoomID  = "room_id"
	FieldStaffID = "staff_id"
	FieldStatus  = "status"
	FieldDate    = "date"
)

type Task struct {
	ID      int64     `db:"id"       readonly:"true"`
	RoomID  int64     `db:"room_id"`
	StaffID int64     `db:"staff_id"`
	Status  string    `db:"status"`
	Date    time.Time `db:"date"     readonly:"true"`

	RoomNumber *string `db:"room_number" table:"rooms" column:"number"`
	StaffName  *string `db:"staff_name"  table:"users" column:"name"`
}

func (Task) GetJoinQuery() string {
	return `LEFT JOIN rooms ON housekeeping.room_id = rooms.id
		LEFT JOIN users ON housekeeping.staff_id = users.id`
}
