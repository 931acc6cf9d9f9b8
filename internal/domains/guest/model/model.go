package model

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID       = "id"
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldIDNumber = "id_number"
)

type Guest struct {
	ID       int64   `db:"id"        readonly:"true"`
	Name     string  `db:"name"`
	Phone    *string `db:"phone"`
	Email    *string `db:"email"`
	IDNumber *string `db:"id_number"`
}
