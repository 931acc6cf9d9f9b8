package dto

import (
	"hotie/internal/domains/room/model"
)

type CreateRoomRequest struct {
	Number *string  `json:"number"  validate:"required,min=1,max=20"`
	TypeID *int64   `json:"type_id" validate:"required"`
	Status *string  `json:"status"  validate:"omitempty,oneof=Available"`
	Price  *float64 `json:"price"   validate:"required,gte=0"`
}

func (CreateRoomRequest) RequiredMessage() string {
	return "number, type_id, and price are required"
}

// ToModel always starts the room as Available; only booking transitions
// move it on from there.
func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		Number: *c.Number,
		TypeID: *c.TypeID,
		Status: model.StatusAvailable,
		Price:  *c.Price,
	}
}

// UpdateRoomRequest never carries a status: room state only moves through
// booking transitions.
type UpdateRoomRequest struct {
	Number *string  `db:"number"  json:"number"  validate:"omitempty,min=1,max=20"`
	TypeID *int64   `db:"type_id" json:"type_id" validate:"omitempty"`
	Price  *float64 `db:"price"   json:"price"   validate:"omitempty,gte=0"`
}

type RoomResponse struct {
	ID     int64   `json:"id"`
	Number string  `json:"number"`
	TypeID int64   `json:"type_id"`
	Status string  `json:"status"`
	Price  float64 `json:"price"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.TypeID = model.TypeID
	r.Status = model.Status
	r.Price = model.Price
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
