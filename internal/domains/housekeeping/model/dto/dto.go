package dto

import (
	"hotie/internal/domains/housekeeping/model"
	"time"
)

type CreateTaskRequest struct {
	RoomID  *int64 `json:"room_id"  validate:"required"`
	StaffID *int64 `json:"staff_id" validate:"required"`
	Status  string `json:"status"   validate:"required,max=30"`
}

func (CreateTaskRequest) RequiredMessage() string {
	return "room_id, staff_id, and status are required"
}

func (c *CreateTaskRequest) ToModel() model.Task {
	return model.Task{
		RoomID:  *c.RoomID,
		StaffID: *c.StaffID,
		Status:  c.Status,
	}
}

type UpdateTaskRequest struct {
	RoomID  *int64  `db:"room_id"  json:"room_id"`
	StaffID *int64  `db:"staff_id" json:"staff_id"`
	Status  *string `db:"status"   json:"status"   validate:"required,min=1,max=30"`
}

func (UpdateTaskRequest) RequiredMessage() string {
	return "status is required"
}

type TaskResponse struct {
	ID         int64     `json:"id"`
	RoomID     int64     `json:"room_id"`
	StaffID    int64     `json:"staff_id"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
	RoomNumber *string   `json:"room_number,omitempty"`
	StaffName  *string   `json:"staff_name,omitempty"`
}

func (r *TaskResponse) FromModel(model model.Task) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.StaffID = model.StaffID
	r.Status = model.Status
	r.Date = model.Date
	r.RoomNumber = model.RoomNumber
	r.StaffName = model.StaffName
}

func FromModels(models []model.Task) []TaskResponse {
	res := make([]TaskResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
