package dto

import (
	"hotie/internal/domains/booking/model"
	"hotie/shared"
	"hotie/shared/constant"
	"hotie/shared/failure"
	"hotie/shared/timezone"
	"time"
)

const invalidStayMessage = "check_out must not be before check_in"

type CreateBookingRequest struct {
	GuestID  *int64 `json:"guest_id"  validate:"required"`
	RoomID   *int64 `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required,date"`
	CheckOut string `json:"check_out" validate:"required,date"`
	Status   string `json:"status"    validate:"omitempty,max=30"`
}

func (CreateBookingRequest) RequiredMessage() string {
	return "guest_id, room_id, check_in, and check_out are required"
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, err := timezone.ParseDate(c.CheckIn)
	if err != nil {
		return model.Booking{}, failure.BadRequest(err)
	}

	checkOut, err := timezone.ParseDate(c.CheckOut)
	if err != nil {
		return model.Booking{}, failure.BadRequest(err)
	}

	if checkOut.Before(checkIn) {
		return model.Booking{}, failure.BadRequestFromString(invalidStayMessage)
	}

	status := model.StatusReserved
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		GuestID:  *c.GuestID,
		RoomID:   *c.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   status,
	}, nil
}

// UpdateBookingRequest is a partial update. Omitted fields keep their value.
type UpdateBookingRequest struct {
	GuestID  *int64  `db:"guest_id" json:"guest_id"`
	RoomID   *int64  `db:"room_id"  json:"room_id"`
	CheckIn  *string `json:"check_in"  validate:"omitempty,date"`
	CheckOut *string `json:"check_out" validate:"omitempty,date"`
	Status   *string `db:"status"   json:"status"   validate:"omitempty,min=1,max=30"`
}

// ToFields returns the columns to write, with the stay dates checked against
// the booking they are applied to.
func (u *UpdateBookingRequest) ToFields(current model.Booking) (map[string]any, error) {
	fields := shared.TransformFields(u)

	checkIn, checkOut := current.CheckIn, current.CheckOut

	if u.CheckIn != nil {
		date, err := timezone.ParseDate(*u.CheckIn)
		if err != nil {
			return nil, failure.BadRequest(err)
		}

		checkIn = date
		fields[model.FieldCheckIn] = date
	}

	if u.CheckOut != nil {
		date, err := timezone.ParseDate(*u.CheckOut)
		if err != nil {
			return nil, failure.BadRequest(err)
		}

		checkOut = date
		fields[model.FieldCheckOut] = date
	}

	if checkOut.Before(checkIn) {
		return nil, failure.BadRequestFromString(invalidStayMessage)
	}

	return fields, nil
}

type BookingResponse struct {
	ID         int64   `json:"id"`
	GuestID    int64   `json:"guest_id"`
	RoomID     int64   `json:"room_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Status     string  `json:"status"`
	GuestName  *string `json:"guest_name,omitempty"`
	RoomNumber *string `json:"room_number,omitempty"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.CheckIn = formatDate(model.CheckIn)
	r.CheckOut = formatDate(model.CheckOut)
	r.Status = model.Status
	r.GuestName = model.GuestName
	r.RoomNumber = model.RoomNumber
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// DATE columns come back at midnight UTC; shifting them into the app zone
// could move them a day.
func formatDate(t time.Time) string {
	return t.Format(constant.DateOnlyFormat)
}
