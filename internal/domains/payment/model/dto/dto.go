package dto

import (
	"hotie/internal/domains/payment/model"
	"time"
)

type CreatePaymentRequest struct {
	BookingID *int64   `json:"booking_id" validate:"required"`
	Amount    *float64 `json:"amount"     validate:"required,gt=0"`
	Method    string   `json:"method"     validate:"required,max=30"`
}

func (CreatePaymentRequest) RequiredMessage() string {
	return "booking_id, amount, and method are required"
}

func (c *CreatePaymentRequest) ToModel() model.Payment {
	return model.Payment{
		BookingID: *c.BookingID,
		Amount:    *c.Amount,
		Method:    c.Method,
	}
}

type UpdatePaymentRequest struct {
	Amount *float64 `db:"amount" json:"amount" validate:"omitempty,gt=0"`
	Method *string  `db:"method" json:"method" validate:"omitempty,min=1,max=30"`
}

type PaymentResponse struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	PaidAt     time.Time `json:"paid_at"`
	GuestName  *string   `json:"guest_name,omitempty"`
	RoomNumber *string   `json:"room_number,omitempty"`
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Method = model.Method
	r.PaidAt = model.PaidAt
	r.GuestName = model.GuestName
	r.RoomNumber = model.RoomNumber
}

func FromModels(models []model.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
