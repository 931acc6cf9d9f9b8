package dto

import (
	"hotie/internal/domains/guest/model"
)

type CreateGuestRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=30"`
	Email    string `json:"email"     validate:"omitempty,email,max=100"`
	IDNumber string `json:"id_number" validate:"omitempty,max=50"`
}

func (CreateGuestRequest) RequiredMessage() string {
	return "Guest name is required"
}

// ToModel stores blank optional fields as NULL.
func (c *CreateGuestRequest) ToModel() model.Guest {
	return model.Guest{
		Name:     c.Name,
		Phone:    nullable(c.Phone),
		Email:    nullable(c.Email),
		IDNumber: nullable(c.IDNumber),
	}
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

type UpdateGuestRequest struct {
	Name     *string `db:"name"      json:"name"      validate:"omitempty,min=1,max=100"`
	Phone    *string `db:"phone"     json:"phone"     validate:"omitempty,max=30"`
	Email    *string `db:"email"     json:"email"     validate:"omitempty,email,max=100"`
	IDNumber *string `db:"id_number" json:"id_number" validate:"omitempty,max=50"`
}

type GuestResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	IDNumber *string `json:"id_number"`
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Email = model.Email
	r.IDNumber = model.IDNumber
}

func FromModels(models []model.Guest) []GuestResponse {
	res := make([]GuestResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
