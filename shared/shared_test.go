package shared_test

import (
	"hotie/shared"
	"hotie/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int64
		wantOK bool
	}{
		{name: "valid id", input: "42", want: 42, wantOK: true},
		{name: "zero", input: "0"},
		{name: "negative", input: "-3"},
		{name: "not a number", input: "abc"},
		{name: "empty", input: ""},
		{name: "overflow", input: "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := shared.ParseID(tt.input)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

type updateGuest struct {
	Name     *string `db:"name"`
	Phone    *string `db:"phone"`
	Email    string  `db:"email"`
	Internal string
}

func TestTransformFields(t *testing.T) {
	name := "Ada"
	empty := ""

	got := shared.TransformFields(updateGuest{Name: &name, Phone: &empty, Internal: "skip"})

	assert.Equal(t, map[string]any{"name": "Ada", "phone": ""}, got)
}

func TestTransformFieldsPointerInput(t *testing.T) {
	got := shared.TransformFields(&updateGuest{Email: "ada@example.com"})

	assert.Equal(t, map[string]any{"email": "ada@example.com"}, got)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(7, "id", "rooms")
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(7)}, args)
}

func TestFilterByIDAndField(t *testing.T) {
	group := shared.FilterByIDAndField(7, "id", "status", "Available", "rooms")
	where, args := group.GetWhereClause()

	assert.Equal(t, dto.FilterGroupOperatorAnd, group.Operator)
	assert.Equal(t, "(rooms.id = :id AND rooms.status = :current_status)", where)
	assert.Equal(t, map[string]any{"id": int64(7), "current_status": "Available"}, args)
}
