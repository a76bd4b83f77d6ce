package validate

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name     string   `json:"name" validate:"required,max=10"`
	Category string   `json:"category" validate:"required,oneof=irrigation harvesting"`
	Area     *float64 `json:"area_value" validate:"required,gt=0"`
	Started  *string  `json:"started_on" validate:"omitempty,datetime=2006-01-02"`
	Lat      *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
}

func ptr[T any](v T) *T { return &v }

func TestStructMessages(t *testing.T) {
	ve := Struct(sample{
		Name:     "a name that is too long",
		Category: "invalid_category",
		Area:     ptr(0.0),
		Started:  ptr("01/02/2026"),
		Lat:      ptr(91.0),
	})
	assert.Equal(t, []string{"The name field must not be greater than 10 characters."}, ve.Fields["name"])
	assert.Equal(t, []string{"The selected category is invalid."}, ve.Fields["category"])
	assert.Equal(t, []string{"The area value field must be greater than 0."}, ve.Fields["area_value"])
	assert.Equal(t, []string{"The started on field must match the format Y-m-d."}, ve.Fields["started_on"])
	assert.Equal(t, []string{"The latitude field must not be greater than 90."}, ve.Fields["latitude"])
}

func TestStructRequiredAndValid(t *testing.T) {
	ve := Struct(sample{})
	assert.True(t, ve.Has("name"))
	assert.True(t, ve.Has("category"))
	assert.True(t, ve.Has("area_value"))
	assert.False(t, ve.Has("started_on"))

	ok := Struct(sample{Name: "Ruộng A", Category: "irrigation", Area: ptr(1.5)})
	assert.NoError(t, ok.OrNil())
	assert.NoError(t, Echo{}.Validate(sample{Name: "x", Category: "harvesting", Area: ptr(2.0)}))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "The planned end date field must be a date after planned start date.", After("planned_end_date", "planned_start_date"))
	assert.Equal(t, "The sequence order has already been taken.", Taken("sequence_order"))
	assert.Equal(t, "The quantity unit id field is required when quantity value is present.", RequiredWith("quantity_unit_id", "quantity_value"))
}

func TestWrongType(t *testing.T) {
	assert.Equal(t, "The sequence order field must be an integer.", WrongType("sequence_order", reflect.Int))
	assert.Equal(t, "The crop cycle id field must be an integer.", WrongType("crop_cycle_id", reflect.Uint))
	assert.Equal(t, "The yield value field must be a number.", WrongType("yield_value", reflect.Float64))
	assert.Equal(t, "The notes field must be a string.", WrongType("notes", reflect.String))
	assert.Equal(t, "The is active field must be true or false.", WrongType("is_active", reflect.Bool))
	assert.Equal(t, "The data field is invalid.", WrongType("data", reflect.Map))
}
