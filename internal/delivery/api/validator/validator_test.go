package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

type order struct {
	Email string `json:"email" validate:"required,email"`
	Items []line `json:"items" validate:"required,min=1,dive"`
	Note  string `json:"-"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&order{Email: "ana@example.com", Items: []line{{Quantity: 1}}}))

	err := v.Validate(&order{Email: "nope", Items: []line{{Quantity: 0}}})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, map[string]string{
		"email":             "email",
		"items[0].quantity": "min=1",
	}, fields)
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
