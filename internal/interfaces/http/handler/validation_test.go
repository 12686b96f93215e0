package handler

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationProbe struct {
	Name  string  `json:"name" binding:"required,min=2,max=10"`
	Email string  `json:"email" binding:"omitempty,email"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Kind  string  `json:"kind" binding:"omitempty,oneof=income expense"`
}

func validate(t *testing.T, probe validationProbe) error {
	t.Helper()
	SetupValidator()
	return binding.Validator.ValidateStruct(probe)
}

func TestFormatValidationErrors(t *testing.T) {
	t.Run("reports JSON field names with readable messages", func(t *testing.T) {
		err := validate(t, validationProbe{Email: "nope", Price: -5, Kind: "refund"})
		require.Error(t, err)

		fields, ok := FormatValidationErrors(err)
		require.True(t, ok)

		messages := make(map[string]string, len(fields))
		for _, fe := range fields {
			messages[fe.Field] = fe.Message
		}
		assert.Equal(t, "This field is required", messages["name"])
		assert.Equal(t, "Invalid email format", messages["email"])
		assert.Equal(t, "Must be greater than 0", messages["price"])
		assert.Equal(t, "Must be one of: income expense", messages["kind"])
	})

	t.Run("string length limits mention characters", func(t *testing.T) {
		err := validate(t, validationProbe{Name: "x", Price: 1})
		require.Error(t, err)

		fields, ok := FormatValidationErrors(err)
		require.True(t, ok)
		require.Len(t, fields, 1)
		assert.Equal(t, "name", fields[0].Field)
		assert.Equal(t, "Must be at least 2 characters", fields[0].Message)
	})

	t.Run("passes non-validation errors through", func(t *testing.T) {
		_, ok := FormatValidationErrors(errors.New("unexpected EOF"))
		assert.False(t, ok)
	})
}
