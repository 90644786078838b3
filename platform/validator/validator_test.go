package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Kind string `json:"kind" validate:"required,even"`
}

func TestFirstFieldErrorUsesJSONName(t *testing.T) {
	val := New()
	require.NoError(t, val.RegisterValidation("even", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String())%2 == 0
	}))

	err := val.Struct(sample{Kind: "odd"})
	require.Error(t, err)

	fe, ok := FirstFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "kind", fe.Field)
	assert.Equal(t, "even", fe.Tag)
	assert.Equal(t, "odd", fe.Value)

	assert.NoError(t, val.Struct(sample{Kind: "even"}))
}

func TestFirstFieldErrorIgnoresOtherErrors(t *testing.T) {
	_, ok := FirstFieldError(assert.AnError)
	assert.False(t, ok)
}
