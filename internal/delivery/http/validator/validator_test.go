package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Description string  `json:"productDescription" validate:"required"`
	ProfileID   int64   `json:"productProfileId" validate:"required"`
	Price       float64 `json:"productPrice" validate:"required"`
}

func TestValidator_ReportsFirstMissingFieldByJSONName(t *testing.T) {
	v := New()

	err := v.Validate(&body{ProfileID: 1})
	require.Error(t, err)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "productDescription", fieldErr.Field)
	assert.Equal(t, "required", fieldErr.Tag)

	err = v.Validate(&body{Description: "x", ProfileID: 1})
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "productPrice", fieldErr.Field)
}

func TestValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&body{Description: "x", ProfileID: 1, Price: 2}))
}
