package response

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOKWithData(t *testing.T) {
	resp := StatusOKWithData(map[string]any{"id": 1})
	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("something went wrong")
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something went wrong", resp.Error)
}

func TestValidationError(t *testing.T) {
	type request struct {
		Name    string `validate:"required"`
		Email   string `validate:"required,email"`
		Amount  string `validate:"amount"`
		DueDate string `validate:"omitempty,datetime=2006-01-02"`
		Remind  int    `validate:"gte=0"`
	}

	validate := validator.New()
	err := validate.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		return false
	})
	require.NoError(t, err)

	err = validate.Struct(request{Email: "not-an-email", Amount: "-5", DueDate: "01.07.2025", Remind: -1})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	resp := ValidationError(errs)
	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Name is a required field")
	assert.Contains(t, resp.Error, "field Email must be a valid email")
	assert.Contains(t, resp.Error, "field Amount must be a non-negative decimal number")
	assert.Contains(t, resp.Error, "field DueDate can contain only date in format 2006-01-02")
	assert.Contains(t, resp.Error, "field Remind must be greater than or equal to 0")
}
