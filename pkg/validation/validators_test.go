package validation_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"hrms-backend/pkg/validation"
)

type sample struct {
	Name  string `validate:"valid_name"`
	Phone string `validate:"valid_phone"`
}

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	assert.NoError(t, v.Struct(sample{Name: "Asha Patel", Phone: "+919876543210"}))
	assert.NoError(t, v.Struct(sample{})) // both optional when empty
	assert.Error(t, v.Struct(sample{Phone: "call me"}))
	assert.Error(t, v.Struct(sample{Name: "Asha <script>"}))
}
