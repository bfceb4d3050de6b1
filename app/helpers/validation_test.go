package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleForm struct {
	Name     string `validate:"required,max=5"`
	Email    string `validate:"required,email"`
	Grade    int    `validate:"gte=0,lte=100"`
	Password string `validate:"required"`
	Confirm  string `validate:"eqfield=Password"`
}

func TestValidateStruct(t *testing.T) {
	valid := sampleForm{Name: "Bob", Email: "bob@example.com", Grade: 85, Password: "x", Confirm: "x"}
	assert.Empty(t, ValidateStruct(valid))

	invalid := sampleForm{Name: "too long name", Email: "nope", Grade: 150, Password: "x", Confirm: "y"}
	errs := ValidateStruct(invalid)
	assert.Equal(t, "Ensure this value has at most 5 characters.", errs["Name"])
	assert.Equal(t, "Enter a valid email address.", errs["Email"])
	assert.Equal(t, "Ensure this value is less than or equal to 100.", errs["Grade"])
	assert.Equal(t, "The two password fields didn't match.", errs["Confirm"])
}

func TestValidateStructRequired(t *testing.T) {
	errs := ValidateStruct(sampleForm{})
	assert.Equal(t, "This field is required.", errs["Name"])
	assert.Equal(t, "This field is required.", errs["Email"])
}
