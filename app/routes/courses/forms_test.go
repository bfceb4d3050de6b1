package courses

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseFormValidate(t *testing.T) {
	assert.Empty(t, (&CourseForm{Title: "Algorithms 101", Teacher: "mr_okello"}).Validate())

	errs := (&CourseForm{}).Validate()
	assert.Equal(t, "This field is required.", errs["Title"])
	assert.Equal(t, "This field is required.", errs["Teacher"])

	errs = (&CourseForm{Title: strings.Repeat("a", 201), Teacher: "mr_okello"}).Validate()
	assert.Equal(t, "Ensure this value has at most 200 characters.", errs["Title"])
}
