package solutions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewFormGradeBounds(t *testing.T) {
	assert.Empty(t, (&ReviewForm{Grade: 0}).Validate())
	assert.Empty(t, (&ReviewForm{Grade: 85, TeacherComment: "good work"}).Validate())
	assert.Empty(t, (&ReviewForm{Grade: 100}).Validate())

	assert.Contains(t, (&ReviewForm{Grade: 150}).Validate(), "Grade")
	assert.Contains(t, (&ReviewForm{Grade: -1}).Validate(), "Grade")
}

func TestSolutionFormRequiresAnswer(t *testing.T) {
	assert.Contains(t, (&SolutionForm{}).Validate(), "AnswerText")
	assert.Empty(t, (&SolutionForm{AnswerText: "x = 4"}).Validate())
}
