package homeworks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SshartakK/AssignMate/app/models"
)

func TestHomeworkFormValidation(t *testing.T) {
	form := HomeworkForm{Title: "HW1", Body: "Solve the exercises.", CourseID: "c1"}
	assert.Empty(t, form.Validate())

	missing := HomeworkForm{}
	errs := missing.Validate()
	assert.Contains(t, errs, "Title")
	assert.Contains(t, errs, "Body")
	assert.Contains(t, errs, "CourseID")
}

func TestCommentFormValidation(t *testing.T) {
	form := CommentForm{Name: "Bob", Email: "bob@example.com", Body: "Nice one"}
	assert.Empty(t, form.Validate())

	badEmail := CommentForm{Name: "Bob", Email: "not-an-email", Body: "Nice one"}
	assert.Contains(t, badEmail.Validate(), "Email")
}

func TestShareFormValidation(t *testing.T) {
	form := ShareForm{Name: "Alice", To: "friend@example.com"}
	assert.Empty(t, form.Validate())

	tooLong := ShareForm{Name: "a name that is way longer than allowed", To: "friend@example.com"}
	assert.Contains(t, tooLong.Validate(), "Name")

	noRecipient := ShareForm{Name: "Alice"}
	assert.Contains(t, noRecipient.Validate(), "To")
}

func TestBuildShareMessage(t *testing.T) {
	homework := &models.Homework{
		Title:   "Linear Equations",
		Slug:    "linear-equations",
		Publish: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	form := ShareForm{
		Name:     "Alice",
		Email:    "alice@example.com",
		To:       "friend@example.com",
		Comments: "worth a look",
	}

	msg := BuildShareMessage(homework, "http://localhost:3000", form)

	assert.Equal(t, "friend@example.com", msg.To)
	assert.Equal(t, "Alice recommends you read Linear Equations", msg.Subject)
	assert.Contains(t, msg.Body, "Read Linear Equations at http://localhost:3000/homeworks/2026/9/1/linear-equations")
	assert.Contains(t, msg.Body, "Alice's (alice@example.com) comments: worth a look")
}
