package homeworks

import (
	"fmt"

	"github.com/SshartakK/AssignMate/app/helpers"
	"github.com/SshartakK/AssignMate/app/models"
	"github.com/SshartakK/AssignMate/app/services"
)

type HomeworkForm struct {
	Title    string `form:"title" validate:"required,max=250"`
	Body     string `form:"body" validate:"required"`
	CourseID string `form:"course_id" validate:"required"`
	Tags     string `form:"tags"`
}

func (f *HomeworkForm) Validate() map[string]string {
	return helpers.ValidateStruct(f)
}

type CommentForm struct {
	Name  string `form:"name" validate:"required,max=80"`
	Email string `form:"email" validate:"required,email"`
	Body  string `form:"body" validate:"required"`
}

func (f *CommentForm) Validate() map[string]string {
	return helpers.ValidateStruct(f)
}

type ShareForm struct {
	Name     string `form:"name" validate:"required,max=25"`
	To       string `form:"to" validate:"required,email"`
	Email    string `form:"email" validate:"omitempty,email"`
	Comments string `form:"comments"`
}

func (f *ShareForm) Validate() map[string]string {
	return helpers.ValidateStruct(f)
}

// BuildShareMessage composes the recommendation email for a homework.
func BuildShareMessage(h *models.Homework, baseURL string, f ShareForm) services.Message {
	url := baseURL + h.URL()
	return services.Message{
		To:      f.To,
		Subject: fmt.Sprintf("%s recommends you read %s", f.Name, h.Title),
		Body: fmt.Sprintf("Read %s at %s\n\n%s's (%s) comments: %s",
			h.Title, url, f.Name, f.Email, f.Comments),
	}
}
