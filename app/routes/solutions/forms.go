package solutions

import "github.com/SshartakK/AssignMate/app/helpers"

type SolutionForm struct {
	AnswerText string `form:"answer_text" validate:"required"`
}

func (f *SolutionForm) Validate() map[string]string {
	return helpers.ValidateStruct(f)
}

// ReviewForm carries the teacher's grade and comment. The grade must be an
// integer between 0 and 100.
type ReviewForm struct {
	Grade          int    `form:"grade" validate:"gte=0,lte=100"`
	TeacherComment string `form:"teacher_comment"`
}

func (f *ReviewForm) Validate() map[string]string {
	return helpers.ValidateStruct(f)
}
