package courses

import "github.com/SshartakK/AssignMate/app/helpers"

// CourseForm creates a course on behalf of a teacher, named by username.
type CourseForm struct {
	Title   string `form:"title" validate:"required,max=200"`
	Teacher string `form:"teacher" validate:"required,max=150"`
}

func (f *CourseForm) Validate() map[string]string {
	return helpers.ValidateStruct(f)
}
