package models

import (
	"fmt"
	"time"
)

type Homework struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	AuthorID  string    `json:"author_id"`
	CourseID  string    `json:"course_id"`
	Body      string    `json:"body"`
	PDF       string    `json:"pdf,omitempty"`
	Publish   time.Time `json:"publish"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tags      []string  `json:"tags,omitempty"`
	Course    *Course   `json:"course,omitempty"`
	Author    *User     `json:"author,omitempty"`
}

// URL returns the natural-key path of the homework: publish date plus slug.
func (h *Homework) URL() string {
	return fmt.Sprintf("/homeworks/%d/%d/%d/%s",
		h.Publish.Year(), int(h.Publish.Month()), h.Publish.Day(), h.Slug)
}

type Comment struct {
	ID         string    `json:"id"`
	HomeworkID string    `json:"homework_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Body       string    `json:"body"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HomeworkSolution is a student's answer, optionally graded by the teacher.
// Grade is nil until the solution has been reviewed.
type HomeworkSolution struct {
	ID             string    `json:"id"`
	HomeworkID     string    `json:"homework_id"`
	StudentID      string    `json:"student_id"`
	AnswerText     string    `json:"answer_text"`
	AnswerPDF      string    `json:"answer_pdf,omitempty"`
	Grade          *int      `json:"grade,omitempty"`
	TeacherComment string    `json:"teacher_comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Student        *User     `json:"student,omitempty"`
	Homework       *Homework `json:"homework,omitempty"`
}
