package models

import "time"

type Course struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatorID string    `json:"creator_id,omitempty"`
	Publish   time.Time `json:"publish"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Creator   *User     `json:"creator,omitempty"`
}

// Enrollment grants a student access to a course's content.
type Enrollment struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
}
