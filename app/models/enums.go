package models

// Role defines the possible roles a profile can hold.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// Status defines the publication status of a course or homework.
type Status string

const (
	StatusDraft     Status = "DF"
	StatusPublished Status = "PB"
)
