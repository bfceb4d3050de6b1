// Package permissions holds the access decisions as pure functions over
// (actor, resource) facts. View paths intentionally answer NotFound rather
// than Deny so unauthorized visitors cannot distinguish a hidden resource
// from a missing one.
package permissions

import "github.com/SshartakK/AssignMate/app/models"

type Decision int

const (
	Allow Decision = iota
	Deny
	NotFound
)

// ViewCourse: the creator or an enrolled student may view; everyone else
// gets a not-found answer.
func ViewCourse(user *models.User, course *models.Course, enrolled bool) Decision {
	if course.CreatorID != "" && course.CreatorID == user.ID {
		return Allow
	}
	if enrolled {
		return Allow
	}
	return NotFound
}

// ViewHomework follows the course rule: the course creator or an enrolled
// student may view the homework.
func ViewHomework(user *models.User, course *models.Course, enrolled bool) Decision {
	return ViewCourse(user, course, enrolled)
}

// AddHomework is teacher-only.
func AddHomework(user *models.User) Decision {
	if user.IsTeacher() {
		return Allow
	}
	return NotFound
}

// DeleteHomework: the author or a superuser may delete. The caller has
// already scoped the lookup to homeworks of the user's own courses, so a
// Deny here is reported as a message, not an HTTP error.
func DeleteHomework(user *models.User, homework *models.Homework) Decision {
	if homework.AuthorID == user.ID || user.IsSuperuser {
		return Allow
	}
	return Deny
}

// ReviewSolution requires the teacher role on top of the course-creator
// scoping done at lookup time.
func ReviewSolution(user *models.User) Decision {
	if user.IsTeacher() {
		return Allow
	}
	return NotFound
}

// SubmitSolution is student-only.
func SubmitSolution(user *models.User) Decision {
	if user.IsStudent() {
		return Allow
	}
	return Deny
}

// CanSubmitSolution is true exactly when the viewer is a student with no
// existing solution for the homework. It gates the submit form, not the
// submit endpoint.
func CanSubmitSolution(user *models.User, existingSolutions int) bool {
	return user.IsStudent() && existingSolutions == 0
}
