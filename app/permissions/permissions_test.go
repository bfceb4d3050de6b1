package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SshartakK/AssignMate/app/models"
)

func teacher(id string) *models.User {
	return &models.User{ID: id, Profile: &models.Profile{Role: models.RoleTeacher}}
}

func student(id string) *models.User {
	return &models.User{ID: id, Profile: &models.Profile{Role: models.RoleStudent}}
}

func TestViewCourse(t *testing.T) {
	course := &models.Course{ID: "c1", CreatorID: "t1"}

	assert.Equal(t, Allow, ViewCourse(teacher("t1"), course, false))
	assert.Equal(t, Allow, ViewCourse(student("s1"), course, true))
	assert.Equal(t, NotFound, ViewCourse(student("s1"), course, false))
	assert.Equal(t, NotFound, ViewCourse(teacher("t2"), course, false))
}

func TestViewCourseOrphaned(t *testing.T) {
	// a course whose creator was deleted never matches on creator identity
	course := &models.Course{ID: "c1"}
	assert.Equal(t, NotFound, ViewCourse(teacher("t1"), course, false))
	assert.Equal(t, Allow, ViewCourse(student("s1"), course, true))
}

func TestAddHomework(t *testing.T) {
	assert.Equal(t, Allow, AddHomework(teacher("t1")))
	assert.Equal(t, NotFound, AddHomework(student("s1")))
	// a user without a profile is never granted teacher-only actions
	assert.Equal(t, NotFound, AddHomework(&models.User{ID: "u1"}))
}

func TestDeleteHomework(t *testing.T) {
	homework := &models.Homework{ID: "h1", AuthorID: "t1"}

	assert.Equal(t, Allow, DeleteHomework(teacher("t1"), homework))
	assert.Equal(t, Deny, DeleteHomework(teacher("t2"), homework))

	super := teacher("t3")
	super.IsSuperuser = true
	assert.Equal(t, Allow, DeleteHomework(super, homework))
}

func TestReviewSolution(t *testing.T) {
	assert.Equal(t, Allow, ReviewSolution(teacher("t1")))
	assert.Equal(t, NotFound, ReviewSolution(student("s1")))
	assert.Equal(t, NotFound, ReviewSolution(&models.User{ID: "u1"}))
}

func TestSubmitSolution(t *testing.T) {
	assert.Equal(t, Allow, SubmitSolution(student("s1")))
	assert.Equal(t, Deny, SubmitSolution(teacher("t1")))
	assert.Equal(t, Deny, SubmitSolution(&models.User{ID: "u1"}))
}

func TestCanSubmitSolution(t *testing.T) {
	assert.True(t, CanSubmitSolution(student("s1"), 0))
	assert.False(t, CanSubmitSolution(student("s1"), 1))
	assert.False(t, CanSubmitSolution(teacher("t1"), 0))
	assert.False(t, CanSubmitSolution(&models.User{ID: "u1"}, 0))
}

// anonymous visitors reach the comment and share pages, so the role checks
// must hold for a nil user as well
func TestAnonymousVisitor(t *testing.T) {
	assert.Equal(t, NotFound, AddHomework(nil))
	assert.Equal(t, NotFound, ReviewSolution(nil))
	assert.Equal(t, Deny, SubmitSolution(nil))
	assert.False(t, CanSubmitSolution(nil, 0))
}
