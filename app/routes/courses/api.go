package courses

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SshartakK/AssignMate/app/config"
	"github.com/SshartakK/AssignMate/app/database"
	"github.com/SshartakK/AssignMate/app/helpers"
	"github.com/SshartakK/AssignMate/app/models"
	"github.com/SshartakK/AssignMate/app/permissions"
	"github.com/SshartakK/AssignMate/app/routes/auth"
)

// CoursesPage lists the courses visible to the user: teachers see courses
// they created, students see courses they are enrolled in.
func CoursesPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	var (
		courses []*models.Course
		err     error
	)
	if user.IsTeacher() {
		courses, err = database.GetCoursesByCreator(db, user.ID)
	} else {
		courses, err = database.GetCoursesByStudent(db, user.ID)
	}
	if err != nil {
		return err
	}

	return helpers.Render(c, "courses/list", fiber.Map{
		"Title":   "My courses - AssignMate",
		"User":    user,
		"Courses": courses,
	})
}

// CourseDetailPage shows a course with its homeworks. A visitor who is
// neither the creator nor enrolled gets a 404, not a 403.
func CourseDetailPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	course, err := database.GetCourseByID(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	enrolled, err := database.IsEnrolled(db, course.ID, user.ID)
	if err != nil {
		return err
	}
	if permissions.ViewCourse(user, course, enrolled) != permissions.Allow {
		return fiber.ErrNotFound
	}

	homeworks, err := database.GetHomeworksByCourse(db, course.ID)
	if err != nil {
		return err
	}

	return helpers.Render(c, "courses/detail", fiber.Map{
		"Title":     course.Title + " - AssignMate",
		"User":      user,
		"Course":    course,
		"Homeworks": homeworks,
	})
}

// CreateAPI creates a course for a teacher. Superuser only, like EnrollAPI;
// course creation is an administrative action, teachers do not self-serve.
func CreateAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !user.IsSuperuser {
		return fiber.ErrNotFound
	}
	db := config.GetDB()

	var form CourseForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	if errs := form.Validate(); len(errs) > 0 {
		helpers.SetFlash(c, "error", "Enter a title and a teacher username.")
		return c.Redirect("/courses")
	}

	teacher, err := database.GetUserByUsername(db, form.Teacher)
	if err == sql.ErrNoRows || (err == nil && !teacher.IsTeacher()) {
		helpers.SetFlash(c, "error", "No teacher with that username.")
		return c.Redirect("/courses")
	}
	if err != nil {
		return err
	}

	course := &models.Course{
		Title:     form.Title,
		Slug:      helpers.Slugify(form.Title),
		CreatorID: teacher.ID,
		Publish:   time.Now(),
		Status:    models.StatusPublished,
	}
	if err := database.CreateCourse(db, course); err != nil {
		// unique slug per month
		helpers.SetFlash(c, "error", "A course with this title already exists this month.")
		return c.Redirect("/courses")
	}

	helpers.SetFlash(c, "success", course.Title+" created for "+teacher.Username)
	return c.Redirect("/courses/" + course.ID)
}

// EnrollAPI creates an enrollment for a student. Superuser only; it stands
// in for the admin-side enrollment inline, there is no self-service enroll.
func EnrollAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if !user.IsSuperuser {
		return fiber.ErrNotFound
	}
	db := config.GetDB()

	course, err := database.GetCourseByID(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	student, err := database.GetUserByUsername(db, c.FormValue("username"))
	if err == sql.ErrNoRows || (err == nil && !student.IsStudent()) {
		helpers.SetFlash(c, "error", "No student with that username.")
		return c.Redirect("/courses/" + course.ID)
	}
	if err != nil {
		return err
	}

	if err := database.CreateEnrollment(db, course.ID, student.ID); err != nil {
		return err
	}

	helpers.SetFlash(c, "success", student.Username+" enrolled in "+course.Title)
	return c.Redirect("/courses/" + course.ID)
}
