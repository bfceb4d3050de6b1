package homeworks

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SshartakK/AssignMate/app/config"
	"github.com/SshartakK/AssignMate/app/database"
	"github.com/SshartakK/AssignMate/app/helpers"
	"github.com/SshartakK/AssignMate/app/models"
	"github.com/SshartakK/AssignMate/app/permissions"
	"github.com/SshartakK/AssignMate/app/routes/auth"
	"github.com/SshartakK/AssignMate/app/services"
)

const homeworksPerPage = 3

var emailService services.EmailService

// ListPage lists homeworks visible to the user, optionally filtered by a
// single tag, three per page.
func ListPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	filters := database.HomeworkFilters{}
	if user.IsTeacher() {
		filters.AuthorID = user.ID
	} else {
		filters.StudentID = user.ID
	}

	tag := c.Query("tag")
	if tag != "" {
		exists, err := database.TagExists(db, tag)
		if err != nil {
			return err
		}
		if !exists {
			return fiber.ErrNotFound
		}
		filters.Tag = tag
	}

	total, err := database.CountHomeworks(db, filters)
	if err != nil {
		return err
	}
	page := helpers.Paginate(total, homeworksPerPage, c.Query("page"))
	filters.Limit = page.PerPage
	filters.Offset = page.Offset

	homeworks, err := database.ListHomeworks(db, filters)
	if err != nil {
		return err
	}
	if err := database.AttachTags(db, homeworks); err != nil {
		return err
	}

	totalPublished, err := database.CountPublishedHomeworks(db)
	if err != nil {
		return err
	}
	var latest []*models.Homework
	if user.IsStudent() {
		latest, err = database.LatestPublishedForStudent(db, user.ID, 5)
		if err != nil {
			return err
		}
	}

	return helpers.Render(c, "homeworks/list", fiber.Map{
		"Title":           "Homeworks - AssignMate",
		"User":            user,
		"Homeworks":       homeworks,
		"Page":            page,
		"Tag":             tag,
		"TotalHomeworks":  totalPublished,
		"LatestHomeworks": latest,
	})
}

// DetailPage shows a homework looked up by its publish date plus slug.
// Teachers see every solution; students only their own. The comment form
// posts back to /homeworks/:id/comment.
func DetailPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	year, err1 := c.ParamsInt("year")
	month, err2 := c.ParamsInt("month")
	day, err3 := c.ParamsInt("day")
	if err1 != nil || err2 != nil || err3 != nil {
		return fiber.ErrNotFound
	}

	homework, err := database.GetHomeworkByNaturalKey(db, year, month, day, c.Params("slug"))
	if err == sql.ErrNoRows {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	course, err := database.GetCourseByID(db, homework.CourseID)
	if err != nil {
		return err
	}
	enrolled, err := database.IsEnrolled(db, course.ID, user.ID)
	if err != nil {
		return err
	}
	if permissions.ViewHomework(user, course, enrolled) != permissions.Allow {
		return fiber.ErrNotFound
	}

	return renderDetail(c, homework, course, nil)
}

// renderDetail renders the homework detail page. The user may be nil: an
// anonymous visitor landing here from the comment form sees no solutions.
func renderDetail(c *fiber.Ctx, homework *models.Homework, course *models.Course, extra fiber.Map) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	var err error
	var solutions []*models.HomeworkSolution
	if user.IsTeacher() {
		solutions, err = database.GetSolutionsByHomework(db, homework.ID)
	} else if user != nil {
		solutions, err = database.GetSolutionsByStudent(db, homework.ID, user.ID)
	}
	if err != nil {
		return err
	}

	comments, err := database.GetActiveComments(db, homework.ID)
	if err != nil {
		return err
	}
	tags, err := database.GetTagsForHomework(db, homework.ID)
	if err != nil {
		return err
	}
	homework.Tags = tags

	data := fiber.Map{
		"Title":             homework.Title + " - AssignMate",
		"User":              user,
		"Homework":          homework,
		"Course":            course,
		"Solutions":         solutions,
		"Comments":          comments,
		"IsTeacher":         user.IsTeacher(),
		"CanSubmitSolution": permissions.CanSubmitSolution(user, len(solutions)),
	}
	for k, v := range extra {
		data[k] = v
	}
	return helpers.Render(c, "homeworks/detail", data)
}

func ShowAddPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if permissions.AddHomework(user) != permissions.Allow {
		return fiber.ErrNotFound
	}

	courses, err := database.GetCoursesByCreator(config.GetDB(), user.ID)
	if err != nil {
		return err
	}
	return helpers.Render(c, "homeworks/add", fiber.Map{
		"Title":   "Add homework - AssignMate",
		"User":    user,
		"Courses": courses,
	})
}

// AddAPI creates a homework. Course choices are restricted to courses the
// teacher created, the author is forced to the current user, and a blank
// slug is derived from the title.
func AddAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if permissions.AddHomework(user) != permissions.Allow {
		return fiber.ErrNotFound
	}
	db := config.GetDB()

	var form HomeworkForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	errs := form.Validate()

	courses, err := database.GetCoursesByCreator(db, user.ID)
	if err != nil {
		return err
	}
	var course *models.Course
	for _, own := range courses {
		if own.ID == form.CourseID {
			course = own
			break
		}
	}
	if course == nil && errs["CourseID"] == "" {
		errs["CourseID"] = "Select a valid choice."
	}

	if len(errs) > 0 {
		helpers.SetFlash(c, "error", "Please correct the error below.")
		return helpers.Render(c, "homeworks/add", fiber.Map{
			"Title":   "Add homework - AssignMate",
			"User":    user,
			"Courses": courses,
			"Errors":  errs,
			"Form":    form,
		})
	}

	homework := &models.Homework{
		Title:    form.Title,
		Slug:     helpers.Slugify(form.Title),
		AuthorID: user.ID,
		CourseID: course.ID,
		Body:     form.Body,
		Publish:  time.Now(),
		Status:   models.StatusPublished,
		Tags:     database.ParseTags(form.Tags),
	}

	if file, err := c.FormFile("pdf"); err == nil && file != nil {
		dir := filepath.Join(config.AppConfig.UploadDir, "homework_pdfs", homework.Slug)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		name := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
			return err
		}
		homework.PDF = filepath.Join("homework_pdfs", homework.Slug, name)
	}

	if err := database.CreateHomework(db, homework); err != nil {
		// the per-day slug uniqueness constraint surfaces here
		helpers.SetFlash(c, "error", "Please correct the error below.")
		return helpers.Render(c, "homeworks/add", fiber.Map{
			"Title":   "Add homework - AssignMate",
			"User":    user,
			"Courses": courses,
			"Errors":  map[string]string{"Title": "A homework with this slug already exists for today."},
			"Form":    form,
		})
	}

	helpers.SetFlash(c, "success", "Homework was added successfully!")
	return c.Redirect(homework.URL())
}

// DeleteAPI deletes a homework. The lookup is scoped to homeworks of the
// user's own courses; beyond that only the author or a superuser may
// delete, and a refusal is a flash message, not an HTTP error.
func DeleteAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	homework, err := database.GetOwnedHomeworkByID(db, c.Params("id"), user.ID)
	if err == sql.ErrNoRows {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	if permissions.DeleteHomework(user, homework) == permissions.Allow {
		if err := database.DeleteHomework(db, homework.ID); err != nil {
			return err
		}
		helpers.SetFlash(c, "success", "Homework deleted successfully.")
	} else {
		helpers.SetFlash(c, "error", "You do not have permission to delete this homework.")
	}

	return c.Redirect("/courses/" + homework.CourseID)
}

func ShowSharePage(c *fiber.Ctx) error {
	homework, err := database.GetPublishedHomeworkByID(config.GetDB(), c.Params("id"))
	if err == sql.ErrNoRows {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}
	return helpers.Render(c, "homeworks/share", fiber.Map{
		"Title":    "Share " + homework.Title + " - AssignMate",
		"User":     auth.CurrentUser(c),
		"Homework": homework,
	})
}

// ShareAPI emails a recommendation for a published homework. Nothing is
// persisted; each successful call sends exactly one email.
func ShareAPI(c *fiber.Ctx) error {
	homework, err := database.GetPublishedHomeworkByID(config.GetDB(), c.Params("id"))
	if err == sql.ErrNoRows {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	var form ShareForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := form.Validate(); len(errs) > 0 {
		return helpers.Render(c, "homeworks/share", fiber.Map{
			"Title":    "Share " + homework.Title + " - AssignMate",
			"User":     auth.CurrentUser(c),
			"Homework": homework,
			"Errors":   errs,
			"Form":     form,
		})
	}

	msg := BuildShareMessage(homework, config.AppConfig.BaseURL, form)
	if err := emailService.Send(msg); err != nil {
		return err
	}

	return helpers.Render(c, "homeworks/share", fiber.Map{
		"Title":    "Share " + homework.Title + " - AssignMate",
		"User":     auth.CurrentUser(c),
		"Homework": homework,
		"Sent":     true,
	})
}

// CommentAPI adds a comment to a published homework. Comments are active
// immediately; moderation happens by flipping the flag off later.
func CommentAPI(c *fiber.Ctx) error {
	homework, err := database.GetPublishedHomeworkByID(config.GetDB(), c.Params("id"))
	if err == sql.ErrNoRows {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	var form CommentForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := form.Validate(); len(errs) > 0 {
		course, err := database.GetCourseByID(config.GetDB(), homework.CourseID)
		if err != nil {
			return err
		}
		return renderDetail(c, homework, course, fiber.Map{
			"Errors": errs,
			"Form":   &form,
		})
	}

	comment := &models.Comment{
		HomeworkID: homework.ID,
		Name:       form.Name,
		Email:      form.Email,
		Body:       form.Body,
	}
	if err := database.CreateComment(config.GetDB(), comment); err != nil {
		return err
	}

	helpers.SetFlash(c, "success", "Your comment has been added.")
	return c.Redirect(homework.URL())
}
