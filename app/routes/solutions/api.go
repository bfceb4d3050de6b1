package solutions

import (
	"database/sql"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SshartakK/AssignMate/app/config"
	"github.com/SshartakK/AssignMate/app/database"
	"github.com/SshartakK/AssignMate/app/helpers"
	"github.com/SshartakK/AssignMate/app/models"
	"github.com/SshartakK/AssignMate/app/permissions"
	"github.com/SshartakK/AssignMate/app/routes/auth"
)

func ShowSubmitPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	homework, err := database.GetPublishedHomeworkByID(config.GetDB(), c.Params("id"))
	if err == sql.ErrNoRows {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}
	if permissions.SubmitSolution(user) != permissions.Allow {
		return c.Redirect("/homeworks")
	}

	return helpers.Render(c, "solutions/submit", fiber.Map{
		"Title":    "Submit solution - AssignMate",
		"User":     user,
		"Homework": homework,
	})
}

// SubmitAPI stores a student's solution for a published homework. Nothing
// prevents a second submission at this layer; the detail view stops
// offering the form once one exists.
func SubmitAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	homework, err := database.GetPublishedHomeworkByID(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}
	if permissions.SubmitSolution(user) != permissions.Allow {
		return c.Redirect("/homeworks")
	}

	var form SolutionForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	if errs := form.Validate(); len(errs) > 0 {
		return helpers.Render(c, "solutions/submit", fiber.Map{
			"Title":    "Submit solution - AssignMate",
			"User":     user,
			"Homework": homework,
			"Errors":   errs,
			"Form":     form,
		})
	}

	solution := &models.HomeworkSolution{
		HomeworkID: homework.ID,
		StudentID:  user.ID,
		AnswerText: form.AnswerText,
	}

	if file, err := c.FormFile("answer_pdf"); err == nil && file != nil {
		dir := filepath.Join(config.AppConfig.UploadDir, "homework_solutions")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		name := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
			return err
		}
		solution.AnswerPDF = filepath.Join("homework_solutions", name)
	}

	if err := database.CreateSolution(db, solution); err != nil {
		return err
	}

	return c.Redirect(homework.URL())
}

// DeleteAPI removes a solution owned by the requesting student.
func DeleteAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	solution, err := database.GetOwnedSolutionByID(db, c.Params("id"), user.ID)
	if err == sql.ErrNoRows {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := database.DeleteSolution(db, solution.ID); err != nil {
		return err
	}
	return c.Redirect("/homeworks")
}

func ShowReviewPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	solution, err := reviewableSolution(c, user)
	if err != nil {
		return err
	}

	form := ReviewForm{TeacherComment: solution.TeacherComment}
	if solution.Grade != nil {
		form.Grade = *solution.Grade
	}
	return helpers.Render(c, "solutions/review", fiber.Map{
		"Title":    "Review solution - AssignMate",
		"User":     user,
		"Solution": solution,
		"Form":     form,
	})
}

// ReviewAPI grades a solution. Only the creator of the homework's course
// may review, and only with the teacher role; anyone else gets a 404.
func ReviewAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	solution, err := reviewableSolution(c, user)
	if err != nil {
		return err
	}

	form := ReviewForm{TeacherComment: strings.TrimSpace(c.FormValue("teacher_comment"))}
	errs := make(map[string]string)

	grade, convErr := strconv.Atoi(strings.TrimSpace(c.FormValue("grade")))
	if convErr != nil {
		errs["Grade"] = "Enter a whole number."
	} else {
		form.Grade = grade
		errs = form.Validate()
	}

	if len(errs) > 0 {
		return helpers.Render(c, "solutions/review", fiber.Map{
			"Title":    "Review solution - AssignMate",
			"User":     user,
			"Solution": solution,
			"Errors":   errs,
			"Form":     form,
		})
	}

	err = database.UpdateSolutionReview(config.GetDB(), solution.ID, form.Grade, form.TeacherComment)
	if err != nil {
		return err
	}

	return c.Redirect(solution.Homework.URL())
}

func reviewableSolution(c *fiber.Ctx, user *models.User) (*models.HomeworkSolution, error) {
	solution, err := database.GetReviewableSolutionByID(config.GetDB(), c.Params("id"), user.ID)
	if err == sql.ErrNoRows {
		return nil, fiber.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if permissions.ReviewSolution(user) != permissions.Allow {
		return nil, fiber.ErrNotFound
	}
	return solution, nil
}
