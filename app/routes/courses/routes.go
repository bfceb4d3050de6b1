package courses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SshartakK/AssignMate/app/routes/auth"
)

func SetupCourseRoutes(app *fiber.App) {
	group := app.Group("/courses", auth.AuthMiddleware)
	group.Get("/", CoursesPage)
	group.Post("/create", CreateAPI)
	group.Get("/:id", CourseDetailPage)
	group.Post("/:id/enroll", EnrollAPI)
}
