package solutions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SshartakK/AssignMate/app/routes/auth"
)

func SetupSolutionRoutes(app *fiber.App) {
	app.Get("/homeworks/:id/submit", auth.AuthMiddleware, ShowSubmitPage)
	app.Post("/homeworks/:id/submit", auth.AuthMiddleware, SubmitAPI)

	group := app.Group("/solutions", auth.AuthMiddleware)
	group.Post("/:id/delete", DeleteAPI)
	group.Get("/:id/review", ShowReviewPage)
	group.Post("/:id/review", ReviewAPI)
}
