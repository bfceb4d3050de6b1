package homeworks

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SshartakK/AssignMate/app/routes/auth"
	"github.com/SshartakK/AssignMate/app/services"
)

func SetupHomeworkRoutes(app *fiber.App, email services.EmailService) {
	emailService = email

	// Sharing and commenting are open to any visitor, so these three
	// routes stay outside the authenticated group.
	app.Get("/homeworks/:id/share", ShowSharePage)
	app.Post("/homeworks/:id/share", ShareAPI)
	app.Post("/homeworks/:id/comment", CommentAPI)

	group := app.Group("/homeworks", auth.AuthMiddleware)
	group.Get("/", ListPage)
	group.Get("/add", ShowAddPage)
	group.Post("/add", AddAPI)
	group.Post("/:id/delete", DeleteAPI)
	group.Get("/:year/:month/:day/:slug", DetailPage)
}
