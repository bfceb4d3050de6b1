package sitemap

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SshartakK/AssignMate/app/config"
	"github.com/SshartakK/AssignMate/app/database"
)

func SetupSitemapRoutes(app *fiber.App) {
	app.Get("/sitemap.xml", SitemapAPI)
}

func SitemapAPI(c *fiber.Ctx) error {
	homeworks, err := database.ListPublishedHomeworks(config.GetDB())
	if err != nil {
		return err
	}
	body, err := Build(config.AppConfig.BaseURL, homeworks)
	if err != nil {
		return err
	}
	c.Type("xml")
	return c.Send(body)
}
