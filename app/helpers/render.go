package helpers

import "github.com/gofiber/fiber/v2"

// Render renders a view with the pending flash message merged in.
func Render(c *fiber.Ctx, name string, data fiber.Map) error {
	if f := PopFlash(c); f != nil {
		data["Flash"] = f
	}
	return c.Render(name, data)
}
