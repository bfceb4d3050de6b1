package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SshartakK/AssignMate/app/config"
	"github.com/SshartakK/AssignMate/app/database"
	"github.com/SshartakK/AssignMate/app/models"
)

// AuthMiddleware validates the JWT cookie and loads the user with its
// profile into Locals. The user is fetched per request so role or identity
// changes take effect immediately.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if tokenString == "" {
		return c.Redirect("/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		clearAuthCookie(c)
		return c.Redirect("/login")
	}

	user, err := database.GetUserByID(config.GetDB(), claims.UserID)
	if err != nil {
		clearAuthCookie(c)
		return c.Redirect("/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// CurrentUser returns the user loaded by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
