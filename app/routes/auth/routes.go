package auth

import "github.com/gofiber/fiber/v2"

func SetupAuthRoutes(app *fiber.App) {
	// Public routes
	app.Get("/signup", ShowSignupPage)
	app.Post("/signup", SignupAPI)
	app.Get("/login", ShowLoginPage)
	app.Post("/login", LoginAPI)
	app.Post("/logout", LogoutAPI)

	// Protected routes
	app.Get("/profile", AuthMiddleware, ShowProfilePage)
	app.Get("/profile/edit", AuthMiddleware, ShowEditProfilePage)
	app.Post("/profile/edit", AuthMiddleware, EditProfileAPI)
	app.Get("/password/change", AuthMiddleware, ShowChangePasswordPage)
	app.Post("/password/change", AuthMiddleware, ChangePasswordAPI)
}
