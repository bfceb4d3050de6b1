package main

import (
	"html/template"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"github.com/russross/blackfriday/v2"

	"github.com/SshartakK/AssignMate/app/config"
	"github.com/SshartakK/AssignMate/app/database"
	"github.com/SshartakK/AssignMate/app/routes/auth"
	"github.com/SshartakK/AssignMate/app/routes/courses"
	"github.com/SshartakK/AssignMate/app/routes/homeworks"
	"github.com/SshartakK/AssignMate/app/routes/sitemap"
	"github.com/SshartakK/AssignMate/app/routes/solutions"
	"github.com/SshartakK/AssignMate/app/services"
)

// customErrorHandler renders the error templates for page requests
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Page Not Found - AssignMate",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - AssignMate",
			"ErrorCode":    code,
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize template engine
	engine := html.New("./views", ".html")
	engine.AddFunc("markdown", func(text string) template.HTML {
		return template.HTML(blackfriday.Run([]byte(text)))
	})
	engine.AddFunc("date", func(layout string, t interface{ Format(string) string }) string {
		return t.Format(layout)
	})
	engine.AddFunc("join", strings.Join)

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
		BodyLimit:    20 * 1024 * 1024,
	})
	app.Use(logger.New())

	app.Static("/static", "./static")
	// Uploaded files (avatars, PDFs)
	app.Static("/media", config.AppConfig.UploadDir)

	emailService := services.NewEmailService()

	auth.SetupAuthRoutes(app)
	courses.SetupCourseRoutes(app)
	homeworks.SetupHomeworkRoutes(app, emailService)
	solutions.SetupSolutionRoutes(app)
	sitemap.SetupSitemapRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/homeworks")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
