package homeworks

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SshartakK/AssignMate/app/config"
	"github.com/SshartakK/AssignMate/app/services"
)

// Sharing and commenting are open to anonymous visitors, while the rest of
// the homework routes require a session. The database here is unreachable,
// so an open route answers with a server error instead of a login redirect.
func TestShareAndCommentAreOpenToVisitors(t *testing.T) {
	db, err := sql.Open("postgres", "postgres://127.0.0.1:1/assignmate?sslmode=disable&connect_timeout=1")
	require.NoError(t, err)
	config.AppConfig = &config.Config{DB: db}

	app := fiber.New()
	SetupHomeworkRoutes(app, services.NewConsoleService(config.EmailConfig{}))

	for _, req := range []*http.Request{
		httptest.NewRequest(fiber.MethodPost, "/homeworks/1/comment", nil),
		httptest.NewRequest(fiber.MethodGet, "/homeworks/1/share", nil),
		httptest.NewRequest(fiber.MethodPost, "/homeworks/1/share", nil),
	} {
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.NotEqual(t, fiber.StatusFound, resp.StatusCode, "%s %s", req.Method, req.URL)
		assert.Empty(t, resp.Header.Get("Location"))
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/homeworks/add", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
