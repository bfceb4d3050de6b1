package helpers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashRoundTrip(t *testing.T) {
	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		SetFlash(c, "success", "Homework was added successfully!")
		return c.SendStatus(fiber.StatusOK)
	})
	var got *Flash
	app.Get("/pop", func(c *fiber.Ctx) error {
		got = PopFlash(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/set", nil))
	require.NoError(t, err)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest("GET", "/pop", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	_, err = app.Test(req)
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "success", got.Level)
	assert.Equal(t, "Homework was added successfully!", got.Message)
}

func TestPopFlashWithoutCookie(t *testing.T) {
	app := fiber.New()
	var got *Flash
	app.Get("/pop", func(c *fiber.Ctx) error {
		got = PopFlash(c)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/pop", nil))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPopFlashMalformedCookie(t *testing.T) {
	app := fiber.New()
	var got *Flash
	app.Get("/pop", func(c *fiber.Ctx) error {
		got = PopFlash(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/pop", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: url.QueryEscape("no separator here")})
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Nil(t, got)
}
