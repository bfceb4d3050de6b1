package auth

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SshartakK/AssignMate/app/config"
)

func avatarRequest(t *testing.T, content []byte) *http.Request {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("avatar", "avatar.png")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/avatar", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestSaveAvatarRemovesUndecodableUpload(t *testing.T) {
	config.AppConfig = &config.Config{UploadDir: t.TempDir()}

	app := fiber.New()
	var saved string
	var saveErr error
	app.Post("/avatar", func(c *fiber.Ctx) error {
		file, err := c.FormFile("avatar")
		require.NoError(t, err)
		saved, saveErr = saveAvatar(c, file)
		return c.SendStatus(fiber.StatusOK)
	})

	// a decodable image ends up under profile_images
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10))))
	_, err := app.Test(avatarRequest(t, buf.Bytes()), -1)
	require.NoError(t, err)
	require.NoError(t, saveErr)
	_, err = os.Stat(filepath.Join(config.AppConfig.UploadDir, saved))
	assert.NoError(t, err)

	// garbage that fails to decode leaves nothing behind
	_, err = app.Test(avatarRequest(t, []byte("not an image")), -1)
	require.NoError(t, err)
	assert.Error(t, saveErr)
	assert.Empty(t, saved)
	entries, err := os.ReadDir(filepath.Join(config.AppConfig.UploadDir, "profile_images"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
