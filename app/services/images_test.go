package services

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 90, B: 160, A: 255})
		}
	}
	return img
}

func TestDownscaleBounds(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{"wide", 400, 200, 100, 50},
		{"tall", 200, 400, 50, 100},
		{"square", 300, 300, 100, 100},
		{"one dimension over", 150, 80, 100, 53},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := downscale(solidImage(tt.w, tt.h), 100)
			b := out.Bounds()
			assert.Equal(t, tt.wantW, b.Dx())
			assert.Equal(t, tt.wantH, b.Dy())
		})
	}
}

func TestDownscaleLeavesSmallImagesAlone(t *testing.T) {
	src := solidImage(80, 60)
	out := downscale(src, 100)
	assert.Same(t, src, out)
}

func TestDownscaleAvatarJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatar.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, solidImage(250, 500), nil))
	require.NoError(t, f.Close())

	require.NoError(t, DownscaleAvatar(path))

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, 100, cfg.Height)
}

func TestDownscaleAvatarPNGKeepsFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatar.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solidImage(300, 120)))
	require.NoError(t, f.Close())

	require.NoError(t, DownscaleAvatar(path))

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 40, cfg.Height)
}

func TestDownscaleAvatarRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatar.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	assert.Error(t, DownscaleAvatar(path))
}

func TestIsImageFilename(t *testing.T) {
	assert.True(t, IsImageFilename("me.JPG"))
	assert.True(t, IsImageFilename("me.jpeg"))
	assert.True(t, IsImageFilename("me.png"))
	assert.False(t, IsImageFilename("me.gif"))
	assert.False(t, IsImageFilename("me.pdf"))
	assert.False(t, IsImageFilename("me"))
}
