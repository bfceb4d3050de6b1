package services

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const maxAvatarSize = 100

// DownscaleAvatar rewrites the stored avatar so it fits within 100x100,
// preserving aspect ratio. Images already inside the bound are left alone.
func DownscaleAvatar(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decoding avatar: %w", err)
	}

	scaled := downscale(img, maxAvatarSize)
	if scaled == img {
		return nil
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	switch format {
	case "png":
		return png.Encode(out, scaled)
	default:
		return jpeg.Encode(out, scaled, &jpeg.Options{Quality: 90})
	}
}

// downscale scales the image so its longer dimension equals max, keeping
// aspect ratio. Returns the input unchanged when already within bounds.
func downscale(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	var nw, nh int
	if w >= h {
		nw = max
		nh = h * max / w
	} else {
		nh = max
		nw = w * max / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// IsImageFilename reports whether the filename carries a supported
// image extension.
func IsImageFilename(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
