package compose

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/eringen/fotocard/layout"
)

const (
	// MaxPhotoPixels caps width*height of an upload, checked from the header
	// before any pixel data is decoded.
	MaxPhotoPixels = 50_000_000

	// Photos are kept at twice the box size; the export never draws more.
	keepWidth  = 2 * layout.BoxWidth
	keepHeight = 2 * layout.BoxHeight
)

// ErrTooManyPixels is returned for photos over MaxPhotoPixels.
var ErrTooManyPixels = errors.New("compose: photo resolution too large")

// DecodePhoto decodes a JPEG, PNG, GIF, BMP or WebP photo, applying any EXIF
// orientation so portrait phone shots are placed upright. Photos larger than
// twice the photo box are scaled down to fit it.
func DecodePhoto(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("decode photo: empty image")
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPhotoPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode photo: empty image")
	}
	if b.Dx() > keepWidth || b.Dy() > keepHeight {
		img = imaging.Fit(img, keepWidth, keepHeight, imaging.Lanczos)
	}
	return img, nil
}
