// Package overlay composites the fixed watermark graphic onto a background.
//
// The overlay is optional: when its file is not on disk, [Load] returns a
// nil image and rendering proceeds without it.
package overlay

import (
	"image"
	"os"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/quotecraft/pkg/errors"
)

// DefaultPath is where the watermark is looked for by default.
const DefaultPath = "Program Stuff/Img-2.png"

// Load decodes the overlay at path. A missing file yields (nil, nil).
func Load(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode overlay %s", path)
	}
	return img, nil
}

// Apply draws ov over bg at the origin using ov's own alpha. An overlay
// wider or taller than the canvas is scaled down to fit inside it, keeping
// its aspect ratio. A nil overlay returns bg unchanged.
func Apply(bg *image.NRGBA, ov image.Image) *image.NRGBA {
	if ov == nil {
		return bg
	}
	w, h := bg.Bounds().Dx(), bg.Bounds().Dy()
	if ov.Bounds().Dx() > w || ov.Bounds().Dy() > h {
		ov = imaging.Fit(ov, w, h, imaging.Lanczos)
	}
	return imaging.Overlay(bg, ov, image.Pt(0, 0), 1)
}
