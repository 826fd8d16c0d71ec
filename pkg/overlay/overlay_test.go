package overlay

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/quotecraft/pkg/errors"
)

func TestLoadMissing(t *testing.T) {
	img, err := Load(filepath.Join(t.TempDir(), "Img-2.png"))
	if err != nil || img != nil {
		t.Errorf("Load(missing) = %v, %v; want nil, nil", img, err)
	}
	img, err = Load("")
	if err != nil || img != nil {
		t.Errorf("Load(\"\") = %v, %v; want nil, nil", img, err)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Load(bad) err = %v, want INVALID_INPUT", err)
	}
}

func TestLoadAndApply(t *testing.T) {
	// A 20x20 watermark: opaque red top half, transparent bottom half.
	wm := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			wm.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	path := filepath.Join(t.TempDir(), "wm.png")
	if err := imaging.Save(wm, path); err != nil {
		t.Fatal(err)
	}

	ov, err := Load(path)
	if err != nil || ov == nil {
		t.Fatalf("Load: %v, %v", ov, err)
	}

	bg := imaging.New(40, 40, color.NRGBA{0, 0, 255, 255})
	out := Apply(bg, ov)

	if got := out.NRGBAAt(5, 5); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("covered pixel = %v, want red", got)
	}
	if got := out.NRGBAAt(5, 15); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("transparent area = %v, want background", got)
	}
	if got := out.NRGBAAt(30, 5); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("outside overlay = %v, want background", got)
	}
}

func TestApplyScalesWideOverlay(t *testing.T) {
	wide := imaging.New(100, 50, color.NRGBA{255, 0, 0, 255})
	bg := imaging.New(50, 50, color.NRGBA{0, 0, 255, 255})

	out := Apply(bg, wide)
	if got := out.NRGBAAt(45, 10); got.R < 250 {
		t.Errorf("scaled overlay should span the width, got %v", got)
	}
	if got := out.NRGBAAt(45, 40); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("below scaled overlay = %v, want background", got)
	}
}

func TestApplyFitsTallOverlay(t *testing.T) {
	tall := imaging.New(20, 100, color.NRGBA{255, 0, 0, 255})
	bg := imaging.New(50, 50, color.NRGBA{0, 0, 255, 255})

	out := Apply(bg, tall)
	// Scaled to 10x50: the whole height is covered, only the left strip.
	if got := out.NRGBAAt(5, 45); got.R < 250 {
		t.Errorf("bottom of scaled overlay = %v, want red", got)
	}
	if got := out.NRGBAAt(30, 10); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("right of scaled overlay = %v, want background", got)
	}
}

func TestApplyNil(t *testing.T) {
	bg := imaging.New(4, 4, color.White)
	if Apply(bg, nil) != bg {
		t.Error("Apply(nil) should return bg unchanged")
	}
}
