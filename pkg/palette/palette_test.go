package palette

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/quotecraft/pkg/errors"
)

func TestParse(t *testing.T) {
	p := Default()

	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"white", "white", color.RGBA{255, 255, 255, 255}, false},
		{"black", "black", color.RGBA{0, 0, 0, 255}, false},
		{"case and space", "  White ", color.RGBA{255, 255, 255, 255}, false},
		{"named extra", "cream", color.RGBA{0xf7, 0xf4, 0xec, 255}, false},
		{"hex", "#ff8000", color.RGBA{255, 128, 0, 255}, false},
		{"hex without hash", "00ff00", color.RGBA{0, 255, 0, 255}, false},

		{"empty", "", color.RGBA{}, true},
		{"unknown name", "mauve", color.RGBA{}, true},
		{"short hex", "#fff", color.RGBA{}, true},
		{"bad hex", "#gggggg", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidColor) {
					t.Errorf("Parse(%q) code = %v, want INVALID_COLOR", tt.input, errors.GetCode(err))
				}
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestNewExtraColors(t *testing.T) {
	p, err := New(map[string]string{"Brand": "#123456", "white": "#fafafa"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := p.Parse("brand")
	if err != nil {
		t.Fatalf("Parse(brand): %v", err)
	}
	if diff := cmp.Diff(color.RGBA{0x12, 0x34, 0x56, 255}, got); diff != "" {
		t.Errorf("brand mismatch (-want +got):\n%s", diff)
	}

	got, _ = p.Parse("white")
	if diff := cmp.Diff(color.RGBA{0xfa, 0xfa, 0xfa, 255}, got); diff != "" {
		t.Errorf("override mismatch (-want +got):\n%s", diff)
	}

	if _, err := New(map[string]string{"bad": "nope"}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("New with invalid hex: err = %v, want INVALID_CONFIG", err)
	}
}

func TestNames(t *testing.T) {
	names := Default().Names()
	if len(names) != len(Named) {
		t.Fatalf("Names() len = %d, want %d", len(names), len(Named))
	}
	if names[0] != "white" || names[1] != "black" {
		t.Errorf("Names() should start with white, black; got %v", names[:2])
	}
}

func TestIsAuto(t *testing.T) {
	for _, s := range []string{"auto", "AUTO", " Auto "} {
		if !IsAuto(s) {
			t.Errorf("IsAuto(%q) = false", s)
		}
	}
	if IsAuto("white") {
		t.Error("IsAuto(white) = true")
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		name string
		bg   color.Color
		want color.Color
	}{
		{"dark background", color.RGBA{20, 20, 40, 255}, color.White},
		{"light background", color.RGBA{240, 235, 220, 255}, color.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 100, 100))
			for y := 0; y < 100; y++ {
				for x := 0; x < 100; x++ {
					img.Set(x, y, tt.bg)
				}
			}
			got := Contrast(img, img.Bounds())
			if got != tt.want {
				t.Errorf("Contrast() = %v, want %v", got, tt.want)
			}
		})
	}

	empty := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if got := Contrast(empty, image.Rect(50, 50, 60, 60)); got != color.White {
		t.Errorf("Contrast outside bounds = %v, want white", got)
	}
}
