// Package palette parses text colors for quote images.
//
// Colors are accepted either by name, from a small constant table that the
// configuration file may extend, or as six-digit hex. The special value
// [Auto] asks the renderer to pick black or white by background brightness.
package palette

import (
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/quotecraft/pkg/errors"
)

// Auto selects black or white text based on the background luminance.
const Auto = "auto"

// Named is the built-in color table.
var Named = map[string]string{
	"white":    "#ffffff",
	"black":    "#000000",
	"cream":    "#f7f4ec",
	"gold":     "#d4af37",
	"charcoal": "#26211a",
	"navy":     "#1b2a49",
	"rose":     "#e8a0a8",
	"teal":     "#2a9d8f",
}

// Palette resolves color names and hex strings.
type Palette struct {
	names map[string]colorful.Color
}

// New builds a palette from the built-in table plus extra entries.
// Extra entries override built-in names. Invalid hex values are rejected.
func New(extra map[string]string) (*Palette, error) {
	p := &Palette{names: make(map[string]colorful.Color, len(Named)+len(extra))}
	for name, hex := range Named {
		c, err := parseHex(hex)
		if err != nil {
			return nil, err
		}
		p.names[name] = c
	}
	for name, hex := range extra {
		c, err := parseHex(hex)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "color %q", name)
		}
		p.names[strings.ToLower(strings.TrimSpace(name))] = c
	}
	return p, nil
}

// Default returns a palette with only the built-in names.
func Default() *Palette {
	p, _ := New(nil)
	return p
}

// Parse resolves s to a color. Names are case-insensitive; hex may omit the
// leading '#'. Parse does not accept [Auto]; use [IsAuto] first.
func (p *Palette) Parse(s string) (color.Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return nil, errors.New(errors.ErrCodeInvalidColor, "color cannot be empty")
	}
	if c, ok := p.names[key]; ok {
		return toRGBA(c), nil
	}
	c, err := parseHex(key)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidColor, "unknown color %q (use a color name or #rrggbb)", s)
	}
	return toRGBA(c), nil
}

// Names returns the known color names, sorted, with white and black first.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.names))
	for name := range p.names {
		if name != "white" && name != "black" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{"white", "black"}, names...)
}

// IsAuto reports whether s requests automatic contrast.
func IsAuto(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), Auto)
}

// Contrast returns black or white, whichever reads better over the region r
// of img. The decision uses the mean Lab lightness of a sampled grid.
func Contrast(img image.Image, r image.Rectangle) color.Color {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return color.White
	}

	const samples = 24
	stepX := max(1, r.Dx()/samples)
	stepY := max(1, r.Dy()/samples)

	var sum float64
	var n int
	for y := r.Min.Y; y < r.Max.Y; y += stepY {
		for x := r.Min.X; x < r.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, _, _ := c.Lab()
			sum += l
			n++
		}
	}
	if n == 0 || sum/float64(n) < 0.6 {
		return color.White
	}
	return color.Black
}

func parseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 {
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
	}
	return c, nil
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
