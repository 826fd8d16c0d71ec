// Package background synthesizes the base canvas of a quote image.
//
// A [Config] describes one of four kinds of background:
//
//   - solid: a uniform fill
//   - gradient: a two-stop vertical gradient, blended in Lab space
//   - pattern: a tile image, or a generated motif, repeated over a base color
//   - photo: an image center-cropped to fill the canvas, optionally blurred
//     and faded over a base color
//
// Named presets are grouped into categories by a [Catalog], which combines
// the built-in tables with photos found on disk and presets from the
// configuration file.
package background

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/quotecraft/pkg/errors"
	"github.com/matzehuels/quotecraft/pkg/palette"
)

// Kind selects how a background is produced.
type Kind string

// Background kinds.
const (
	KindSolid    Kind = "solid"
	KindGradient Kind = "gradient"
	KindPattern  Kind = "pattern"
	KindPhoto    Kind = "photo"
)

// Kinds lists every background kind in display order.
var Kinds = []Kind{KindSolid, KindGradient, KindPattern, KindPhoto}

// Config describes a background. Colors are palette names or hex strings.
type Config struct {
	Name     string  `toml:"name"`
	Category string  `toml:"category"`
	Kind     Kind    `toml:"kind"`
	Color    string  `toml:"color"`   // fill, or base under pattern/photo
	From     string  `toml:"from"`    // gradient top
	To       string  `toml:"to"`      // gradient bottom
	Path     string  `toml:"path"`    // photo, or pattern tile
	Motif    Motif   `toml:"motif"`   // generated pattern when Path is empty
	Ink      string  `toml:"ink"`     // motif color
	Spacing  int     `toml:"spacing"` // motif cell size in px
	Blur     float64 `toml:"blur"`    // Gaussian sigma, 0 for none
	Opacity  float64 `toml:"opacity"` // layer opacity over Color, 0 means opaque
}

// Renderer renders background configs, resolving color names through a
// palette.
type Renderer struct {
	Palette *palette.Palette
}

// Render renders cfg with the built-in palette.
func Render(cfg Config, w, h int) (*image.NRGBA, error) {
	return Renderer{}.Render(cfg, w, h)
}

// Render synthesizes a w×h canvas for cfg.
func (r Renderer) Render(cfg Config, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas size must be positive, got %dx%d", w, h)
	}
	if err := r.Validate(cfg); err != nil {
		return nil, err
	}

	switch cfg.Kind {
	case KindSolid:
		c, _ := r.color(cfg.Color, color.Black)
		return imaging.New(w, h, c), nil
	case KindGradient:
		from, _ := r.color(cfg.From, color.Black)
		to, _ := r.color(cfg.To, color.Black)
		return gradient(w, h, from, to), nil
	case KindPattern:
		return r.pattern(cfg, w, h)
	case KindPhoto:
		return r.photo(cfg, w, h)
	}
	return nil, errors.New(errors.ErrCodeInvalidBackground, "unknown background kind %q", cfg.Kind)
}

// Validate checks that cfg has what its kind needs.
func (r Renderer) Validate(cfg Config) error {
	need := func(field, value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(errors.ErrCodeInvalidBackground, "%s background %q needs %s", cfg.Kind, cfg.Name, field)
		}
		if _, err := r.color(value, nil); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidBackground, err, "%s of background %q", field, cfg.Name)
		}
		return nil
	}
	optional := func(field, value string) error {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		return need(field, value)
	}

	switch cfg.Kind {
	case KindSolid:
		if err := need("color", cfg.Color); err != nil {
			return err
		}
	case KindGradient:
		if err := need("from", cfg.From); err != nil {
			return err
		}
		if err := need("to", cfg.To); err != nil {
			return err
		}
	case KindPattern:
		if cfg.Path == "" && cfg.Motif == "" {
			return errors.New(errors.ErrCodeInvalidBackground, "pattern background %q needs a path or a motif", cfg.Name)
		}
		if cfg.Path == "" && !cfg.Motif.valid() {
			return errors.New(errors.ErrCodeInvalidBackground, "unknown motif %q (want one of %s)", cfg.Motif, motifList())
		}
		if err := optional("color", cfg.Color); err != nil {
			return err
		}
		if err := optional("ink", cfg.Ink); err != nil {
			return err
		}
	case KindPhoto:
		if cfg.Path == "" {
			return errors.New(errors.ErrCodeInvalidBackground, "photo background %q needs a path", cfg.Name)
		}
		if err := optional("color", cfg.Color); err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidBackground, "unknown background kind %q", cfg.Kind)
	}

	if cfg.Path != "" {
		if err := errors.ValidatePath(cfg.Path); err != nil {
			return err
		}
	}
	if cfg.Opacity < 0 || cfg.Opacity > 1 {
		return errors.New(errors.ErrCodeInvalidBackground, "opacity must be between 0 and 1, got %v", cfg.Opacity)
	}
	if cfg.Blur < 0 {
		return errors.New(errors.ErrCodeInvalidBackground, "blur must not be negative, got %v", cfg.Blur)
	}
	if cfg.Spacing < 0 {
		return errors.New(errors.ErrCodeInvalidBackground, "spacing must not be negative, got %d", cfg.Spacing)
	}
	return nil
}

// color resolves s, returning def when s is empty.
func (r Renderer) color(s string, def color.Color) (color.Color, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	p := r.Palette
	if p == nil {
		p = palette.Default()
	}
	return p.Parse(s)
}

func opacity(o float64) float64 {
	if o == 0 {
		return 1
	}
	return o
}

// gradient fills rows top to bottom from one color to the other. The first
// row is exactly from and the last exactly to.
func gradient(w, h int, from, to color.Color) *image.NRGBA {
	a, _ := colorful.MakeColor(from)
	b, _ := colorful.MakeColor(to)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		var c color.NRGBA
		switch {
		case y == 0:
			c = color.NRGBAModel.Convert(from).(color.NRGBA)
		case y == h-1:
			c = color.NRGBAModel.Convert(to).(color.NRGBA)
		default:
			t := float64(y) / float64(h-1)
			r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
			c = color.NRGBA{R: r, G: g, B: bl, A: 0xff}
		}
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}
	return img
}

func (r Renderer) pattern(cfg Config, w, h int) (*image.NRGBA, error) {
	base, _ := r.color(cfg.Color, color.White)

	var tile image.Image
	if cfg.Path != "" {
		img, err := open(cfg.Path)
		if err != nil {
			return nil, err
		}
		tile = img
	} else {
		ink, _ := r.color(cfg.Ink, color.Black)
		tile = cfg.Motif.Tile(cfg.Spacing, ink)
	}

	layer := Tile(tile, w, h)
	out := imaging.Overlay(imaging.New(w, h, base), layer, image.Pt(0, 0), opacity(cfg.Opacity))
	if cfg.Blur > 0 {
		out = imaging.Blur(out, cfg.Blur)
	}
	return out, nil
}

// Tile repeats tile from the origin until it covers a w×h canvas.
// imaging.Paste clones the whole canvas per call, so tiles are copied with
// draw.Draw into a single destination.
func Tile(tile image.Image, w, h int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	tb := tile.Bounds()
	if tb.Dx() <= 0 || tb.Dy() <= 0 {
		return out
	}
	for y := 0; y < h; y += tb.Dy() {
		for x := 0; x < w; x += tb.Dx() {
			r := image.Rect(x, y, x+tb.Dx(), y+tb.Dy())
			draw.Draw(out, r, tile, tb.Min, draw.Src)
		}
	}
	return out
}

func (r Renderer) photo(cfg Config, w, h int) (*image.NRGBA, error) {
	img, err := open(cfg.Path)
	if err != nil {
		return nil, err
	}
	fill := imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
	if cfg.Blur > 0 {
		fill = imaging.Blur(fill, cfg.Blur)
	}
	// Transparent regions show the base color, never an empty canvas.
	base, _ := r.color(cfg.Color, color.Black)
	return imaging.Overlay(imaging.New(w, h, base), fill, image.Pt(0, 0), opacity(cfg.Opacity)), nil
}

// open decodes an image file, honoring EXIF orientation.
func open(path string) (image.Image, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "background image %s", path)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBackground, err, "decode %s", path)
	}
	return img, nil
}
