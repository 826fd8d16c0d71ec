package render

import (
	"context"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"

	"github.com/matzehuels/quotecraft/pkg/background"
	"github.com/matzehuels/quotecraft/pkg/errors"
	"github.com/matzehuels/quotecraft/pkg/fonts"
	"github.com/matzehuels/quotecraft/pkg/layout"
	"github.com/matzehuels/quotecraft/pkg/observability"
	"github.com/matzehuels/quotecraft/pkg/overlay"
	"github.com/matzehuels/quotecraft/pkg/palette"
)

// Shadow is the offset copy of the text drawn beneath it.
type Shadow struct {
	Enabled bool
	Color   color.Color // nil means black
	Offset  float64     // horizontal offset in px
}

// Text is what gets drawn. When Lines is non-empty the fixed layout is
// used and Quote is ignored.
type Text struct {
	Quote string
	Lines []string
}

// Request describes one image.
type Request struct {
	Width, Height int
	Background    background.Config
	Overlay       image.Image // nil for none
	Font          *fonts.Font // nil for the embedded default
	Color         color.Color // nil picks black or white by contrast
	Shadow        Shadow
	Text          Text

	Margin float64             // text box inset for quotes
	Fit    layout.FitOptions   // size search bounds for quotes
	Fixed  layout.FixedOptions // placement for lines; zero uses the classic layout
}

// Result is a rendered image and how its text was laid out.
type Result struct {
	Image     image.Image
	Size      float64  // font size used
	Lines     []string // lines as drawn
	Overflow  bool     // the quote did not fit even at the minimum size
	TextColor color.Color
}

// Composer renders requests.
type Composer struct {
	Backgrounds background.Renderer
	Logger      *log.Logger
}

// NewComposer creates a composer that resolves background colors through p.
func NewComposer(p *palette.Palette, logger *log.Logger) *Composer {
	if logger == nil {
		logger = log.Default()
	}
	return &Composer{Backgrounds: background.Renderer{Palette: p}, Logger: logger}
}

// Compose renders req. The context is checked between stages.
func (c *Composer) Compose(ctx context.Context, req Request) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}
	if req.Font == nil {
		req.Font = fonts.Default()
	}
	if strings.TrimSpace(req.Text.Quote) == "" && !hasText(req.Text.Lines) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no text to draw")
	}

	var bg *image.NRGBA
	err := observability.Stage(ctx, observability.StageBackground, func() error {
		logger.Debug("Rendering background", "kind", req.Background.Kind, "name", req.Background.Name)
		var err error
		bg, err = c.Backgrounds.Render(req.Background, req.Width, req.Height)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.Overlay != nil {
		_ = observability.Stage(ctx, observability.StageOverlay, func() error {
			bg = overlay.Apply(bg, req.Overlay)
			return nil
		})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var placed []placement
	res := &Result{}
	_ = observability.Stage(ctx, observability.StageLayout, func() error {
		if len(req.Text.Lines) > 0 {
			placed, res.Size = fixedPlacements(req)
			res.Lines = req.Text.Lines
			return nil
		}
		box := layout.Inset(req.Width, req.Height, req.Margin)
		fit := layout.Fit(req.Font, req.Text.Quote, box, req.Fit)
		logger.Debug("Fitted quote", "size", fit.Size, "lines", len(fit.Lines), "overflow", fit.Overflow)
		placed = centeredPlacements(fit, box)
		res.Size, res.Lines, res.Overflow = fit.Size, fit.Lines, fit.Overflow
		return nil
	})

	textColor := req.Color
	if textColor == nil {
		textColor = palette.Contrast(bg, textBounds(placed, req.Font, res.Size))
		logger.Debug("Picked text color by contrast", "color", textColor)
	}
	res.TextColor = textColor

	dc := gg.NewContextForImage(bg)
	err = observability.Stage(ctx, observability.StageText, func() error {
		dc.SetFontFace(req.Font.Face(res.Size))
		if req.Shadow.Enabled {
			shadow := req.Shadow.Color
			if shadow == nil {
				shadow = color.Black
			}
			dc.SetColor(shadow)
			for _, p := range placed {
				dc.DrawStringAnchored(p.text, p.x+req.Shadow.Offset, p.y, p.ax, p.ay)
			}
		}
		// Every shadow is down before any fill.
		if err := ctx.Err(); err != nil {
			return err
		}
		dc.SetColor(textColor)
		for _, p := range placed {
			dc.DrawStringAnchored(p.text, p.x, p.y, p.ax, p.ay)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Image = dc.Image()
	return res, nil
}

// placement is one line at an anchor point, in gg's anchored-text terms.
type placement struct {
	text   string
	x, y   float64
	ax, ay float64
}

func centeredPlacements(fit layout.Result, box layout.Box) []placement {
	out := make([]placement, 0, len(fit.Lines))
	cx := box.X + box.W/2
	for i, line := range fit.Lines {
		out = append(out, placement{text: line, x: cx, y: fit.LineY(box, i), ax: 0.5, ay: 0.5})
	}
	return out
}

func fixedPlacements(req Request) ([]placement, float64) {
	opts := req.Fixed
	if opts == (layout.FixedOptions{}) {
		opts = layout.ScaleFixed(layout.DefaultFixedOptions(), req.Width)
	}
	if opts.Size <= 0 {
		opts.Size = layout.DefaultFixedSize
	}
	var out []placement
	for _, p := range layout.Fixed(req.Text.Lines, opts) {
		// Anchor (0, 1) puts the text's top-left corner at (X, Y).
		out = append(out, placement{text: p.Text, x: p.X, y: p.Y, ax: 0, ay: 1})
	}
	return out, opts.Size
}

// textBounds approximates the pixel area covered by placed text.
func textBounds(placed []placement, f *fonts.Font, size float64) image.Rectangle {
	var r image.Rectangle
	for _, p := range placed {
		if p.text == "" {
			continue
		}
		w := f.Measure(p.text, size)
		x0 := p.x - w*p.ax
		y0 := p.y - size*(1-p.ay) // gg shifts the baseline down by ay*height
		line := image.Rect(int(x0), int(y0), int(x0+w)+1, int(y0+size)+1)
		r = r.Union(line)
	}
	return r
}

func hasText(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}
