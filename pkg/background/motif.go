package background

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
)

// Motif is a generated repeating pattern.
type Motif string

// Built-in motifs.
const (
	MotifDots    Motif = "dots"
	MotifStripes Motif = "stripes"
	MotifGrid    Motif = "grid"
	MotifChecks  Motif = "checks"
)

// Motifs lists the built-in motifs.
var Motifs = []Motif{MotifDots, MotifStripes, MotifGrid, MotifChecks}

// DefaultSpacing is the motif cell size used when none is configured.
const DefaultSpacing = 40

func (m Motif) valid() bool {
	for _, v := range Motifs {
		if m == v {
			return true
		}
	}
	return false
}

func motifList() string {
	names := make([]string, len(Motifs))
	for i, m := range Motifs {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// Tile draws one seamless cell of the motif in ink on a transparent
// background. Cells are square with side spacing.
func (m Motif) Tile(spacing int, ink color.Color) image.Image {
	if spacing <= 0 {
		spacing = DefaultSpacing
	}
	s := float64(spacing)

	dc := gg.NewContext(spacing, spacing)
	dc.SetColor(ink)

	switch m {
	case MotifDots:
		dc.DrawCircle(s/2, s/2, s*0.14)
		dc.Fill()
	case MotifStripes:
		// The diagonal plus its two corner remnants keeps the stripe
		// continuous across tile edges.
		dc.SetLineWidth(s * 0.18)
		dc.DrawLine(0, s, s, 0)
		dc.DrawLine(-s/2, s/2, s/2, -s/2)
		dc.DrawLine(s/2, s*1.5, s*1.5, s/2)
		dc.Stroke()
	case MotifGrid:
		lw := max(1, s*0.04)
		dc.DrawRectangle(0, 0, s, lw)
		dc.DrawRectangle(0, 0, lw, s)
		dc.Fill()
	case MotifChecks:
		dc.DrawRectangle(0, 0, s/2, s/2)
		dc.DrawRectangle(s/2, s/2, s/2, s/2)
		dc.Fill()
	}
	return dc.Image()
}
