package layout

// Defaults for the fixed-line layout.
const (
	DefaultFixedX    = 120
	DefaultFixedY    = 750
	DefaultFixedStep = 50
	DefaultFixedSize = 40
	DefaultLineCount = 5
)

// Placement is one line of text anchored at its top-left corner.
type Placement struct {
	Text string
	X, Y float64
}

// FixedOptions positions explicitly entered lines.
type FixedOptions struct {
	X, Y float64 // top-left of the first line
	Step float64 // vertical distance between lines
	Size float64 // font size
}

// DefaultFixedOptions returns the classic placement: five 40pt lines
// starting at (120, 750), 50px apart.
func DefaultFixedOptions() FixedOptions {
	return FixedOptions{
		X:    DefaultFixedX,
		Y:    DefaultFixedY,
		Step: DefaultFixedStep,
		Size: DefaultFixedSize,
	}
}

// Fixed places lines top to bottom starting at the origin in opts. Empty
// lines keep their slot so the user's spacing is preserved.
func Fixed(lines []string, opts FixedOptions) []Placement {
	if opts.Step == 0 {
		opts.Step = DefaultFixedStep
	}
	out := make([]Placement, len(lines))
	for i, l := range lines {
		out[i] = Placement{Text: l, X: opts.X, Y: opts.Y + opts.Step*float64(i)}
	}
	return out
}

// ScaleFixed rescales the classic placement, which assumes a 1080px-wide
// canvas, to a canvas of width w.
func ScaleFixed(opts FixedOptions, w int) FixedOptions {
	const reference = 1080.0
	if w <= 0 || w == reference {
		return opts
	}
	k := float64(w) / reference
	return FixedOptions{X: opts.X * k, Y: opts.Y * k, Step: opts.Step * k, Size: opts.Size * k}
}
