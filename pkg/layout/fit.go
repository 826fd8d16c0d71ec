package layout

// Defaults for the font-size search.
const (
	DefaultMinSize     = 16
	DefaultMaxSize     = 160
	DefaultLineSpacing = 1.3
	DefaultMargin      = 120
)

// Box is the rectangle text must fit in, in canvas pixels.
type Box struct {
	X, Y, W, H float64
}

// Inset returns the canvas rectangle of size w×h shrunk by margin on every
// side. A margin that would leave no room collapses to an empty box.
func Inset(w, h int, margin float64) Box {
	b := Box{X: margin, Y: margin, W: float64(w) - 2*margin, H: float64(h) - 2*margin}
	if b.W < 0 {
		b.W = 0
	}
	if b.H < 0 {
		b.H = 0
	}
	return b
}

// FitOptions bounds the font-size search.
type FitOptions struct {
	MinSize     int     // smallest size tried, in points
	MaxSize     int     // largest size tried, in points
	LineSpacing float64 // line height as a multiple of the size
}

// DefaultFitOptions returns the default search bounds.
func DefaultFitOptions() FitOptions {
	return FitOptions{
		MinSize:     DefaultMinSize,
		MaxSize:     DefaultMaxSize,
		LineSpacing: DefaultLineSpacing,
	}
}

func (o FitOptions) normalized() FitOptions {
	if o.MinSize <= 0 {
		o.MinSize = DefaultMinSize
	}
	if o.MaxSize <= 0 {
		o.MaxSize = DefaultMaxSize
	}
	if o.MaxSize < o.MinSize {
		o.MaxSize = o.MinSize
	}
	if o.LineSpacing <= 0 {
		o.LineSpacing = DefaultLineSpacing
	}
	return o
}

// Result is the outcome of a fit.
type Result struct {
	Size       float64  // chosen font size
	Lines      []string // wrapped lines at Size
	LineHeight float64  // baseline-to-baseline distance
	Overflow   bool     // true when even MinSize does not fit
}

// Height returns the total height of the text block.
func (r Result) Height() float64 {
	return float64(len(r.Lines)) * r.LineHeight
}

// LineY returns the vertical center of line i when the block is centered
// vertically in box.
func (r Result) LineY(box Box, i int) float64 {
	top := box.Y + (box.H-r.Height())/2
	return top + (float64(i)+0.5)*r.LineHeight
}

// Fits reports whether text wrapped at size fits box, and returns the lines.
func Fits(m Measurer, text string, size float64, box Box, lineSpacing float64) ([]string, bool) {
	lines := Wrap(m, text, size, box.W)
	if widest(m, lines, size) > box.W {
		return lines, false
	}
	return lines, float64(len(lines))*size*lineSpacing <= box.H
}

// Fit finds the largest integer size in [MinSize, MaxSize] at which text
// fits box. It binary-searches on the assumption that a size that fits
// implies every smaller size fits.
//
// When no size fits, the result uses MinSize and sets Overflow. Empty text
// yields no lines at MaxSize.
func Fit(m Measurer, text string, box Box, opts FitOptions) Result {
	opts = opts.normalized()

	lo, hi := opts.MinSize, opts.MaxSize
	best := -1
	var bestLines []string
	for lo <= hi {
		mid := lo + (hi-lo)/2
		lines, ok := Fits(m, text, float64(mid), box, opts.LineSpacing)
		if ok {
			best, bestLines = mid, lines
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if best < 0 {
		size := float64(opts.MinSize)
		return Result{
			Size:       size,
			Lines:      Wrap(m, text, size, box.W),
			LineHeight: size * opts.LineSpacing,
			Overflow:   true,
		}
	}

	size := float64(best)
	return Result{
		Size:       size,
		Lines:      bestLines,
		LineHeight: size * opts.LineSpacing,
	}
}
