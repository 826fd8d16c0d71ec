package layout

import "strings"

// Measurer reports the rendered pixel width of text at a font size.
type Measurer interface {
	Measure(text string, size float64) float64
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(text string, size float64) float64

// Measure calls f.
func (f MeasurerFunc) Measure(text string, size float64) float64 {
	return f(text, size)
}

// Wrap breaks text into lines no wider than maxWidth at the given size.
//
// Lines break only at word boundaries. Explicit newlines start a new line,
// and runs of spaces or tabs collapse to a single space. A word that is
// wider than maxWidth on its own is placed alone on a line and left to
// overflow; callers detect that through [Fits].
func Wrap(m Measurer, text string, size, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			continue
		}

		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if m.Measure(candidate, size) <= maxWidth {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = w
		}
		lines = append(lines, line)
	}

	// Trailing blank paragraphs carry no text.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// widest returns the width of the widest line.
func widest(m Measurer, lines []string, size float64) float64 {
	var w float64
	for _, l := range lines {
		if lw := m.Measure(l, size); lw > w {
			w = lw
		}
	}
	return w
}
