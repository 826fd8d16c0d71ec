// Package layout places quote text on a fixed canvas.
//
// The main entry point is [Fit], which searches for the largest font size
// whose word-wrapped lines fit inside a box:
//
//	m := layout.MeasurerFunc(func(s string, size float64) float64 { ... })
//	res := layout.Fit(m, quote, layout.Box{X: 120, Y: 120, W: 840, H: 840}, layout.DefaultFitOptions())
//	for i, line := range res.Lines {
//	    // draw line at res.LineY(box, i)
//	}
//
// Width measurement is abstracted behind [Measurer] so the search can be
// driven by a real font face (see the render package) or by a synthetic
// measurer in tests.
//
// [Fixed] provides the older layout, where the user types each line and the
// lines are stacked at a fixed origin and step.
package layout
