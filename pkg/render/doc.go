// Package render composes quote images.
//
// # Overview
//
// A [Composer] turns a [Request] into a finished image in four stages:
//
//  1. Background: synthesized by the background package (solid, gradient,
//     pattern, or photo).
//  2. Overlay: the optional watermark, composited at the origin.
//  3. Shadow pass: every line of text drawn offset in the shadow color.
//  4. Fill pass: every line drawn in the text color.
//
// Text comes in one of two shapes. A quote is word-wrapped and sized by
// [layout.Fit] to the largest size that fits the text box, then centered.
// Explicit lines keep the classic fixed placement from [layout.Fixed].
//
// # Output
//
// [Save] writes JPEG files and [OutputPath] maps an image name to a file in
// the output directory:
//
//	path, err := render.OutputPath("Quotes_Output", "monday")
//	err = render.Save(res.Image, path, 95)
//
// [layout.Fit]: github.com/matzehuels/quotecraft/pkg/layout
// [layout.Fixed]: github.com/matzehuels/quotecraft/pkg/layout
package render
