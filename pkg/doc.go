// Package pkg provides the libraries behind quotecraft, a tool that turns a
// quote into a share-ready image.
//
// # Overview
//
// A quote image is built in one linear pass:
//
//	background preset ([background])
//	         ↓
//	overlay graphic ([overlay])
//	         ↓
//	wrapped, fitted text ([layout], [fonts], [palette])
//	         ↓
//	JPEG file ([render])
//
// Supporting packages:
//
//   - [config]: the optional TOML config file and defaults
//   - [cache]: the file cache that keeps the font index between runs
//   - [errors]: coded errors and input validation
//   - [observability]: render stage and cache hooks
//   - [buildinfo]: version information injected at build time
//
// # Quick Start
//
//	c := render.NewComposer(palette.Default(), nil)
//	res, err := c.Compose(ctx, render.Request{
//	    Width:      1080,
//	    Height:     1080,
//	    Background: background.Config{Name: "dusk", Kind: background.KindGradient, From: "#2c3e50", To: "#4ca1af"},
//	    Text:       render.Text{Quote: "Stay curious."},
//	    Margin:     layout.DefaultMargin,
//	    Shadow:     render.Shadow{Enabled: true, Offset: 2},
//	})
//	if err != nil {
//	    return err
//	}
//	path, _ := render.OutputPath(render.DefaultOutputDir, "")
//	return render.Save(res.Image, path, render.DefaultQuality)
//
// [background]: github.com/matzehuels/quotecraft/pkg/background
// [overlay]: github.com/matzehuels/quotecraft/pkg/overlay
// [layout]: github.com/matzehuels/quotecraft/pkg/layout
// [fonts]: github.com/matzehuels/quotecraft/pkg/fonts
// [palette]: github.com/matzehuels/quotecraft/pkg/palette
// [render]: github.com/matzehuels/quotecraft/pkg/render
// [config]: github.com/matzehuels/quotecraft/pkg/config
// [cache]: github.com/matzehuels/quotecraft/pkg/cache
// [errors]: github.com/matzehuels/quotecraft/pkg/errors
// [observability]: github.com/matzehuels/quotecraft/pkg/observability
// [buildinfo]: github.com/matzehuels/quotecraft/pkg/buildinfo
package pkg
