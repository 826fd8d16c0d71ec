package cli

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/quotecraft/pkg/background"
	"github.com/matzehuels/quotecraft/pkg/config"
	"github.com/matzehuels/quotecraft/pkg/errors"
	"github.com/matzehuels/quotecraft/pkg/fonts"
	"github.com/matzehuels/quotecraft/pkg/layout"
	"github.com/matzehuels/quotecraft/pkg/overlay"
	"github.com/matzehuels/quotecraft/pkg/palette"
	"github.com/matzehuels/quotecraft/pkg/render"
)

// createOpts holds the command-line flags for the create command.
// Zero values mean "not given": the config file or a prompt fills them in.
type createOpts struct {
	background  string   // preset name or image path
	category    string   // start the picker in this category
	font        string   // font name, path, or system font
	color       string   // text color name, hex, or "auto"
	text        string   // quote to fit
	lines       []string // fixed lines
	classic     bool     // prompt for five fixed lines
	output      string   // image name
	outDir      string   // output directory
	overlay     string   // overlay image path
	noOverlay   bool
	width       int
	height      int
	quality     int
	minSize     int
	maxSize     int
	noShadow    bool
	interactive bool // prompt even when stdin is not a terminal
	noCache     bool // rebuild the font index
}

// createCommand creates the create command.
func (c *CLI) createCommand() *cobra.Command {
	var opts createOpts

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Compose a quote image",
		Long: `Compose a quote image and save it as a JPEG.

Anything not given as a flag is asked for when running in a terminal (or
with --interactive). After saving you can run again to make another image;
the background, text and image name flags apply to the first image only,
and later runs ask for them again.`,
		Example: `  quotecraft create
  quotecraft create -b sunset -t "Stay curious" -o monday
  quotecraft create -b navy -l "first line" -l "second line" -c gold`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCreate(cmd.Context(), &opts)
		},
	}

	bindCreateFlags(cmd, &opts)
	return cmd
}

func bindCreateFlags(cmd *cobra.Command, o *createOpts) {
	f := cmd.Flags()
	f.StringVarP(&o.background, "background", "b", "", "background preset or image path")
	f.StringVar(&o.category, "category", "", "open the background picker in this category")
	f.StringVarP(&o.font, "font", "f", "", "font name, file, or system font (default embedded Go Regular)")
	f.StringVarP(&o.color, "color", "c", "", "text color: name, #rrggbb, or auto")
	f.StringVarP(&o.text, "text", "t", "", `quote to fit and center ("\n" starts a new line)`)
	f.StringArrayVarP(&o.lines, "line", "l", nil, "fixed line at the classic position (repeatable)")
	f.BoolVar(&o.classic, "classic", false, "prompt for five fixed lines instead of one quote")
	f.StringVarP(&o.output, "output", "o", "", "image name (default: asked for, or generated)")
	f.StringVar(&o.outDir, "out-dir", "", "output directory (default "+config.DefaultOutputDir+")")
	f.StringVar(&o.overlay, "overlay", "", "overlay image (default \""+overlay.DefaultPath+"\")")
	f.BoolVar(&o.noOverlay, "no-overlay", false, "skip the overlay image")
	f.IntVar(&o.width, "width", 0, "canvas width in px (default 1080)")
	f.IntVar(&o.height, "height", 0, "canvas height in px (default 1080)")
	f.IntVar(&o.quality, "quality", 0, "JPEG quality 1-100 (default 95)")
	f.IntVar(&o.minSize, "min-size", 0, "smallest font size tried when fitting")
	f.IntVar(&o.maxSize, "max-size", 0, "largest font size tried when fitting")
	f.BoolVar(&o.noShadow, "no-shadow", false, "draw text without the drop shadow")
	f.BoolVarP(&o.interactive, "interactive", "i", false, "ask for missing values even without a terminal")
	f.BoolVar(&o.noCache, "no-cache", false, "rescan fonts instead of using the cached index")

	_ = cmd.RegisterFlagCompletionFunc("background", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, p := range background.NewCatalog(nil, nil).Presets("") {
			names = append(names, p.Name)
		}
		return names, cobra.ShellCompDirectiveDefault
	})
	_ = cmd.RegisterFlagCompletionFunc("color", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return append(palette.Default().Names(), palette.Auto), cobra.ShellCompDirectiveNoFileComp
	})
}

// apply layers the flags that were given over cfg.
func (o *createOpts) apply(cfg *config.Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, v int) {
		if v > 0 {
			*dst = v
		}
	}
	setString(&cfg.Text.Font, o.font)
	setString(&cfg.Text.Color, o.color)
	setString(&cfg.Paths.Output, o.outDir)
	setString(&cfg.Paths.Overlay, o.overlay)
	setInt(&cfg.Canvas.Width, o.width)
	setInt(&cfg.Canvas.Height, o.height)
	setInt(&cfg.Output.Quality, o.quality)
	setInt(&cfg.Text.MinSize, o.minSize)
	setInt(&cfg.Text.MaxSize, o.maxSize)
	if o.noShadow {
		off := false
		cfg.Text.Shadow = &off
	}
}

// =============================================================================
// Session
// =============================================================================

// session is what stays fixed across "run again" iterations.
type session struct {
	cfg      config.Config
	palette  *palette.Palette
	catalog  *background.Catalog
	composer *render.Composer
	overlay  image.Image
	font     *fonts.Font
}

func (c *CLI) newSession(ctx context.Context, opts *createOpts) (*session, error) {
	logger := log.FromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pal, err := palette.New(cfg.Colors)
	if err != nil {
		return nil, err
	}

	photos, err := background.Discover(cfg.Paths.Backgrounds)
	if err != nil {
		return nil, err
	}
	catalog := background.NewCatalog(photos, cfg.Backgrounds)
	logger.Debug("Loaded backgrounds", "presets", catalog.Len(), "photos", len(photos), "dir", cfg.Paths.Backgrounds)

	var ov image.Image
	if !opts.noOverlay {
		if ov, err = overlay.Load(cfg.Paths.Overlay); err != nil {
			return nil, err
		}
		if ov == nil {
			logger.Debug("No overlay image", "path", cfg.Paths.Overlay)
		}
	}

	font, err := c.loadFont(ctx, cfg, opts.noCache)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded font", "name", font.Name, "path", font.Path)

	return &session{
		cfg:      cfg,
		palette:  pal,
		catalog:  catalog,
		composer: render.NewComposer(pal, logger),
		overlay:  ov,
		font:     font,
	}, nil
}

// loadFont resolves the configured font. Only names that are not files
// need the font index.
func (c *CLI) loadFont(ctx context.Context, cfg config.Config, noCache bool) (*fonts.Font, error) {
	ref := strings.TrimSpace(cfg.Text.Font)
	if ref == "" || strings.EqualFold(ref, fonts.DefaultName) {
		return fonts.Default(), nil
	}
	if st, err := os.Stat(ref); err == nil && !st.IsDir() {
		return fonts.Load(ref)
	}
	idx, _, err := c.fontIndex(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	path, err := idx.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return fonts.Load(path)
}

// fontIndex loads the font index through the cache.
func (c *CLI) fontIndex(ctx context.Context, cfg config.Config, noCache bool) (fonts.Index, bool, error) {
	fc, err := newCache(noCache)
	if err != nil {
		return nil, false, err
	}
	defer fc.Close()

	opts := fonts.IndexOptions{Dirs: []string{cfg.Paths.Fonts}, System: true}
	idx, cached, err := fonts.LoadIndex(ctx, fc, opts)
	if err != nil {
		return nil, false, err
	}
	log.FromContext(ctx).Debug("Font index ready", "fonts", len(idx), "cached", cached)
	return idx, cached, nil
}

// resolveBackground finds a preset, an image path, or an image named
// <backgrounds>/<ref>.jpg.
func (s *session) resolveBackground(ref string) (background.Config, error) {
	bg, err := s.catalog.Resolve(ref)
	if err == nil {
		return bg, nil
	}
	if alt, altErr := s.catalog.Resolve(filepath.Join(s.cfg.Paths.Backgrounds, ref+".jpg")); altErr == nil {
		return alt, nil
	}
	return background.Config{}, err
}

// =============================================================================
// Pipeline
// =============================================================================

func (c *CLI) runCreate(ctx context.Context, opts *createOpts) error {
	s, err := c.newSession(ctx, opts)
	if err != nil {
		return err
	}

	interactive := opts.interactive || c.stdinIsTerminal()
	p := newPrompter(c.In, c.Out)

	for {
		if err := c.createOnce(ctx, s, opts, p, interactive); err != nil {
			return err
		}
		if !interactive {
			return nil
		}
		again, err := p.confirm(ctx, "Would you like to run again? (y/n) ")
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(c.Out, "Exiting...")
			return nil
		}
		opts.forgetPerImage()
	}
}

// forgetPerImage clears the flags that describe one particular image so a
// repeated run asks for them instead of overwriting the previous file.
// Style flags such as color and font stay in effect.
func (o *createOpts) forgetPerImage() {
	o.background, o.category = "", ""
	o.text, o.lines = "", nil
	o.output = ""
}

// createOnce runs one pass: background, text, color, render, name, save.
func (c *CLI) createOnce(ctx context.Context, s *session, opts *createOpts, p *prompter, interactive bool) error {
	logger := log.FromContext(ctx)

	bg, err := c.chooseBackground(ctx, s, opts, p, interactive)
	if err != nil {
		return err
	}
	text, err := chooseText(ctx, opts, p, interactive)
	if err != nil {
		return err
	}
	textColor, colorName, err := chooseColor(ctx, s, opts, p, interactive)
	if err != nil {
		return err
	}

	cfg := s.cfg
	req := render.Request{
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		Background: bg,
		Overlay:    s.overlay,
		Font:       s.font,
		Color:      textColor,
		Shadow:     render.Shadow{Enabled: cfg.Text.ShadowEnabled(), Offset: cfg.Text.ShadowOffset},
		Text:       text,
		Margin:     cfg.Canvas.Margin,
		Fit: layout.FitOptions{
			MinSize:     cfg.Text.MinSize,
			MaxSize:     cfg.Text.MaxSize,
			LineSpacing: cfg.Text.LineSpacing,
		},
	}
	if len(text.Lines) > 0 {
		req.Fixed = layout.ScaleFixed(layout.DefaultFixedOptions(), cfg.Canvas.Width)
	}

	watch := startStopwatch(logger)
	var spinOut io.Writer
	if isatty.IsTerminal(os.Stderr.Fd()) {
		spinOut = os.Stderr
	}
	var res *render.Result
	err = withSpinner(ctx, spinOut, "Rendering...", func() (err error) {
		res, err = s.composer.Compose(ctx, req)
		return err
	})
	if err != nil {
		return err
	}

	path, err := chooseOutputPath(ctx, s, opts, p, interactive)
	if err != nil {
		return err
	}
	if err := render.Save(res.Image, path, cfg.Output.Quality); err != nil {
		return err
	}
	watch.finish("Rendered", "file", filepath.Base(path))

	c.ui().success("Saved quote image")
	c.ui().file(path)
	if res.Overflow {
		c.ui().warn("Text does not fit even at %dpt; some of it may be cut off", cfg.Text.MinSize)
	}
	if textColor == nil {
		colorName = fmt.Sprintf("auto (%s)", colorLabel(res.TextColor))
	}
	c.ui().detail("%s · %s · %s · %.0fpt · %d lines", bg.Name, s.font.Name, colorName, res.Size, len(res.Lines))
	return nil
}

func (c *CLI) chooseBackground(ctx context.Context, s *session, opts *createOpts, p *prompter, interactive bool) (background.Config, error) {
	if opts.background != "" {
		return s.resolveBackground(opts.background)
	}
	if !interactive {
		return background.Config{}, errors.New(errors.ErrCodeInvalidInput, "no background given (use --background or run in a terminal)")
	}
	if c.stdinIsTerminal() {
		return c.pickBackground(ctx, s.catalog, opts.category)
	}

	for {
		name, err := p.ask(ctx, "Choose Background : ")
		if err != nil {
			return background.Config{}, closedInput(err, "a background")
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		bg, err := s.resolveBackground(name)
		if err == nil {
			return bg, nil
		}
		if !errors.Is(err, errors.ErrCodeBackgroundNotFound) {
			return background.Config{}, err
		}
		fmt.Fprintf(p.w, "Background %q not found. Please try again.\n", name)
	}
}

// pickBackground runs the bubbletea picker, optionally starting inside a
// category.
func (c *CLI) pickBackground(ctx context.Context, catalog *background.Catalog, category string) (background.Config, error) {
	m := NewBackgroundPickerModel(catalog)
	if category != "" {
		presets := catalog.Presets(category)
		if len(presets) == 0 {
			return background.Config{}, errors.New(errors.ErrCodeBackgroundNotFound, "no backgrounds in category %q", category)
		}
		m.Category, m.Presets = presets[0].Category, presets
	}

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return background.Config{}, err
	}
	fm, ok := final.(BackgroundPickerModel)
	if !ok || fm.Selected == nil {
		return background.Config{}, errors.New(errors.ErrCodeInvalidInput, "no background selected")
	}
	c.ui().info("Background: %s", StyleHighlight.Render(fm.Selected.Name))
	return *fm.Selected, nil
}

func chooseText(ctx context.Context, opts *createOpts, p *prompter, interactive bool) (render.Text, error) {
	if len(opts.lines) > 0 {
		return render.Text{Lines: opts.lines}, nil
	}
	if strings.TrimSpace(opts.text) != "" {
		return render.Text{Quote: unescapeNewlines(opts.text)}, nil
	}
	if !interactive {
		return render.Text{}, errors.New(errors.ErrCodeInvalidInput, "no text given (use --text or --line, or run in a terminal)")
	}

	if opts.classic {
		for {
			lines, err := p.lines(ctx, layout.DefaultLineCount)
			if err != nil {
				return render.Text{}, closedInput(err, "text")
			}
			if strings.TrimSpace(strings.Join(lines, "")) != "" {
				return render.Text{Lines: lines}, nil
			}
			fmt.Fprintln(p.w, "Enter at least one line.")
		}
	}

	for {
		q, err := p.ask(ctx, "Quote : ")
		if err != nil {
			return render.Text{}, closedInput(err, "a quote")
		}
		if strings.TrimSpace(q) != "" {
			return render.Text{Quote: unescapeNewlines(q)}, nil
		}
	}
}

// chooseColor returns the text color, or nil for automatic contrast, along
// with the name it was chosen by.
func chooseColor(ctx context.Context, s *session, opts *createOpts, p *prompter, interactive bool) (color.Color, string, error) {
	ref := opts.color
	if ref == "" && interactive {
		var err error
		if ref, err = p.color(ctx, s.palette, s.cfg.Text.Color); err != nil {
			return nil, "", closedInput(err, "a color")
		}
	}
	if ref == "" {
		ref = s.cfg.Text.Color
	}
	if palette.IsAuto(ref) {
		return nil, palette.Auto, nil
	}
	col, err := s.palette.Parse(ref)
	if err != nil {
		return nil, "", err
	}
	return col, ref, nil
}

func chooseOutputPath(ctx context.Context, s *session, opts *createOpts, p *prompter, interactive bool) (string, error) {
	if opts.output != "" || !interactive {
		return render.OutputPath(s.cfg.Paths.Output, opts.output)
	}
	for {
		name, err := p.ask(ctx, "Enter image name: ")
		if err != nil {
			return "", closedInput(err, "an image name")
		}
		path, err := render.OutputPath(s.cfg.Paths.Output, name)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, errors.ErrCodeInvalidPath) {
			return "", err
		}
		fmt.Fprintf(p.w, "Invalid image name: %s. Please try again.\n", errors.UserMessage(err))
	}
}

// unescapeNewlines turns a typed "\n" into a line break.
func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func colorLabel(c color.Color) string {
	if c == nil {
		return "?"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
