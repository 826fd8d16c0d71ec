// Package config loads quotecraft's optional TOML configuration.
//
// Settings come from three layers: the defaults in [Default], an optional
// config file decoded on top of them, and command-line flags applied by the
// CLI. The file is only ever read; quotecraft never writes it.
//
// Example config.toml:
//
//	[paths]
//	backgrounds = "~/Pictures/quote-backgrounds"
//	fonts = "Fonts"
//
//	[canvas]
//	width = 1080
//	height = 1350
//
//	[text]
//	font = "playfair-display"
//	color = "cream"
//
//	[colors]
//	brand = "#e63946"
//
//	[[backgrounds]]
//	name = "launch"
//	kind = "gradient"
//	from = "brand"
//	to = "#1d3557"
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/quotecraft/pkg/background"
	"github.com/matzehuels/quotecraft/pkg/errors"
	"github.com/matzehuels/quotecraft/pkg/layout"
	"github.com/matzehuels/quotecraft/pkg/overlay"
)

// AppName names the config and cache directories.
const AppName = "quotecraft"

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Default values not owned by another package.
const (
	DefaultWidth     = 1080
	DefaultHeight    = 1080
	DefaultOutputDir = "Quotes_Output"
	DefaultFontsDir  = "Fonts"
	DefaultQuality   = 95
	DefaultColor     = "white"
	DefaultShadowPx  = 2
)

// Config is the merged configuration.
type Config struct {
	Paths       Paths               `toml:"paths"`
	Canvas      Canvas              `toml:"canvas"`
	Text        Text                `toml:"text"`
	Output      Output              `toml:"output"`
	Colors      map[string]string   `toml:"colors"`
	Backgrounds []background.Config `toml:"backgrounds"`
}

// Paths locates on-disk assets.
type Paths struct {
	Backgrounds string `toml:"backgrounds"`
	Fonts       string `toml:"fonts"`
	Output      string `toml:"output"`
	Overlay     string `toml:"overlay"`
}

// Canvas sizes the output image.
type Canvas struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Margin float64 `toml:"margin"`
}

// Text controls how the quote is drawn.
type Text struct {
	Font         string  `toml:"font"`
	Color        string  `toml:"color"`
	MinSize      int     `toml:"min_size"`
	MaxSize      int     `toml:"max_size"`
	LineSpacing  float64 `toml:"line_spacing"`
	Shadow       *bool   `toml:"shadow"`
	ShadowOffset float64 `toml:"shadow_offset"`
}

// ShadowEnabled reports whether the drop shadow is on (default true).
func (t Text) ShadowEnabled() bool {
	return t.Shadow == nil || *t.Shadow
}

// Output controls JPEG encoding.
type Output struct {
	Quality int `toml:"quality"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Paths: Paths{
			Backgrounds: background.DefaultDir,
			Fonts:       DefaultFontsDir,
			Output:      DefaultOutputDir,
			Overlay:     overlay.DefaultPath,
		},
		Canvas: Canvas{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Margin: layout.DefaultMargin,
		},
		Text: Text{
			Color:        DefaultColor,
			MinSize:      layout.DefaultMinSize,
			MaxSize:      layout.DefaultMaxSize,
			LineSpacing:  layout.DefaultLineSpacing,
			ShadowOffset: DefaultShadowPx,
		},
		Output: Output{Quality: DefaultQuality},
	}
}

// Load reads the config file at path over the defaults. An empty path
// means the default location; a missing file at the default location is
// not an error, but a missing explicit path is. Unknown keys are returned
// as warnings.
func Load(path string) (Config, []string, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, nil, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	var warnings []string
	for _, k := range md.Undecoded() {
		warnings = append(warnings, "unknown config key "+k.String())
	}
	sort.Strings(warnings)

	cfg.expandPaths()
	if err := cfg.Validate(); err != nil {
		return cfg, warnings, err
	}
	return cfg, warnings, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Margin < 0 || 2*c.Canvas.Margin >= float64(min(c.Canvas.Width, c.Canvas.Height)) {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas margin %v leaves no room for text", c.Canvas.Margin)
	}
	if c.Text.MinSize <= 0 || c.Text.MaxSize < c.Text.MinSize {
		return errors.New(errors.ErrCodeInvalidConfig, "text sizes must satisfy 0 < min_size <= max_size, got %d..%d", c.Text.MinSize, c.Text.MaxSize)
	}
	if c.Text.LineSpacing <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "line_spacing must be positive")
	}
	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return errors.New(errors.ErrCodeInvalidConfig, "quality must be between 1 and 100, got %d", c.Output.Quality)
	}
	seen := map[string]bool{}
	for i, b := range c.Backgrounds {
		if strings.TrimSpace(b.Name) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "backgrounds[%d] has no name", i)
		}
		key := strings.ToLower(b.Name)
		if seen[key] {
			return errors.New(errors.ErrCodeInvalidConfig, "background %q defined twice", b.Name)
		}
		seen[key] = true
	}
	return nil
}

// expandPaths replaces a leading ~ with the user's home directory.
func (c *Config) expandPaths() {
	for _, p := range []*string{&c.Paths.Backgrounds, &c.Paths.Fonts, &c.Paths.Output, &c.Paths.Overlay} {
		*p = expandHome(*p)
	}
	for i := range c.Backgrounds {
		c.Backgrounds[i].Path = expandHome(c.Backgrounds[i].Path)
	}
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/quotecraft/config.toml).
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, FileName), nil
}

// CacheDir returns the cache directory using the XDG standard
// (~/.cache/quotecraft/).
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
