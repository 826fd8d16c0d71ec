package background

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/quotecraft/pkg/errors"
)

// Category names of the built-in presets.
const (
	CategorySolid    = "solid"
	CategoryGradient = "gradient"
	CategoryPattern  = "pattern"
	CategoryPhoto    = "photo"
)

// DefaultDir is where photo backgrounds are discovered by default.
const DefaultDir = "Backgrounds"

var solids = map[string]string{
	"black":    "#000000",
	"white":    "#ffffff",
	"cream":    "#f7f4ec",
	"charcoal": "#26211a",
	"navy":     "#1b2a49",
	"blush":    "#f4d6d2",
	"sage":     "#b7c4a8",
}

var gradients = map[string][2]string{
	"sunset":   {"#ff7e5f", "#feb47b"},
	"ocean":    {"#2193b0", "#6dd5ed"},
	"dusk":     {"#2c3e50", "#4ca1af"},
	"peach":    {"#ffecd2", "#fcb69f"},
	"midnight": {"#0f2027", "#2c5364"},
	"lavender": {"#e0c3fc", "#8ec5fc"},
}

var patterns = map[string]Config{
	"polka":     {Color: "#f4d6d2", Ink: "#ffffff", Motif: MotifDots, Spacing: 48, Opacity: 0.9},
	"pinstripe": {Color: "#1b2a49", Ink: "#ffffff", Motif: MotifStripes, Spacing: 36, Opacity: 0.12},
	"blueprint": {Color: "#1b4f8a", Ink: "#ffffff", Motif: MotifGrid, Spacing: 54, Opacity: 0.3},
	"checker":   {Color: "#f7f4ec", Ink: "#26211a", Motif: MotifChecks, Spacing: 60, Opacity: 0.08},
}

// Builtin returns the built-in presets, unsorted.
func Builtin() []Config {
	var out []Config
	for name, hex := range solids {
		out = append(out, Config{Name: name, Category: CategorySolid, Kind: KindSolid, Color: hex})
	}
	for name, stops := range gradients {
		out = append(out, Config{Name: name, Category: CategoryGradient, Kind: KindGradient, From: stops[0], To: stops[1]})
	}
	for name, p := range patterns {
		p.Name, p.Category, p.Kind = name, CategoryPattern, KindPattern
		out = append(out, p)
	}
	return out
}

// imageExts are the photo extensions picked up by Discover.
var imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// Discover lists photo presets in dir, named by file stem. A missing
// directory yields no presets.
func Discover(dir string) ([]Config, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read backgrounds dir %s", dir)
	}

	var out []Config
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		out = append(out, Config{
			Name:     name,
			Category: CategoryPhoto,
			Kind:     KindPhoto,
			Path:     filepath.Join(dir, e.Name()),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Catalog groups background presets by category.
type Catalog struct {
	presets map[string]Config // keyed by lowercase name
}

// NewCatalog builds a catalog from the built-in presets, then photos, then
// custom presets. Later sources replace earlier ones with the same name.
// Custom presets without a category go into one named after their kind.
func NewCatalog(photos, custom []Config) *Catalog {
	c := &Catalog{presets: map[string]Config{}}
	for _, src := range [][]Config{Builtin(), photos, custom} {
		for _, p := range src {
			if p.Category == "" {
				p.Category = string(p.Kind)
			}
			c.presets[strings.ToLower(p.Name)] = p
		}
	}
	return c
}

// Lookup finds a preset by name, case-insensitively.
func (c *Catalog) Lookup(name string) (Config, bool) {
	p, ok := c.presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Resolve finds a preset by name or, failing that, treats ref as the path
// of an image file and returns a photo config for it.
func (c *Catalog) Resolve(ref string) (Config, error) {
	if p, ok := c.Lookup(ref); ok {
		return p, nil
	}
	if imageExts[strings.ToLower(filepath.Ext(ref))] {
		if st, err := os.Stat(ref); err == nil && !st.IsDir() {
			name := strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
			return Config{Name: name, Category: CategoryPhoto, Kind: KindPhoto, Path: ref}, nil
		}
	}
	return Config{}, errors.New(errors.ErrCodeBackgroundNotFound, "background %q not found", ref)
}

// Categories returns the categories that have presets, built-in ones first
// in a fixed order and any others sorted after them.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	for _, p := range c.presets {
		seen[p.Category] = true
	}

	var out []string
	for _, k := range Kinds {
		if seen[string(k)] {
			out = append(out, string(k))
			delete(seen, string(k))
		}
	}
	var rest []string
	for cat := range seen {
		rest = append(rest, cat)
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Presets returns the presets in category, sorted by name. An empty
// category returns every preset.
func (c *Catalog) Presets(category string) []Config {
	var out []Config
	for _, p := range c.presets {
		if category == "" || strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Len returns the number of presets.
func (c *Catalog) Len() int {
	return len(c.presets)
}
