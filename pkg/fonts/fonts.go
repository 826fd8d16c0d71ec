// Package fonts discovers, loads, and sizes TrueType fonts for quote text.
//
// Fonts are looked up by a short name ("arial", "georgia") through an
// [Index] built from a local fonts directory plus the platform's system
// font directories (via go-findfont). When no font is requested the
// embedded Go Regular face is used, so rendering never depends on what is
// installed.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/quotecraft/pkg/errors"
)

// DefaultName is the display name of the embedded fallback font.
const DefaultName = "go-regular"

// Font is a parsed font with a per-size face cache.
type Font struct {
	Name string
	Path string // empty for the embedded font

	tt    *truetype.Font
	mu    sync.Mutex
	faces map[float64]font.Face
}

// Default returns the embedded Go Regular font.
func Default() *Font {
	defaultOnce.Do(func() {
		tt, err := truetype.Parse(goregular.TTF)
		if err != nil {
			panic(fmt.Errorf("parse embedded font: %w", err))
		}
		defaultFont = newFont(DefaultName, "", tt)
	})
	return defaultFont
}

var (
	defaultOnce sync.Once
	defaultFont *Font
)

// Load parses the TrueType file at path. An empty path returns [Default].
func Load(path string) (*Font, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "font file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFont, err, "read font %s", path)
	}
	f, err := Parse(nameOf(path), data)
	if err != nil {
		return nil, err
	}
	f.Path = path
	return f, nil
}

// Parse parses TrueType data under the given display name.
func Parse(name string, data []byte) (*Font, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFont, err, "parse font %s", name)
	}
	return newFont(name, "", tt), nil
}

func newFont(name, path string, tt *truetype.Font) *Font {
	return &Font{Name: name, Path: path, tt: tt, faces: map[float64]font.Face{}}
}

// Face returns a 72 DPI, fully hinted face at size points. Faces are cached
// per size; the font-size search asks for many sizes and often repeats.
func (f *Font) Face(size float64) font.Face {
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(f.tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	f.faces[size] = face
	return face
}

// nameOf derives the index name of a font file: the lowercase file stem.
func nameOf(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Measure returns the advance width of text at size, in pixels. It
// satisfies layout.Measurer.
func (f *Font) Measure(text string, size float64) float64 {
	w := font.MeasureString(f.Face(size), text)
	return float64(w) / 64
}
