package render

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/matzehuels/quotecraft/pkg/errors"
)

const (
	// DefaultOutputDir is where images are written when no directory is given.
	DefaultOutputDir = "Quotes_Output"
	// DefaultQuality is the JPEG quality used when none is given.
	DefaultQuality = 95
	// Ext is the extension appended to image names.
	Ext = ".jpg"
)

// OutputPath returns the file for image name inside dir. An empty name gets
// a generated one. A name already ending in .jpg or .jpeg keeps its
// extension; anything else gets .jpg appended.
func OutputPath(dir, name string) (string, error) {
	if dir == "" {
		dir = DefaultOutputDir
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = GenerateName()
	}
	if err := errors.ValidateImageName(name); err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
	default:
		name += Ext
	}
	return filepath.Join(dir, name), nil
}

// GenerateName returns a short random image name like "quote-1a2b3c4d".
func GenerateName() string {
	return "quote-" + uuid.NewString()[:8]
}

// Save writes img to path as a JPEG, creating parent directories.
func Save(img image.Image, path string, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory")
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
