package fonts

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/flopp/go-findfont"

	"github.com/matzehuels/quotecraft/pkg/cache"
	"github.com/matzehuels/quotecraft/pkg/errors"
	"github.com/matzehuels/quotecraft/pkg/observability"
)

// IndexTTL is how long a cached index is trusted before rescanning.
const IndexTTL = 24 * time.Hour

// systemDir is the pseudo-directory that stands for the platform font
// directories in cache keys.
const systemDir = "<system>"

// cacheKeyType labels font index events for cache hooks.
const cacheKeyType = "fonts"

// fontExts are the file extensions the index picks up.
var fontExts = map[string]bool{".ttf": true, ".otf": true}

// Index maps font names (lowercase file stems) to file paths.
type Index map[string]string

// IndexOptions controls which directories are scanned.
type IndexOptions struct {
	Dirs   []string // scanned first; earlier directories win name clashes
	System bool     // also scan the platform font directories
}

// BuildIndex scans the configured directories and, if requested, the
// system font directories. Missing directories are skipped.
func BuildIndex(opts IndexOptions) Index {
	idx := Index{}
	for _, dir := range opts.Dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == dir {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() {
				idx.add(path)
			}
			return nil
		})
	}
	if opts.System {
		for _, path := range findfont.List() {
			idx.add(path)
		}
	}
	return idx
}

func (idx Index) add(path string) {
	if !fontExts[strings.ToLower(filepath.Ext(path))] {
		return
	}
	name := nameOf(path)
	if _, exists := idx[name]; !exists {
		idx[name] = path
	}
}

// LoadIndex returns the index for opts, reading it from c when a fresh copy
// is cached and rebuilding and storing it otherwise. The second return value
// reports whether the index came from the cache.
func LoadIndex(ctx context.Context, c cache.Cache, opts IndexOptions) (Index, bool, error) {
	key := cache.FontIndexKey(keyDirs(opts))

	data, hit, err := c.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if hit {
		var idx Index
		if err := json.Unmarshal(data, &idx); err == nil {
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			return idx, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, cacheKeyType)

	idx := BuildIndex(opts)
	data, err = json.Marshal(idx)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "encode font index")
	}
	if err := c.Set(ctx, key, data, IndexTTL); err != nil {
		return idx, false, err
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
	return idx, false, nil
}

func keyDirs(opts IndexOptions) []string {
	dirs := make([]string, 0, len(opts.Dirs)+1)
	for _, d := range opts.Dirs {
		if abs, err := filepath.Abs(d); err == nil {
			d = abs
		}
		dirs = append(dirs, d)
	}
	if opts.System {
		dirs = append(dirs, systemDir)
	}
	return dirs
}

// Names returns the indexed font names, sorted.
func (idx Index) Names() []string {
	names := make([]string, 0, len(idx))
	for n := range idx {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Search returns the sorted names containing query (case-insensitive).
// An empty query returns every name.
func (idx Index) Search(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []string
	for _, n := range idx.Names() {
		if strings.Contains(n, q) {
			out = append(out, n)
		}
	}
	return out
}

// Resolve turns a user font reference into a file path.
//
// The reference may be an existing file path, an index name (with or
// without extension), or a partial name that go-findfont can match against
// the system directories. An empty reference resolves to "" (the embedded
// default).
func (idx Index) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.EqualFold(ref, DefaultName) {
		return "", nil
	}
	if err := errors.ValidatePath(ref); err != nil {
		return "", err
	}
	if st, err := os.Stat(ref); err == nil && !st.IsDir() {
		return ref, nil
	}
	if path, ok := idx[nameOf(ref)]; ok {
		return path, nil
	}
	if len(idx) > 0 {
		if matches := idx.Search(nameOf(ref)); len(matches) > 0 {
			return idx[matches[0]], nil
		}
	}
	if path, err := findfont.Find(ref); err == nil {
		return path, nil
	}
	if filepath.Ext(ref) == "" {
		if path, err := findfont.Find(ref + ".ttf"); err == nil {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeFontNotFound, "font %q not found", ref)
}
