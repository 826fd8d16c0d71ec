package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Key builds a namespaced cache key, "<namespace>:<hash of parts>". Parts
// are NUL-separated before hashing so ("ab", "c") and ("a", "bc") differ.
func Key(namespace string, parts ...string) string {
	return namespace + ":" + Hash([]byte(strings.Join(parts, "\x00")))
}

// FontIndexKey returns the cache key for a font index built from dirs.
// The order of dirs matters because earlier directories win name clashes.
func FontIndexKey(dirs []string) string {
	return Key("fonts:index", dirs...)
}
