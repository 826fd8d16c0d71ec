// Package cache provides a small key/value cache for data that is slow to
// recompute between runs, such as the font index built by scanning system
// font directories.
//
// Two implementations are provided: [FileCache] stores entries as JSON files
// under a directory (the CLI uses the XDG cache dir), and [NullCache] never
// stores anything and is used when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiration.
type Cache interface {
	// Get returns the cached value and whether it was found.
	// Expired or corrupt entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
