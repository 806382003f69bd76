// Package cache stores derived bytes between probemap runs.
//
// Two things are worth keeping: resampled logo images, which are slow to
// decode and resize, and rendered artifacts keyed by the layout they were
// drawn from. Both are content-addressed, so a stale entry is simply never
// looked up again.
//
// The CLI uses a [FileCache] under the XDG cache directory; libraries and
// tests use [NullCache].
package cache

import (
	"context"
	"time"
)

// Time-to-live values per entry type.
const (
	TTLAsset    = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources.
	Close() error
}
