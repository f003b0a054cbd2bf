// Package cache provides a content-addressed artifact cache for rendered
// map output. The render pipeline keys artifacts by the source document's
// hash plus the render options, so an unchanged map with unchanged options
// never re-renders.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether it was a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL (zero means no expiry).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactOpts identifies one rendered artifact variant. Every field
// participates in the key, so any option change produces a fresh render.
type ArtifactOpts struct {
	Format        string
	Width, Height int
	RadiusStep    float64
	Curved        bool
	BezierSamples int
	LeafOnly      bool
	ConstScale    bool
	Zoom          float64
	RotationDeg   float64
	PanX, PanY    float64
}

// ArtifactKey generates the cache key for a rendered artifact of the
// document with the given content hash.
func ArtifactKey(docHash string, opts ArtifactOpts) string {
	return hashKey("artifact", docHash, opts)
}
