// Package cache provides content-addressed caching for rendered artifacts.
//
// Rendering a preview is cheap but encoding is not always (PNG raster, PPTX
// archive), and identical template states produce identical bytes, so
// artifacts are cached under a hash of the state plus the render options.
package cache

import (
	"context"
	"time"
)

// TTLs per artifact class. Vector and raster previews are regenerated
// eagerly in the editor so they expire fast; documents are what users
// download repeatedly.
const (
	TTLPreview  = 15 * time.Minute
	TTLDocument = 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts are the render options that change artifact bytes and so
// must participate in the cache key.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	LayoutType  string  `json:"layout_type,omitempty"`
	Width       float64 `json:"width,omitempty"`
	ShowRegions bool    `json:"show_regions,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey keys one rendered artifact by the state content hash and
	// the render options.
	ArtifactKey(stateHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(stateHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", stateHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so multiple tenants or contexts
// can share one cache backend without key collisions.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(stateHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(stateHash, opts)
}
