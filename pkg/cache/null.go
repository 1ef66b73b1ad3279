package cache

import (
	"context"

	"github.com/fractalite/fractalite/pkg/fractal"
)

// Null is a no-op cache that never stores anything.
// Useful for testing or when caching is disabled in the configuration.
type Null struct{}

// NewNull creates a null cache.
func NewNull() Cache {
	return Null{}
}

// Get always returns a cache miss.
func (Null) Get(ctx context.Context, key string) (*fractal.Grid, bool) {
	return nil, false
}

// Store does nothing.
func (Null) Store(ctx context.Context, key string, grid *fractal.Grid) {}

// Invalidate does nothing.
func (Null) Invalidate(ctx context.Context) {}

// Len always returns zero.
func (Null) Len() int { return 0 }

// Ensure Null implements Cache.
var _ Cache = Null{}
