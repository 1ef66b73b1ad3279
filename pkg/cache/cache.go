// Package cache provides result caching for computed iteration grids.
//
// Interactive navigation revisits viewports constantly (zoom out then back
// in, pan away and return), so identical generation requests are answered
// from memory instead of recomputing. Grids are immutable once stored: the
// cache clones on store and on hit, so callers never observe a grid another
// caller is holding.
//
// # Eviction
//
// Memory uses a deliberately crude fire-break policy instead of LRU: inserts
// stop at a soft ceiling (half the capacity) and the whole cache is cleared
// when it reaches the hard capacity. The policy trades occasional full
// recomputation for constant-time bookkeeping and a hard memory bound.
//
// # Keys
//
// Keys are derived from the request with bounded precision (six decimal
// digits for center coordinates, three for zoom), so requests differing only
// by float noise below visible resolution collapse to one entry. Quality,
// performance, and sampling flags are excluded from the key on purpose:
// toggling them must be followed by Invalidate, which the orchestrator owns.
package cache

import (
	"context"

	"github.com/fractalite/fractalite/pkg/fractal"
)

// Cache is the lookup/store contract for computed iteration grids.
type Cache interface {
	// Get returns a copy of the grid stored under key, if present.
	Get(ctx context.Context, key string) (*fractal.Grid, bool)

	// Store retains a copy of the grid under key, subject to the
	// implementation's eviction policy.
	Store(ctx context.Context, key string, grid *fractal.Grid)

	// Invalidate drops every entry. Called on resize and on any
	// quality/performance/sampling toggle, since those are not keyed.
	Invalidate(ctx context.Context)

	// Len returns the number of retained entries.
	Len() int
}

// ComputeFunc produces a grid for a request on a cache miss.
type ComputeFunc func(ctx context.Context, req fractal.Request) (*fractal.Grid, error)

// GetOrCompute answers the request from the cache when possible and falls
// back to compute otherwise, storing the fresh result. Two identical
// requests in sequence yield bit-identical grids, with the second served
// without invoking compute.
func GetOrCompute(ctx context.Context, c Cache, req fractal.Request, compute ComputeFunc) (*fractal.Grid, error) {
	key := RequestKey(req)
	if grid, ok := c.Get(ctx, key); ok {
		return grid, nil
	}

	grid, err := compute(ctx, req)
	if err != nil {
		return nil, err
	}
	c.Store(ctx, key, grid)
	return grid, nil
}
