package cache

import (
	"context"
	"sync"

	"github.com/fractalite/fractalite/pkg/fractal"
	"github.com/fractalite/fractalite/pkg/observability"
)

// DefaultCapacity is the hard entry bound used when none is configured.
const DefaultCapacity = 100

// Memory is an in-process grid cache with the fire-break eviction policy:
// inserts are skipped once the soft ceiling (capacity/2) is reached, and
// reaching the hard capacity clears everything at once. There is no partial
// eviction.
type Memory struct {
	mu            sync.Mutex
	capacity      int
	insertCeiling int
	entries       map[string]*fractal.Grid
}

// NewMemory creates a memory cache with the given hard capacity.
// Non-positive capacities fall back to DefaultCapacity. The soft insert
// ceiling is half the capacity, leaving headroom before the fire-break.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory{
		capacity:      capacity,
		insertCeiling: capacity / 2,
		entries:       make(map[string]*fractal.Grid),
	}
}

// Get returns a copy of the grid stored under key, if present.
func (m *Memory) Get(ctx context.Context, key string) (*fractal.Grid, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	grid, ok := m.entries[key]
	if !ok {
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, key)
	return grid.Clone(), true
}

// Store retains a copy of the grid under key.
//
// If the cache has reached its hard capacity, everything is cleared before
// continuing. If it has reached the soft insert ceiling, the insert is
// skipped and the caller's freshly computed grid is simply not cached.
func (m *Memory) Store(ctx context.Context, key string, grid *fractal.Grid) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.entries) >= m.capacity {
		dropped := len(m.entries)
		m.entries = make(map[string]*fractal.Grid)
		observability.Cache().OnCacheClear(ctx, dropped)
	}
	if len(m.entries) >= m.insertCeiling {
		return
	}

	m.entries[key] = grid.Clone()
	observability.Cache().OnCacheStore(ctx, key, grid.Width()*grid.Height())
}

// Invalidate drops every entry.
func (m *Memory) Invalidate(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.entries) == 0 {
		return
	}
	dropped := len(m.entries)
	m.entries = make(map[string]*fractal.Grid)
	observability.Cache().OnCacheClear(ctx, dropped)
}

// Len returns the number of retained entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Ensure Memory implements Cache.
var _ Cache = (*Memory)(nil)
