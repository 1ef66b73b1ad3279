package fractal

import (
	"github.com/fractalite/fractalite/pkg/errors"
)

// Iteration budget bounds applied by the performance/quality transform.
const (
	// performanceFloor is the minimum budget in performance mode.
	performanceFloor = 20

	// qualityCeiling is the maximum budget in quality mode.
	qualityCeiling = 512
)

// Request fully determines one grid generation. No hidden state influences
// the result: two equal requests always produce identical grids.
type Request struct {
	Variant       Variant
	Viewport      Viewport
	MaxIterations uint32

	// PerformanceMode halves the iteration budget (floor 20).
	PerformanceMode bool

	// QualityMode raises the budget by half (cap 512).
	// PerformanceMode takes precedence when both flags are set; the original
	// tool resolved the conflict that way and callers may rely on it.
	QualityMode bool

	// AdaptiveSampling coarsens computation to every other pixel when the
	// viewport zoom exceeds 10.
	AdaptiveSampling bool

	// SuperSampling computes a doubled grid and box-averages it down.
	SuperSampling bool
}

// Validate rejects requests that must not reach the engine: zero dimensions,
// non-positive zoom, or a zero iteration budget.
func (r Request) Validate() error {
	if r.Viewport.Width <= 0 || r.Viewport.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidViewport,
			"viewport dimensions must be positive, got %dx%d", r.Viewport.Width, r.Viewport.Height)
	}
	if !(r.Viewport.Zoom > 0) {
		return errors.New(errors.ErrCodeInvalidViewport, "zoom must be positive, got %v", r.Viewport.Zoom)
	}
	if r.MaxIterations == 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "max iterations must be positive")
	}
	return nil
}

// EffectiveBudget returns the iteration budget after the performance/quality
// transform. The transform is applied once per generation, never per pixel.
func (r Request) EffectiveBudget() uint32 {
	switch {
	case r.PerformanceMode:
		budget := r.MaxIterations / 2
		if budget < performanceFloor {
			budget = performanceFloor
		}
		return budget
	case r.QualityMode:
		// Widen before multiplying so large budgets cap instead of wrapping.
		budget := uint64(r.MaxIterations) * 3 / 2
		if budget > qualityCeiling {
			budget = qualityCeiling
		}
		return uint32(budget)
	}
	return r.MaxIterations
}
