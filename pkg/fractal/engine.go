package fractal

import (
	"context"
	"math"
	"math/cmplx"
	"runtime"
	"sync"
	"time"

	"github.com/fractalite/fractalite/pkg/observability"
)

const (
	// escapeRadiusSq is the squared magnitude threshold shared by all variants.
	escapeRadiusSq = 4.0

	// adaptiveZoomThreshold gates adaptive sampling: below this zoom the
	// aliasing cost outweighs the 4x compute saving.
	adaptiveZoomThreshold = 10.0
)

// Engine computes escape-time iteration grids. Engines are stateless apart
// from their worker count and safe for reuse across generations; within one
// Generate call rows fan out to a worker pool and write disjoint slices of
// the output grid.
type Engine struct {
	workers int
}

// NewEngine creates an engine sized to the number of CPUs.
func NewEngine() *Engine {
	return NewEngineWithWorkers(runtime.NumCPU())
}

// NewEngineWithWorkers creates an engine with an explicit worker count.
// Counts below 1 fall back to a single worker.
func NewEngineWithWorkers(n int) *Engine {
	if n < 1 {
		n = 1
	}
	return &Engine{workers: n}
}

// Generate computes the iteration grid for the request. The grid has exactly
// Viewport.Height rows by Viewport.Width columns and every cell lies in
// [0, req.EffectiveBudget()].
//
// There is no mid-computation cancellation: ctx feeds logging and hooks only,
// and a bounded iteration budget is the per-cell latency bound.
func (e *Engine) Generate(ctx context.Context, req Request) (*Grid, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	budget := req.EffectiveBudget()
	hooks := observability.Engine()
	hooks.OnGenerateStart(ctx, req.Variant.Key(), req.Viewport.Width, req.Viewport.Height, budget)
	start := time.Now()

	var grid *Grid
	if req.SuperSampling {
		// Compute at double resolution and box-average down. The doubled
		// grid keeps the request's remaining flags, so adaptive coarsening
		// still applies to it when enabled.
		doubled := req
		doubled.SuperSampling = false
		doubled.Viewport.Width *= 2
		doubled.Viewport.Height *= 2
		grid = downsample(e.compute(doubled, budget), req.Viewport.Width, req.Viewport.Height)
	} else {
		grid = e.compute(req, budget)
	}

	hooks.OnGenerateComplete(ctx, req.Variant.Key(), time.Since(start))
	return grid, nil
}

// compute fills a grid for the request, choosing between full-resolution and
// adaptive coarse sampling.
func (e *Engine) compute(req Request, budget uint32) *Grid {
	grid := NewGrid(req.Viewport.Width, req.Viewport.Height)
	if req.AdaptiveSampling && req.Viewport.Zoom > adaptiveZoomThreshold {
		// Coarse pass: one worker unit owns a pair of rows, so 2x2 block
		// writes never cross worker boundaries.
		e.fanOut(req.Viewport.Height, 2, func(y int) {
			fillBlockRow(req, budget, grid, y)
		})
		return grid
	}
	e.fanOut(req.Viewport.Height, 1, func(y int) {
		fillRow(req, budget, grid, y)
	})
	return grid
}

// fanOut dispatches row indices 0, step, 2*step, ... to a worker pool and
// waits for completion. Row functions share no mutable state, so results are
// identical regardless of execution order or worker count.
func (e *Engine) fanOut(height, step int, rowFn func(y int)) {
	jobs := make(chan int, height)
	var wg sync.WaitGroup

	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range jobs {
				rowFn(y)
			}
		}()
	}

	for y := 0; y < height; y += step {
		jobs <- y
	}
	close(jobs)
	wg.Wait()
}

// fillRow computes every cell of row y at full resolution.
func fillRow(req Request, budget uint32, grid *Grid, y int) {
	row := grid.Row(y)
	for x := range row {
		row[x] = escapeCount(req.Variant, req.Viewport.PixelToPlane(x, y), budget)
	}
}

// fillBlockRow computes every other column of the even-origin row y and
// replicates each value into its 2x2 block (nearest-neighbor replication,
// not interpolation). Block origins stay even so consumers can assert
// block-uniformity.
func fillBlockRow(req Request, budget uint32, grid *Grid, y int) {
	for x := 0; x < req.Viewport.Width; x += 2 {
		n := escapeCount(req.Variant, req.Viewport.PixelToPlane(x, y), budget)
		for by := y; by < y+2 && by < req.Viewport.Height; by++ {
			for bx := x; bx < x+2 && bx < req.Viewport.Width; bx++ {
				grid.Set(bx, by, n)
			}
		}
	}
}

// downsample box-filters a doubled grid to width x height. Each output cell
// is the floor average of its 2x2 source block, clamped to available samples
// at the edges.
func downsample(src *Grid, width, height int) *Grid {
	dst := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum, count uint64
			for sy := 2 * y; sy < 2*y+2 && sy < src.Height(); sy++ {
				for sx := 2 * x; sx < 2*x+2 && sx < src.Width(); sx++ {
					sum += uint64(src.At(sx, sy))
					count++
				}
			}
			dst.Set(x, y, uint32(sum/count))
		}
	}
	return dst
}

// =============================================================================
// Iteration Rules
// =============================================================================

// escapeCount applies the variant's iteration rule at plane point p until the
// escape test fires or the budget is exhausted, and returns the number of
// rule applications. Custom variants fall back to the Mandelbrot rule.
func escapeCount(v Variant, p complex128, budget uint32) uint32 {
	switch v.Kind() {
	case KindJulia:
		// Julia seeds z with the pixel coordinate; c is fixed by the variant.
		return iterate(p, v.JuliaC(), budget, stepSquare)
	case KindBurningShip:
		return iterate(0, p, budget, stepBurningShip)
	case KindTricorn:
		return iterate(0, p, budget, stepTricorn)
	case KindMultibrot:
		power := complex(v.Power(), 0)
		return iterate(0, p, budget, func(z, c complex128) complex128 {
			return cmplx.Pow(z, power) + c
		})
	default: // Mandelbrot, and the documented Custom fallback
		return iterate(0, p, budget, stepSquare)
	}
}

// iterate runs the shared escape loop: test |z|^2 > 4, apply the step, count.
// NaN mid-iteration (possible for extreme Multibrot powers or extreme zoom)
// is recovered locally by treating the cell as non-escaping.
func iterate(z, c complex128, budget uint32, step func(z, c complex128) complex128) uint32 {
	var n uint32
	for n < budget {
		zr, zi := real(z), imag(z)
		magSq := zr*zr + zi*zi
		if magSq > escapeRadiusSq {
			return n
		}
		if math.IsNaN(magSq) {
			return budget
		}
		z = step(z, c)
		n++
	}
	return n
}

func stepSquare(z, c complex128) complex128 {
	return z*z + c
}

func stepBurningShip(z, c complex128) complex128 {
	z = complex(math.Abs(real(z)), math.Abs(imag(z)))
	return z*z + c
}

func stepTricorn(z, c complex128) complex128 {
	z = cmplx.Conj(z)
	return z*z + c
}
