package fractal

import (
	"context"
	"math"
	"testing"

	"github.com/fractalite/fractalite/pkg/errors"
)

func baseRequest() Request {
	return Request{
		Variant:       Mandelbrot(),
		Viewport:      Viewport{CenterX: -0.5, CenterY: 0, Zoom: 1, Width: 80, Height: 40},
		MaxIterations: 100,
	}
}

func TestGenerateDimensionsAndRange(t *testing.T) {
	multibrot4, _ := Multibrot(4)
	variants := []Variant{
		Mandelbrot(),
		Julia(complex(-0.7, 0.27)),
		BurningShip(),
		Tricorn(),
		multibrot4,
		Custom("z^2 + sin(c)"),
	}

	engine := NewEngine()
	for _, v := range variants {
		t.Run(v.Kind().String(), func(t *testing.T) {
			req := baseRequest()
			req.Variant = v
			req.Viewport.Width = 16
			req.Viewport.Height = 12
			req.MaxIterations = 40

			grid, err := engine.Generate(context.Background(), req)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if grid.Width() != 16 || grid.Height() != 12 {
				t.Fatalf("dimensions = %dx%d, want 16x12", grid.Width(), grid.Height())
			}
			if max := grid.Max(); max > req.EffectiveBudget() {
				t.Errorf("cell value %d exceeds budget %d", max, req.EffectiveBudget())
			}
		})
	}
}

func TestGenerateMandelbrotOriginInSet(t *testing.T) {
	// The plane origin sits inside the main cardioid and never escapes, so the
	// cell that lands exactly on it must carry the full budget.
	engine := NewEngine()
	req := baseRequest()

	grid, err := engine.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := grid.At(50, 20); got != req.EffectiveBudget() {
		t.Errorf("origin cell = %d, want %d", got, req.EffectiveBudget())
	}
}

func TestGenerateProducesVaryingCounts(t *testing.T) {
	engine := NewEngine()
	grid, err := engine.Generate(context.Background(), baseRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	unique := map[uint32]bool{}
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			unique[grid.At(x, y)] = true
		}
	}
	if len(unique) < 2 {
		t.Error("expected varying iteration counts at the standard view")
	}
}

func TestGenerateDeterministicAcrossWorkerCounts(t *testing.T) {
	req := baseRequest()
	req.Viewport.Width = 33
	req.Viewport.Height = 21

	single, err := NewEngineWithWorkers(1).Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate(1 worker): %v", err)
	}
	many, err := NewEngineWithWorkers(8).Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate(8 workers): %v", err)
	}
	if !single.Equal(many) {
		t.Error("grids differ across worker counts")
	}
}

func TestEffectiveBudget(t *testing.T) {
	tests := []struct {
		name        string
		iterations  uint32
		performance bool
		quality     bool
		want        uint32
	}{
		{"Unchanged", 100, false, false, 100},
		{"PerformanceHalves", 100, true, false, 50},
		{"PerformanceFloor", 30, true, false, 20},
		{"QualityRaises", 100, false, true, 150},
		{"QualityCeiling", 400, false, true, 512},
		{"QualityHugeBudget", 1431655766, false, true, 512},
		{"QualityMaxUint32", math.MaxUint32, false, true, 512},
		{"PerformanceWinsOverQuality", 100, true, true, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			req.MaxIterations = tt.iterations
			req.PerformanceMode = tt.performance
			req.QualityMode = tt.quality
			if got := req.EffectiveBudget(); got != tt.want {
				t.Errorf("EffectiveBudget() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		code   errors.Code
	}{
		{"ZeroWidth", func(r *Request) { r.Viewport.Width = 0 }, errors.ErrCodeInvalidViewport},
		{"ZeroHeight", func(r *Request) { r.Viewport.Height = 0 }, errors.ErrCodeInvalidViewport},
		{"NegativeZoom", func(r *Request) { r.Viewport.Zoom = -1 }, errors.ErrCodeInvalidViewport},
		{"ZeroZoom", func(r *Request) { r.Viewport.Zoom = 0 }, errors.ErrCodeInvalidViewport},
		{"ZeroIterations", func(r *Request) { r.MaxIterations = 0 }, errors.ErrCodeInvalidRequest},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)
			if _, err := engine.Generate(context.Background(), req); !errors.Is(err, tt.code) {
				t.Errorf("Generate error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestAdaptiveSamplingBlockUniformity(t *testing.T) {
	engine := NewEngine()
	req := baseRequest()
	req.AdaptiveSampling = true
	req.Viewport.Zoom = 50
	req.Viewport.Width = 21 // odd dimensions exercise edge clamping
	req.Viewport.Height = 17

	grid, err := engine.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for by := 0; by < grid.Height(); by += 2 {
		for bx := 0; bx < grid.Width(); bx += 2 {
			want := grid.At(bx, by)
			for y := by; y < by+2 && y < grid.Height(); y++ {
				for x := bx; x < bx+2 && x < grid.Width(); x++ {
					if got := grid.At(x, y); got != want {
						t.Fatalf("block (%d,%d): cell (%d,%d) = %d, want %d", bx, by, x, y, got, want)
					}
				}
			}
		}
	}
}

func TestAdaptiveSamplingNeedsHighZoom(t *testing.T) {
	// At zoom 10 and below the flag has no effect; the grids must match a
	// full-resolution computation exactly.
	engine := NewEngine()
	req := baseRequest()
	req.Viewport.Zoom = 10
	req.Viewport.Width = 20
	req.Viewport.Height = 16

	full, err := engine.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req.AdaptiveSampling = true
	flagged, err := engine.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !full.Equal(flagged) {
		t.Error("adaptive sampling applied below its zoom threshold")
	}
}

func TestSuperSamplingUniformRegionIdentity(t *testing.T) {
	// Deep inside the main cardioid every sample carries the full budget, so
	// the box-filter average must reproduce that constant exactly.
	engine := NewEngine()
	req := baseRequest()
	req.SuperSampling = true
	req.Viewport.Zoom = 1e6
	req.Viewport.Width = 8
	req.Viewport.Height = 6
	req.MaxIterations = 60

	grid, err := engine.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if got := grid.At(x, y); got != 60 {
				t.Fatalf("cell (%d,%d) = %d, want 60", x, y, got)
			}
		}
	}
}

func TestSuperSamplingWithAdaptive(t *testing.T) {
	// Both flags together double the grid first and coarsen that; the output
	// must still have the requested dimensions and respect the budget.
	engine := NewEngine()
	req := baseRequest()
	req.SuperSampling = true
	req.AdaptiveSampling = true
	req.Viewport.Zoom = 50
	req.Viewport.Width = 10
	req.Viewport.Height = 8

	grid, err := engine.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if grid.Width() != 10 || grid.Height() != 8 {
		t.Fatalf("dimensions = %dx%d, want 10x8", grid.Width(), grid.Height())
	}
	if max := grid.Max(); max > req.EffectiveBudget() {
		t.Errorf("cell value %d exceeds budget %d", max, req.EffectiveBudget())
	}
}

func TestDownsampleConstantGrid(t *testing.T) {
	src := NewGrid(10, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, 37)
		}
	}
	dst := downsample(src, 5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if got := dst.At(x, y); got != 37 {
				t.Fatalf("cell (%d,%d) = %d, want 37", x, y, got)
			}
		}
	}
}

func TestDownsampleFloorAverage(t *testing.T) {
	src := NewGrid(2, 2)
	src.Set(0, 0, 1)
	src.Set(1, 0, 2)
	src.Set(0, 1, 2)
	src.Set(1, 1, 2)

	dst := downsample(src, 1, 1)
	if got := dst.At(0, 0); got != 1 { // (1+2+2+2)/4 = 1 with floor division
		t.Errorf("cell = %d, want 1", got)
	}
}

func TestExtremeMultibrotPowerStaysBounded(t *testing.T) {
	// Huge powers overflow the polar exponentiation; such cells must clamp
	// to the budget instead of surfacing NaN or panicking.
	v, err := Multibrot(1e8)
	if err != nil {
		t.Fatalf("Multibrot: %v", err)
	}

	engine := NewEngine()
	req := baseRequest()
	req.Variant = v
	req.Viewport.Width = 8
	req.Viewport.Height = 8
	req.MaxIterations = 30

	grid, genErr := engine.Generate(context.Background(), req)
	if genErr != nil {
		t.Fatalf("Generate: %v", genErr)
	}
	if max := grid.Max(); max > 30 {
		t.Errorf("cell value %d exceeds budget 30", max)
	}
}

func TestGenerateRepeatedRequestsBitIdentical(t *testing.T) {
	engine := NewEngine()
	req := baseRequest()
	req.Viewport.Zoom = 3.7
	req.Viewport.CenterX = -0.745
	req.Viewport.CenterY = 0.113

	a, err := engine.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := engine.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !a.Equal(b) {
		t.Error("identical requests produced different grids")
	}
}
