// Package fractal implements the escape-time computation engine.
//
// The package maps a rectangular viewport of the complex plane onto a pixel
// grid and counts, per cell, how many applications of a variant's iteration
// rule occur before the value's squared magnitude exceeds 4. Cells that never
// escape within the iteration budget carry the budget itself, which downstream
// consumers interpret as "inside the set".
//
// # Variants
//
// Six fractal families are supported: Mandelbrot, Julia, Burning Ship,
// Tricorn, Multibrot, and Custom. Custom carries a free-form descriptor and
// renders with the Mandelbrot rule; this is a documented degradation, not an
// error. Equation text is resolved to a Variant by ParseVariant before it
// reaches the engine; the engine itself never parses strings.
//
// # Quality and performance knobs
//
// A Request carries four independent flags:
//
//   - PerformanceMode halves the iteration budget (floor 20)
//   - QualityMode raises it by half (cap 512); PerformanceMode wins if both are set
//   - AdaptiveSampling computes every other pixel above zoom 10 and
//     replicates each value into its 2x2 block
//   - SuperSampling computes a doubled grid and box-averages it down
//
// # Usage
//
//	engine := fractal.NewEngine()
//	req := fractal.Request{
//	    Variant:       fractal.Mandelbrot(),
//	    Viewport:      fractal.Viewport{CenterX: -0.5, Zoom: 1, Width: 80, Height: 40},
//	    MaxIterations: 100,
//	}
//	grid, err := engine.Generate(ctx, req)
package fractal
