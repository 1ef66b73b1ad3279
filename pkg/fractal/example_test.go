package fractal_test

import (
	"context"
	"fmt"

	"github.com/fractalite/fractalite/pkg/fractal"
)

func ExampleEngine_Generate() {
	engine := fractal.NewEngine()
	req := fractal.Request{
		Variant:       fractal.Mandelbrot(),
		Viewport:      fractal.Viewport{CenterX: -0.5, CenterY: 0, Zoom: 1, Width: 20, Height: 10},
		MaxIterations: 50,
	}

	grid, err := engine.Generate(context.Background(), req)
	if err != nil {
		panic(err)
	}

	fmt.Println("Rows:", grid.Height())
	fmt.Println("Columns:", grid.Width())
	fmt.Println("Center never escapes:", grid.At(12, 5) == 50)
	// Output:
	// Rows: 10
	// Columns: 20
	// Center never escapes: true
}

func ExampleParseVariant() {
	v, err := fractal.ParseVariant("julia(-0.7, 0.27)")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	v, _ = fractal.ParseVariant("z^3 + c")
	fmt.Println(v)
	// Output:
	// Julia(c=-0.7+0.27i)
	// Multibrot(power=3)
}

func ExampleRequest_EffectiveBudget() {
	req := fractal.Request{
		Variant:       fractal.Mandelbrot(),
		Viewport:      fractal.Viewport{Zoom: 1, Width: 80, Height: 40},
		MaxIterations: 100,
	}

	fmt.Println("plain:", req.EffectiveBudget())

	req.QualityMode = true
	fmt.Println("quality:", req.EffectiveBudget())

	req.PerformanceMode = true // wins over quality
	fmt.Println("performance:", req.EffectiveBudget())
	// Output:
	// plain: 100
	// quality: 150
	// performance: 50
}
