package cli

import (
	"strings"
	"testing"

	"github.com/fractalite/fractalite/pkg/fractal"
)

func TestBuildRequestFromFlags(t *testing.T) {
	opts := &renderOpts{
		equation:   "julia(-0.7,0.27)",
		width:      30,
		height:     15,
		zoom:       5,
		centerX:    0.1,
		centerY:    -0.2,
		iterations: 200,
		quality:    true,
	}

	req, err := buildRequest(opts)
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}

	want := fractal.Julia(complex(-0.7, 0.27))
	if req.Variant != want {
		t.Errorf("variant = %v, want %v", req.Variant, want)
	}
	if req.Viewport.Width != 30 || req.Viewport.Height != 15 {
		t.Errorf("viewport = %dx%d, want 30x15", req.Viewport.Width, req.Viewport.Height)
	}
	if !req.QualityMode {
		t.Error("quality flag should carry into the request")
	}
	if req.EffectiveBudget() != 300 {
		t.Errorf("effective budget = %d, want 300", req.EffectiveBudget())
	}
}

func TestBuildRequestRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		opts renderOpts
	}{
		{"bad equation", renderOpts{equation: "nonsense", width: 10, height: 10, zoom: 1, iterations: 100}},
		{"zero width", renderOpts{equation: "z^2+c", width: 0, height: 10, zoom: 1, iterations: 100}},
		{"zero zoom", renderOpts{equation: "z^2+c", width: 10, height: 10, zoom: 0, iterations: 100}},
		{"zero iterations", renderOpts{equation: "z^2+c", width: 10, height: 10, zoom: 1, iterations: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildRequest(&tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewRenderOptsFollowsConfig(t *testing.T) {
	c := New(&strings.Builder{}, LogInfo)
	c.Config.Display.DefaultWidth = 123
	c.Config.Fractal.DefaultMaxIterations = 77

	opts := c.newRenderOpts()
	if opts.width != 123 {
		t.Errorf("width = %d, want 123", opts.width)
	}
	if opts.iterations != 77 {
		t.Errorf("iterations = %d, want 77", opts.iterations)
	}
}
