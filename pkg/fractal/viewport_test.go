package fractal

import (
	"testing"
)

func TestViewportBounds(t *testing.T) {
	tests := []struct {
		name                       string
		vp                         Viewport
		xMin, xMax, yMin, yMax     float64
	}{
		{
			name: "UnitZoom",
			vp:   Viewport{CenterX: -0.5, CenterY: 0, Zoom: 1, Width: 80, Height: 40},
			xMin: -2.5, xMax: 1.5, yMin: -2, yMax: 2,
		},
		{
			name: "ZoomedIn",
			vp:   Viewport{CenterX: 0, CenterY: 0, Zoom: 4, Width: 10, Height: 10},
			xMin: -0.5, xMax: 0.5, yMin: -0.5, yMax: 0.5,
		},
		{
			name: "OffCenter",
			vp:   Viewport{CenterX: 1, CenterY: -1, Zoom: 2, Width: 10, Height: 10},
			xMin: 0, xMax: 2, yMin: -2, yMax: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xMin, xMax, yMin, yMax := tt.vp.Bounds()
			if xMin != tt.xMin || xMax != tt.xMax || yMin != tt.yMin || yMax != tt.yMax {
				t.Errorf("Bounds() = (%v, %v, %v, %v), want (%v, %v, %v, %v)",
					xMin, xMax, yMin, yMax, tt.xMin, tt.xMax, tt.yMin, tt.yMax)
			}
		})
	}
}

func TestPixelToPlaneCorners(t *testing.T) {
	vp := Viewport{CenterX: -0.5, CenterY: 0, Zoom: 1, Width: 80, Height: 40}

	origin := vp.PixelToPlane(0, 0)
	if real(origin) != -2.5 || imag(origin) != -2 {
		t.Errorf("PixelToPlane(0,0) = %v, want (-2.5, -2i)", origin)
	}

	// One past the last pixel lands exactly on the far bounds.
	far := vp.PixelToPlane(vp.Width, vp.Height)
	if real(far) != 1.5 || imag(far) != 2 {
		t.Errorf("PixelToPlane(w,h) = %v, want (1.5, 2i)", far)
	}
}

func TestPixelToPlaneCenterHitsOrigin(t *testing.T) {
	// With center (-0.5, 0) and zoom 1, column 50 of 80 and row 20 of 40
	// map exactly onto the plane origin.
	vp := Viewport{CenterX: -0.5, CenterY: 0, Zoom: 1, Width: 80, Height: 40}
	p := vp.PixelToPlane(50, 20)
	if real(p) != 0 || imag(p) != 0 {
		t.Errorf("PixelToPlane(50,20) = %v, want origin", p)
	}
}

func TestPixelToPlaneDeterministic(t *testing.T) {
	vp := Viewport{CenterX: 0.3127, CenterY: -0.0042, Zoom: 137.5, Width: 123, Height: 77}
	for _, pt := range [][2]int{{0, 0}, {61, 38}, {122, 76}} {
		a := vp.PixelToPlane(pt[0], pt[1])
		b := vp.PixelToPlane(pt[0], pt[1])
		if a != b {
			t.Errorf("PixelToPlane(%d,%d) not bit-stable: %v != %v", pt[0], pt[1], a, b)
		}
	}
}
