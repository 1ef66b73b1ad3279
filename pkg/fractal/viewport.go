package fractal

// Viewport describes the rectangular window of the complex plane that is
// mapped onto a pixel grid. The plane half-extent is 2/Zoom on both axes,
// so zoom 1 always covers [center-2, center+2]. Every variant shares this
// convention.
type Viewport struct {
	CenterX float64 // real part of the viewport center
	CenterY float64 // imaginary part of the viewport center
	Zoom    float64 // magnification; must be > 0
	Width   int     // grid columns; must be > 0
	Height  int     // grid rows; must be > 0
}

// Bounds returns the plane rectangle covered by the viewport.
func (v Viewport) Bounds() (xMin, xMax, yMin, yMax float64) {
	half := 2.0 / v.Zoom
	return v.CenterX - half, v.CenterX + half, v.CenterY - half, v.CenterY + half
}

// PixelToPlane maps the pixel coordinate (px, py) to its complex-plane point.
// The mapping is pure and deterministic: identical inputs yield bit-identical
// outputs, which cache keys rely on indirectly.
//
// Zoom > 0 and positive dimensions are preconditions enforced by the caller.
func (v Viewport) PixelToPlane(px, py int) complex128 {
	xMin, xMax, yMin, yMax := v.Bounds()
	re := xMin + float64(px)*(xMax-xMin)/float64(v.Width)
	im := yMin + float64(py)*(yMax-yMin)/float64(v.Height)
	return complex(re, im)
}
