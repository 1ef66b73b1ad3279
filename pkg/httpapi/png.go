package httpapi

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/fractalite/fractalite/pkg/fractal"
)

// WritePNG encodes a grid as a PNG image. Escaped cells are colored on
// an HSV wheel by escape speed, cells that reached the budget are black.
func WritePNG(w io.Writer, grid *fractal.Grid, budget uint32) error {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width(), grid.Height()))

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			n := grid.At(x, y)
			if n >= budget {
				img.SetRGBA(x, y, color.RGBA{A: 255})
				continue
			}
			hue := math.Mod(float64(n)*0.02, 1.0)
			img.SetRGBA(x, y, hsv(hue, 1, 1))
		}
	}

	return png.Encode(w, img)
}

func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
