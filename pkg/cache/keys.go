package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/fractalite/fractalite/pkg/fractal"
)

// Rounding precisions for key derivation. Two requests whose centers agree
// to six decimal digits and whose zooms agree to three render
// indistinguishably on a character grid, so they share a cache entry. The
// theoretical collision at a precision boundary is an accepted trade for
// much higher hit rates during smooth pan and zoom.
const (
	coordKeyDigits = 6
	zoomKeyDigits  = 3
)

// RequestKey derives a deterministic cache key from the parts of a request
// that identify the rendered grid: variant (with parameters), dimensions,
// rounded center and zoom, and the raw iteration budget.
//
// Quality, performance, and sampling flags are deliberately absent; see the
// package documentation.
func RequestKey(req fractal.Request) string {
	parts := []string{
		req.Variant.Key(),
		strconv.Itoa(req.Viewport.Width),
		strconv.Itoa(req.Viewport.Height),
		strconv.FormatFloat(req.Viewport.CenterX, 'f', coordKeyDigits, 64),
		strconv.FormatFloat(req.Viewport.CenterY, 'f', coordKeyDigits, 64),
		strconv.FormatFloat(req.Viewport.Zoom, 'f', zoomKeyDigits, 64),
		strconv.FormatUint(uint64(req.MaxIterations), 10),
	}
	return "grid:" + Hash([]byte(strings.Join(parts, "|")))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
