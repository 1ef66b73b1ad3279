package fractal

import (
	"fmt"
	"strconv"

	"github.com/fractalite/fractalite/pkg/errors"
)

// =============================================================================
// Kind - Fractal Families
// =============================================================================

// Kind identifies a fractal family.
type Kind int

// The closed set of supported fractal families.
const (
	KindMandelbrot Kind = iota
	KindJulia
	KindBurningShip
	KindTricorn
	KindMultibrot
	KindCustom
)

// String returns the lowercase family name.
func (k Kind) String() string {
	switch k {
	case KindMandelbrot:
		return "mandelbrot"
	case KindJulia:
		return "julia"
	case KindBurningShip:
		return "burningship"
	case KindTricorn:
		return "tricorn"
	case KindMultibrot:
		return "multibrot"
	case KindCustom:
		return "custom"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// =============================================================================
// Variant - Tagged Computation Kind
// =============================================================================

// Variant selects an escape-time iteration rule and its parameters.
// Variants are immutable value types; the zero value is Mandelbrot.
// Two variants are equal exactly when their Key strings are equal.
type Variant struct {
	kind       Kind
	juliaC     complex128
	power      float64
	descriptor string
}

// Mandelbrot returns the classic z^2 + c variant.
func Mandelbrot() Variant {
	return Variant{kind: KindMandelbrot}
}

// Julia returns a Julia set variant with the fixed parameter c.
// The pixel coordinate seeds z instead of c.
func Julia(c complex128) Variant {
	return Variant{kind: KindJulia, juliaC: c}
}

// BurningShip returns the (|Re z| + i|Im z|)^2 + c variant.
func BurningShip() Variant {
	return Variant{kind: KindBurningShip}
}

// Tricorn returns the conj(z)^2 + c variant.
func Tricorn() Variant {
	return Variant{kind: KindTricorn}
}

// Multibrot returns the z^power + c variant.
// Powers below 2 are rejected; power 2 is accepted but Mandelbrot is the
// cheaper equivalent.
func Multibrot(power float64) (Variant, error) {
	if !(power >= 2) {
		return Variant{}, errors.New(errors.ErrCodeInvalidVariant, "multibrot power must be >= 2, got %v", power)
	}
	return Variant{kind: KindMultibrot, power: power}, nil
}

// Custom returns a variant carrying a free-form equation descriptor.
// The engine renders Custom variants with the Mandelbrot rule. This fallback
// is deliberate: unrecognized equations still produce a well-formed grid.
func Custom(descriptor string) Variant {
	return Variant{kind: KindCustom, descriptor: descriptor}
}

// Kind returns the variant's family.
func (v Variant) Kind() Kind { return v.kind }

// JuliaC returns the fixed Julia parameter. Zero for other kinds.
func (v Variant) JuliaC() complex128 { return v.juliaC }

// Power returns the Multibrot exponent. Zero for other kinds.
func (v Variant) Power() float64 { return v.power }

// Descriptor returns the Custom equation text. Empty for other kinds.
func (v Variant) Descriptor() string { return v.descriptor }

// Key returns a stable textual encoding of the variant and its parameters.
// Keys are used as cache-key components and must not change between releases.
func (v Variant) Key() string {
	switch v.kind {
	case KindJulia:
		return "julia:" + formatFloat(real(v.juliaC)) + "," + formatFloat(imag(v.juliaC))
	case KindMultibrot:
		return "multibrot:" + formatFloat(v.power)
	case KindCustom:
		return "custom:" + v.descriptor
	default:
		return v.kind.String()
	}
}

// String returns a human-readable description of the variant.
func (v Variant) String() string {
	switch v.kind {
	case KindJulia:
		return fmt.Sprintf("Julia(c=%v%+vi)", real(v.juliaC), imag(v.juliaC))
	case KindMultibrot:
		return fmt.Sprintf("Multibrot(power=%v)", v.power)
	case KindCustom:
		return fmt.Sprintf("Custom(%q)", v.descriptor)
	case KindBurningShip:
		return "Burning Ship"
	case KindTricorn:
		return "Tricorn"
	default:
		return "Mandelbrot"
	}
}

// formatFloat renders a float with the shortest exact representation,
// keeping variant keys stable across calls.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
