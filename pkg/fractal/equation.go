package fractal

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/fractalite/fractalite/pkg/errors"
)

// Recognized equation shapes. Whitespace is ignored and matching is
// case-insensitive.
var (
	multibrotPattern = regexp.MustCompile(`^z\^([0-9]+(?:\.[0-9]+)?)\+c$`)
	juliaPattern     = regexp.MustCompile(`^julia\((-?[0-9]+(?:\.[0-9]+)?),(-?[0-9]+(?:\.[0-9]+)?)\)$`)
)

// ParseVariant resolves free-form equation text to a Variant.
//
// Recognized forms:
//
//	z^2 + c            Mandelbrot
//	z^N + c            Multibrot with power N (N >= 2)
//	conj(z)^2 + c      Tricorn
//	abs(z)^2 + c       Burning Ship
//	julia(re, im)      Julia with c = re + im*i
//
// Family names ("mandelbrot", "tricorn", "burning ship", ...) are accepted as
// shorthand. Anything else that is printable yields a Custom variant, which
// the engine renders with the Mandelbrot rule. Empty text, control
// characters, and out-of-range Multibrot powers are rejected.
func ParseVariant(text string) (Variant, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Variant{}, errors.New(errors.ErrCodeInvalidEquation, "equation cannot be empty")
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return Variant{}, errors.New(errors.ErrCodeInvalidEquation, "equation contains control characters")
		}
	}

	s := strings.ToLower(strings.Join(strings.Fields(trimmed), ""))

	switch s {
	case "z^2+c", "z*z+c", "mandelbrot":
		return Mandelbrot(), nil
	case "conj(z)^2+c", "tricorn":
		return Tricorn(), nil
	case "abs(z)^2+c", "(|re(z)|+i|im(z)|)^2+c", "burningship":
		return BurningShip(), nil
	}

	if m := multibrotPattern.FindStringSubmatch(s); m != nil {
		power, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Variant{}, errors.Wrap(errors.ErrCodeInvalidEquation, err, "invalid multibrot power %q", m[1])
		}
		v, err := Multibrot(power)
		if err != nil {
			return Variant{}, err
		}
		return v, nil
	}

	if m := juliaPattern.FindStringSubmatch(s); m != nil {
		re, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Variant{}, errors.Wrap(errors.ErrCodeInvalidEquation, err, "invalid julia parameter %q", m[1])
		}
		im, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return Variant{}, errors.Wrap(errors.ErrCodeInvalidEquation, err, "invalid julia parameter %q", m[2])
		}
		return Julia(complex(re, im)), nil
	}

	// Anything else carries through as a Custom descriptor so the explorer
	// keeps rendering while the user edits.
	return Custom(trimmed), nil
}
