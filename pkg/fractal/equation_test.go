package fractal

import (
	"testing"

	"github.com/fractalite/fractalite/pkg/errors"
)

func TestParseVariant(t *testing.T) {
	julia := Julia(complex(-0.7, 0.27))
	multibrot3, _ := Multibrot(3)

	tests := []struct {
		name string
		text string
		want Variant
	}{
		{"Mandelbrot", "z^2 + c", Mandelbrot()},
		{"MandelbrotNoSpaces", "z^2+c", Mandelbrot()},
		{"MandelbrotProduct", "z*z + c", Mandelbrot()},
		{"MandelbrotName", "Mandelbrot", Mandelbrot()},
		{"Tricorn", "conj(z)^2 + c", Tricorn()},
		{"TricornName", "tricorn", Tricorn()},
		{"BurningShip", "abs(z)^2 + c", BurningShip()},
		{"BurningShipBars", "(|re(z)| + i|im(z)|)^2 + c", BurningShip()},
		{"BurningShipName", "Burning Ship", BurningShip()},
		{"Multibrot", "z^3 + c", multibrot3},
		{"Julia", "julia(-0.7, 0.27)", julia},
		{"JuliaNoSpaces", "julia(-0.7,0.27)", julia},
		{"CustomFallback", "z^2 + sin(c)", Custom("z^2 + sin(c)")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariant(tt.text)
			if err != nil {
				t.Fatalf("ParseVariant(%q): %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseVariant(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseVariantRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
		code errors.Code
	}{
		{"Empty", "", errors.ErrCodeInvalidEquation},
		{"Whitespace", "   ", errors.ErrCodeInvalidEquation},
		{"ControlCharacters", "z^2\x00+c", errors.ErrCodeInvalidEquation},
		{"MultibrotPowerTooSmall", "z^1 + c", errors.ErrCodeInvalidVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseVariant(tt.text); !errors.Is(err, tt.code) {
				t.Errorf("ParseVariant(%q) error = %v, want code %s", tt.text, err, tt.code)
			}
		})
	}
}

func TestParseVariantCustomKeepsOriginalText(t *testing.T) {
	v, err := ParseVariant("  z^2 + Sin(C)  ")
	if err != nil {
		t.Fatalf("ParseVariant: %v", err)
	}
	if v.Kind() != KindCustom {
		t.Fatalf("Kind() = %v, want custom", v.Kind())
	}
	if v.Descriptor() != "z^2 + Sin(C)" {
		t.Errorf("Descriptor() = %q, want trimmed original text", v.Descriptor())
	}
}
