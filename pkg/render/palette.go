package render

import (
	"fmt"
	"strings"

	"github.com/fractalite/fractalite/pkg/errors"
)

// Palette selects the glyph character set.
type Palette int

// The supported character sets.
const (
	PaletteASCII Palette = iota
	PaletteUnicode
)

// String returns the lowercase palette name.
func (p Palette) String() string {
	if p == PaletteUnicode {
		return "unicode"
	}
	return "ascii"
}

// Detail selects the quantization granularity.
type Detail int

// The supported detail levels. DetailHigh tables have finer-grained ranges
// and more glyph variety.
const (
	DetailStandard Detail = iota
	DetailHigh
)

// String returns the lowercase detail name.
func (d Detail) String() string {
	if d == DetailHigh {
		return "high"
	}
	return "standard"
}

// ParsePalette resolves a palette name ("ascii" or "unicode").
func ParsePalette(s string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascii":
		return PaletteASCII, nil
	case "unicode", "":
		return PaletteUnicode, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidPalette, "unknown palette %q (want ascii or unicode)", s)
}

// ParseDetail resolves a detail name ("standard" or "high").
func ParseDetail(s string) (Detail, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "":
		return DetailStandard, nil
	case "high":
		return DetailHigh, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidPalette, "unknown detail level %q (want standard or high)", s)
}

// =============================================================================
// Bucket Tables
// =============================================================================

// bucket maps an iteration-count range to a display cell. A bucket covers
// counts from min up to (not including) the next bucket's min; the final
// bucket is open-ended and represents cells that stayed in the set.
type bucket struct {
	min   uint32
	glyph rune
	color Color
}

// The four quantization tables. Each table must start at min 0 and be
// strictly increasing; TestBucketTablesExhaustive enforces this.
//
// The standard tables carry the original twelve-step ramp; the high-detail
// tables double the resolution near the boundary where the interesting
// structure lives.
var (
	standardUnicode = []bucket{
		{0, ' ', ColorBlack},
		{3, '░', ColorDarkGray},
		{6, '▒', ColorGray},
		{11, '▓', ColorWhite},
		{16, '█', ColorBlue},
		{21, '█', ColorCyan},
		{31, '█', ColorGreen},
		{41, '█', ColorYellow},
		{51, '█', ColorRed},
		{71, '█', ColorMagenta},
		{91, '█', ColorLightRed},
		{100, '█', ColorLightMagenta},
	}

	standardASCII = []bucket{
		{0, ' ', ColorBlack},
		{3, '.', ColorDarkGray},
		{6, ':', ColorGray},
		{11, ';', ColorWhite},
		{16, '!', ColorBlue},
		{21, '|', ColorCyan},
		{31, '$', ColorGreen},
		{41, '@', ColorYellow},
		{51, '&', ColorRed},
		{71, '%', ColorMagenta},
		{91, '*', ColorLightRed},
		{100, '#', ColorLightMagenta},
	}

	highUnicode = []bucket{
		{0, ' ', ColorBlack},
		{2, '·', ColorDarkGray},
		{4, '░', ColorDarkGray},
		{6, '░', ColorGray},
		{9, '▒', ColorGray},
		{12, '▒', ColorWhite},
		{15, '▓', ColorWhite},
		{18, '▓', ColorBlue},
		{21, '█', ColorLightBlue},
		{26, '█', ColorCyan},
		{31, '█', ColorLightCyan},
		{36, '█', ColorGreen},
		{41, '█', ColorLightGreen},
		{51, '█', ColorYellow},
		{61, '█', ColorLightYellow},
		{71, '█', ColorRed},
		{81, '█', ColorLightRed},
		{91, '█', ColorMagenta},
		{96, '█', ColorLightMagenta},
		{100, '█', ColorWhite},
	}

	highASCII = []bucket{
		{0, ' ', ColorBlack},
		{2, '.', ColorDarkGray},
		{4, ',', ColorDarkGray},
		{6, ':', ColorGray},
		{9, ';', ColorGray},
		{12, '-', ColorWhite},
		{15, '=', ColorWhite},
		{18, '+', ColorBlue},
		{21, '!', ColorLightBlue},
		{26, '|', ColorCyan},
		{31, 'i', ColorLightCyan},
		{36, 'l', ColorGreen},
		{41, '$', ColorLightGreen},
		{51, '@', ColorYellow},
		{61, '&', ColorLightYellow},
		{71, '%', ColorRed},
		{81, '*', ColorLightRed},
		{91, '8', ColorMagenta},
		{96, '0', ColorLightMagenta},
		{100, '#', ColorWhite},
	}
)

// lookupTable selects the bucket table for a palette/detail pair.
// The choice depends on nothing but the two selectors.
func lookupTable(p Palette, d Detail) []bucket {
	if d == DetailHigh {
		if p == PaletteUnicode {
			return highUnicode
		}
		return highASCII
	}
	if p == PaletteUnicode {
		return standardUnicode
	}
	return standardASCII
}

// cellFor maps an iteration count through a table: the matching bucket is
// the last one whose min does not exceed n.
func cellFor(table []bucket, n uint32) Cell {
	for i := len(table) - 1; i >= 0; i-- {
		if n >= table[i].min {
			return Cell{Glyph: table[i].glyph, Color: table[i].color}
		}
	}
	// Unreachable while tables start at min 0.
	return BlankCell
}

// LegendEntry names one quantization range and its color, for UI legends.
type LegendEntry struct {
	Label string
	Color Color
}

// Legend returns the ordered range labels for a palette/detail pair.
func Legend(p Palette, d Detail) []LegendEntry {
	table := lookupTable(p, d)
	entries := make([]LegendEntry, len(table))
	for i, b := range table {
		if i == len(table)-1 {
			entries[i] = LegendEntry{Label: fmt.Sprintf("%d+ (in set)", b.min), Color: b.color}
			continue
		}
		entries[i] = LegendEntry{
			Label: fmt.Sprintf("%d-%d", b.min, table[i+1].min-1),
			Color: b.color,
		}
	}
	return entries
}
