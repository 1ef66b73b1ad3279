// Package render converts iteration-count grids into glyph and color cells
// for character-cell display.
//
// Quantization is a pure lookup through one of four fixed bucket tables,
// selected by palette (ASCII or Unicode) and detail level (standard or
// high). Each table is an ordered list of half-open iteration-count ranges;
// the final range is open-ended and maps to the "in-set" cell. The tables
// are exhaustive: every uint32 matches exactly one bucket.
//
// A Quantizer optionally runs in differential mode, retaining the last grid
// it quantized and emitting the blank placeholder for cells whose count is
// unchanged. This suppresses redundant terminal writes without changing
// which cells are logically different; the retained grid is dropped whenever
// dimensions change, so the first frame after a resize repaints fully.
//
// Text renders a grid to the newline-delimited glyph form used for
// diagnostic and headless output. It is byte-reproducible for a given grid,
// palette, and detail level.
package render
