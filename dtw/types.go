// SPDX-License-Identifier: MIT

package dtw

import "fmt"

// MemoryMode controls how DTW stores its cost grid.
//
//   - FullMatrix — keep the whole (n+1)×(n+1) grid. Needed for Path.
//     Memory: O(n²).
//   - TwoRows    — keep only the previous and current row.
//     Memory: O(n). Same distance, no path.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps two rolling rows; distance only.
	TwoRows
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// Coord is one aligned pair on a warping path: a[I] is matched with b[J].
// Indices are 0-based.
type Coord struct {
	I, J int
}

// windowKind tells how the band was requested.
type windowKind int

const (
	windowNone windowKind = iota
	windowFraction
	windowBand
)

// config is the resolved set of DTW knobs.
type config struct {
	kind     windowKind
	fraction float64 // r, for windowFraction
	band     int     // w, for windowBand
	mode     MemoryMode
}

// Option customizes a DTW call.
type Option func(*config)

// WithWindow constrains the alignment to a Sakoe–Chiba band of half-width
// w = floor(n·r). r = 0 allows the diagonal only; r ≥ 1 covers the whole
// grid. A negative or NaN r makes DTW return ErrInvalidWindow.
func WithWindow(r float64) Option {
	return func(c *config) {
		c.kind = windowFraction
		c.fraction = r
	}
}

// WithBand constrains the alignment to |i−j| ≤ w. A negative w makes DTW
// return ErrInvalidWindow.
func WithBand(w int) Option {
	return func(c *config) {
		c.kind = windowBand
		c.band = w
	}
}

// WithMemoryMode selects grid storage. Panics on an unknown mode.
func WithMemoryMode(m MemoryMode) Option {
	if m != FullMatrix && m != TwoRows {
		panic("dtw: WithMemoryMode(unknown mode)")
	}
	return func(c *config) {
		c.mode = m
	}
}

// newConfig applies opts over the defaults: no band, FullMatrix.
func newConfig(opts ...Option) config {
	cfg := config{kind: windowNone, mode: FullMatrix}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
