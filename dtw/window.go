// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"
)

// halfWidth resolves the band half-width for series of length n.
// The result is clamped to n, which already covers the full grid.
func (c config) halfWidth(n int) (int, error) {
	switch c.kind {
	case windowFraction:
		r := c.fraction
		if math.IsNaN(r) || r < 0 {
			return 0, fmt.Errorf("r=%v: %w", r, ErrInvalidWindow)
		}
		if r >= 1 {
			return n, nil
		}
		return int(math.Floor(float64(n) * r)), nil
	case windowBand:
		if c.band < 0 {
			return 0, fmt.Errorf("w=%d: %w", c.band, ErrInvalidWindow)
		}
		return min(c.band, n), nil
	default:
		return n, nil
	}
}

// span returns the inclusive column range of row i (1-based) for half-width w.
func span(i, n, w int) (lo, hi int) {
	return max(1, i-w), min(n, i+w)
}
