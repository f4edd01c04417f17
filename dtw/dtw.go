// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tsdist/series"
)

// DTW — Dynamic Time Warping distance
//
// Algorithm (FullMatrix):
//  1. n = len(a) = len(b). Allocate an (n+1)×(n+1) grid D filled with +∞.
//  2. D[0][0] = 0.
//  3. For i = 1..n, for j in the band of row i:
//     D[i][j] = (a[i-1] − b[j-1])² + min(D[i-1][j], D[i-1][j-1], D[i][j-1])
//  4. distance = D[n][n].
//
// TwoRows runs the same recurrence over two reused rows.
//
// Errors:
//   - series.ErrLengthMismatch, series.ErrEmpty
//   - ErrInvalidWindow for a negative / NaN window
//
// A distance of +∞ means no alignment fits inside the band.
func DTW(a, b []float64, opts ...Option) (float64, error) {
	cfg := newConfig(opts...)
	n, w, err := prepare(a, b, cfg)
	if err != nil {
		return 0, err
	}

	if cfg.mode == TwoRows {
		return rolling(a, b, n, w), nil
	}

	return fill(a, b, n, w)[n][n], nil
}

// Path returns the DTW distance together with one optimal warping path
// from (0,0) to (n-1,n-1). Ties prefer the diagonal step. The path is nil
// when the distance is +∞.
//
// Errors: as DTW, plus ErrPathNeedsMatrix when MemoryMode=TwoRows.
func Path(a, b []float64, opts ...Option) (float64, []Coord, error) {
	cfg := newConfig(opts...)
	if cfg.mode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}
	n, w, err := prepare(a, b, cfg)
	if err != nil {
		return 0, nil, err
	}

	grid := fill(a, b, n, w)
	dist := grid[n][n]
	if math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	return dist, backtrack(grid, n), nil
}

// prepare validates inputs and resolves the band half-width.
func prepare(a, b []float64, cfg config) (n, w int, err error) {
	if n, err = series.Len(a, b); err != nil {
		return 0, 0, fmt.Errorf("DTW: %w", err)
	}
	if w, err = cfg.halfWidth(n); err != nil {
		return 0, 0, fmt.Errorf("DTW: %w", err)
	}

	return n, w, nil
}

// fill builds the full (n+1)×(n+1) cost grid restricted to half-width w.
func fill(a, b []float64, n, w int) [][]float64 {
	inf := math.Inf(1)
	grid := make([][]float64, n+1)
	for i := range grid {
		grid[i] = make([]float64, n+1)
		for j := range grid[i] {
			grid[i][j] = inf
		}
	}
	grid[0][0] = 0

	for i := 1; i <= n; i++ {
		lo, hi := span(i, n, w)
		prev, curr := grid[i-1], grid[i]
		for j := lo; j <= hi; j++ {
			d := a[i-1] - b[j-1]
			curr[j] = d*d + min3(prev[j], prev[j-1], curr[j-1])
		}
	}

	return grid
}

// rolling runs the recurrence over two rows. Row i only writes its band
// [lo, hi]; the cells at lo-1 and hi+1 are reset to +∞ so the next row never
// reads a value left over from two rows earlier.
func rolling(a, b []float64, n, w int) float64 {
	inf := math.Inf(1)
	prev := make([]float64, n+1)
	curr := make([]float64, n+1)
	for j := range prev {
		prev[j] = inf
		curr[j] = inf
	}
	prev[0] = 0

	for i := 1; i <= n; i++ {
		lo, hi := span(i, n, w)
		curr[lo-1] = inf
		if hi < n {
			curr[hi+1] = inf
		}
		for j := lo; j <= hi; j++ {
			d := a[i-1] - b[j-1]
			curr[j] = d*d + min3(prev[j], prev[j-1], curr[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// backtrack walks from (n,n) to (1,1) following the cheapest predecessor
// and returns the 0-based path in forward order.
func backtrack(grid [][]float64, n int) []Coord {
	path := make([]Coord, 0, 2*n-1)
	i, j := n, n
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := grid[i-1][j-1], grid[i-1][j], grid[i][j-1]
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
