// SPDX-License-Identifier: MIT

package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tsdist/dtw"
	"github.com/katalvlaran/tsdist/series"
	"github.com/katalvlaran/tsdist/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// bruteForce enumerates every monotonic path from (0,0) to (n-1,n-1) with
// unit steps and returns the cheapest squared-difference cost.
func bruteForce(a, b []float64) float64 {
	n := len(a)
	var walk func(i, j int) float64
	walk = func(i, j int) float64 {
		d := a[i] - b[j]
		cost := d * d
		if i == n-1 && j == n-1 {
			return cost
		}
		best := math.Inf(1)
		if i+1 < n && j+1 < n {
			best = math.Min(best, walk(i+1, j+1))
		}
		if i+1 < n {
			best = math.Min(best, walk(i+1, j))
		}
		if j+1 < n {
			best = math.Min(best, walk(i, j+1))
		}
		return cost + best
	}

	return walk(0, 0)
}

// TestDTW_Identical yields zero for identical series.
func TestDTW_Identical(t *testing.T) {
	d, err := dtw.DTW([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestDTW_ReversedMatchesBruteForce checks [0,1,2] vs [2,1,0] against
// exhaustive path enumeration.
func TestDTW_ReversedMatchesBruteForce(t *testing.T) {
	a := []float64{0, 1, 2}
	b := []float64{2, 1, 0}

	d, err := dtw.DTW(a, b)
	require.NoError(t, err)
	assert.Equal(t, bruteForce(a, b), d)
	assert.Equal(t, 8.0, d)
}

// TestDTW_RandomMatchesBruteForce repeats the brute-force check on short
// random walks.
func TestDTW_RandomMatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		a := synth.RandomWalk(6, synth.WithSeed(seed))
		b := synth.RandomWalk(6, synth.WithSeed(seed+1000))

		d, err := dtw.DTW(a, b)
		require.NoError(t, err)
		assert.InDelta(t, bruteForce(a, b), d, tol, "seed %d", seed)
	}
}

// TestDTW_SingleSample reduces to the squared difference.
func TestDTW_SingleSample(t *testing.T) {
	d, err := dtw.DTW([]float64{2}, []float64{5})
	require.NoError(t, err)
	assert.Equal(t, 9.0, d)

	d, err = dtw.DTW([]float64{2}, []float64{5}, dtw.WithWindow(0))
	require.NoError(t, err)
	assert.Equal(t, 9.0, d)
}

// TestDTW_Errors covers the input and window guards.
func TestDTW_Errors(t *testing.T) {
	_, err := dtw.DTW([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, series.ErrLengthMismatch)

	_, err = dtw.DTW(nil, nil)
	assert.ErrorIs(t, err, series.ErrEmpty)

	_, err = dtw.DTW([]float64{1}, []float64{1}, dtw.WithWindow(-0.1))
	assert.ErrorIs(t, err, dtw.ErrInvalidWindow)

	_, err = dtw.DTW([]float64{1}, []float64{1}, dtw.WithWindow(math.NaN()))
	assert.ErrorIs(t, err, dtw.ErrInvalidWindow)

	_, err = dtw.DTW([]float64{1}, []float64{1}, dtw.WithBand(-1))
	assert.ErrorIs(t, err, dtw.ErrInvalidWindow)

	_, err = dtw.DTW([]float64{1, 2}, []float64{1}, dtw.WithBand(-1))
	assert.ErrorIs(t, err, series.ErrLengthMismatch, "length is checked before the window")
}

// TestDTW_ZeroWindowIsSquaredED: with w = 0 only the diagonal is admissible.
func TestDTW_ZeroWindowIsSquaredED(t *testing.T) {
	a := []float64{0, 1, 2, 3}
	b := []float64{1, 1, 4, 3}

	d, err := dtw.DTW(a, b, dtw.WithBand(0))
	require.NoError(t, err)
	assert.Equal(t, 1.0+0+4+0, d)

	d, err = dtw.DTW(a, b, dtw.WithWindow(0.2)) // floor(4·0.2) = 0
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)
}

// TestDTW_WindowFloor checks w = floor(n·r): n=10, r=0.15 → w=1.
func TestDTW_WindowFloor(t *testing.T) {
	a := synth.Chirp(10, synth.WithSeed(1))
	b := synth.Chirp(10, synth.WithFrequency(0.05), synth.WithSeed(2))

	byFraction, err := dtw.DTW(a, b, dtw.WithWindow(0.15))
	require.NoError(t, err)
	byBand, err := dtw.DTW(a, b, dtw.WithBand(1))
	require.NoError(t, err)
	assert.Equal(t, byBand, byFraction)
}

// TestDTW_WideWindowEqualsUnconstrained: r ≥ 1 or w ≥ n covers the grid.
func TestDTW_WideWindowEqualsUnconstrained(t *testing.T) {
	a := synth.RandomWalk(40, synth.WithSeed(8))
	b := synth.RandomWalk(40, synth.WithSeed(9))

	full, err := dtw.DTW(a, b)
	require.NoError(t, err)
	for _, opt := range []dtw.Option{dtw.WithWindow(1), dtw.WithWindow(math.Inf(1)), dtw.WithBand(40), dtw.WithBand(1 << 30)} {
		d, err := dtw.DTW(a, b, opt)
		require.NoError(t, err)
		assert.Equal(t, full, d)
	}
}

// TestDTW_Properties checks identity, symmetry, non-negativity and band
// monotonicity on synthetic pairs.
func TestDTW_Properties(t *testing.T) {
	bands := []int{0, 1, 2, 4, 8, 16, 32}
	for seed := int64(1); seed <= 8; seed++ {
		a := synth.RandomWalk(32, synth.WithSeed(seed))
		b := synth.Chirp(32, synth.WithAmplitude(2), synth.WithNoise(0.3), synth.WithSeed(seed))

		full, err := dtw.DTW(a, b)
		require.NoError(t, err)

		prev := math.Inf(1)
		for _, w := range bands {
			self, err := dtw.DTW(a, a, dtw.WithBand(w))
			require.NoError(t, err)
			assert.Equal(t, 0.0, self, "identity, w=%d", w)

			ab, err := dtw.DTW(a, b, dtw.WithBand(w))
			require.NoError(t, err)
			ba, err := dtw.DTW(b, a, dtw.WithBand(w))
			require.NoError(t, err)
			assert.InDelta(t, ab, ba, tol, "symmetry, w=%d", w)

			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, prev, "wider band must not cost more, w=%d", w)
			assert.GreaterOrEqual(t, ab, full, "unconstrained is a lower bound, w=%d", w)
			prev = ab
		}
	}
}

// TestDTW_TwoRowsMatchesFullMatrix compares both memory modes across bands.
func TestDTW_TwoRowsMatchesFullMatrix(t *testing.T) {
	a := synth.Pulse(50, synth.WithNoise(0.2), synth.WithSeed(3))
	b := synth.Pulse(50, synth.WithFrequency(0.1), synth.WithNoise(0.2), synth.WithSeed(4))

	for _, w := range []int{0, 1, 3, 7, 25, 50} {
		ref, err := dtw.DTW(a, b, dtw.WithBand(w))
		require.NoError(t, err)

		got, err := dtw.DTW(a, b, dtw.WithBand(w), dtw.WithMemoryMode(dtw.TwoRows))
		require.NoError(t, err)
		assert.Equal(t, ref, got, "w=%d", w)
	}

	ref, err := dtw.DTW(a, b)
	require.NoError(t, err)
	got, err := dtw.DTW(a, b, dtw.WithMemoryMode(dtw.TwoRows))
	require.NoError(t, err)
	assert.Equal(t, ref, got, "unconstrained")
}

// TestDTW_ShiftedPulseWarpsCheaply: a one-sample delay costs less under DTW
// than on the diagonal.
func TestDTW_ShiftedPulseWarpsCheaply(t *testing.T) {
	a := []float64{0, 0, 1, 1, 0, 0, 0}
	b := []float64{0, 0, 0, 1, 1, 0, 0}

	diag, err := dtw.DTW(a, b, dtw.WithBand(0))
	require.NoError(t, err)
	warped, err := dtw.DTW(a, b, dtw.WithBand(1))
	require.NoError(t, err)

	assert.Equal(t, 2.0, diag)
	assert.Equal(t, 0.0, warped)
}

// TestWithMemoryMode_Panics rejects unknown modes at option construction.
func TestWithMemoryMode_Panics(t *testing.T) {
	assert.Panics(t, func() { dtw.WithMemoryMode(dtw.MemoryMode(7)) })
	assert.Equal(t, "TwoRows", dtw.TwoRows.String())
	assert.Equal(t, "MemoryMode(7)", dtw.MemoryMode(7).String())
}

// TestDTW_OverflowIsInfNotError: squared costs that overflow leave no finite
// path; the distance is +Inf with no error in both memory modes.
func TestDTW_OverflowIsInfNotError(t *testing.T) {
	a := []float64{1e200, 0}
	b := []float64{-1e200, 0}

	for _, mode := range []dtw.MemoryMode{dtw.FullMatrix, dtw.TwoRows} {
		d, err := dtw.DTW(a, b, dtw.WithBand(0), dtw.WithMemoryMode(mode))
		require.NoError(t, err, mode.String())
		assert.True(t, math.IsInf(d, 1), "%s: got %v", mode, d)

		d, err = dtw.DTW(a, b, dtw.WithMemoryMode(mode))
		require.NoError(t, err, mode.String())
		assert.True(t, math.IsInf(d, 1), "%s unconstrained: got %v", mode, d)
	}
}
