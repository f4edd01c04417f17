// SPDX-License-Identifier: MIT
// Package: synth
//
// generators.go — Pulse, Chirp and RandomWalk.
//
// Contract:
//   • Each generator returns a slice of length n, or nil when n < 1.
//   • O(n) time, O(n) memory. No panics. No global state.

package synth

import (
	"math"
)

// Pulse returns a length-n pulse train.
//
//   - Rectangular: y ∈ {0, A}, on while frac(i·f0) < 0.5.
//   - Triangular:  y = A·(1 − |2·frac(i·f0) − 1|).
//
// Trend and noise are added afterwards.
func Pulse(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	f0 := cfg.freqOr(defPulseFreq)

	out := make([]float64, n)
	var frac, base float64
	for i := 0; i < n; i++ {
		frac = math.Mod(float64(i)*f0, 1)
		switch {
		case cfg.triangular:
			base = cfg.amplitude * (1 - math.Abs(2*frac-1))
		case frac < defPulseDuty:
			base = cfg.amplitude
		default:
			base = 0
		}
		out[i] = cfg.finish(i, base)
	}

	return out
}

// Chirp returns a length-n linear chirp sweeping f0 → f1:
//
//	fi   = f0 + (f1 − f0)·i/(n−1)
//	θi+1 = θi + 2π·fi
//	yi   = A·sin(θi) + trend·i + noise
func Chirp(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	f0, f1 := cfg.freqOr(defChirpF0), cfg.sweepEnd

	out := make([]float64, n)
	theta := 0.0
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (f0 + (f1-f0)*t)
		out[i] = cfg.finish(i, cfg.amplitude*math.Sin(theta))
	}

	return out
}

// RandomWalk returns a length-n Gaussian random walk starting at 0 with
// step size A·N(0,1). Trend and noise are added on top of the walk.
func RandomWalk(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)

	out := make([]float64, n)
	level := 0.0
	for i := 0; i < n; i++ {
		if i > 0 {
			level += cfg.amplitude * cfg.rng.NormFloat64()
		}
		out[i] = cfg.finish(i, level)
	}

	return out
}
