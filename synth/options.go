// SPDX-License-Identifier: MIT
// Package: synth
//
// options.go — functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: noise and walks draw from WithSeed/WithRand,
//     or from defaultSeed when neither is given.

package synth

import (
	"math/rand"
)

// Option customizes a generator by mutating its config before sampling.
type Option func(*config)

// WithAmplitude sets the amplitude A (>0). Panics if A <= 0.
func WithAmplitude(A float64) Option {
	if A <= 0 {
		panic("synth: WithAmplitude(A<=0)")
	}
	return func(c *config) {
		c.amplitude = A
	}
}

// WithFrequency sets the base frequency f0 (>0, cycles/sample).
// For Chirp it is the start of the sweep. Panics if f0 <= 0.
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("synth: WithFrequency(f0<=0)")
	}
	return func(c *config) {
		c.frequency = f0
	}
}

// WithSweepEnd sets the final chirp frequency f1 (>0). Ignored by other
// generators. Panics if f1 <= 0.
func WithSweepEnd(f1 float64) Option {
	if f1 <= 0 {
		panic("synth: WithSweepEnd(f1<=0)")
	}
	return func(c *config) {
		c.sweepEnd = f1
	}
}

// WithTriangular switches Pulse from rectangular to triangular shape.
func WithTriangular() Option {
	return func(c *config) {
		c.triangular = true
	}
}

// WithTrend adds k·i to sample i. Any real k is accepted.
func WithTrend(k float64) Option {
	return func(c *config) {
		c.trendK = k
	}
}

// WithNoise adds Gaussian noise with standard deviation sigma (>=0).
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(c *config) {
		c.noiseSigma = sigma
	}
}

// WithSeed seeds a private RNG for noise and random walks.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit RNG across calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
