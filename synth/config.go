// SPDX-License-Identifier: MIT
// Package: synth
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • amplitude  = 1.0
//   • frequency  = 0   (generator picks its own default)
//   • sweepEnd   = 0.25
//   • trendK     = 0.0
//   • noiseSigma = 0.0
//   • rng        = seeded with defaultSeed on first use

package synth

import (
	"math"
	"math/rand"
)

// config aggregates all generator knobs. Passed by value after resolution.
type config struct {
	amplitude  float64
	frequency  float64
	sweepEnd   float64
	triangular bool
	trendK     float64
	noiseSigma float64
	rng        *rand.Rand
}

const (
	defaultAmplitude = 1.0
	defaultSweepEnd  = 0.25
	defaultSeed      = int64(1)

	defPulseFreq = 0.125 // period ≈ 8 samples
	defPulseDuty = 0.5
	defChirpF0   = 0.02
)

// tau is 2π.
const tau = 2.0 * math.Pi

// newConfig applies opts in order over the defaults (later wins).
func newConfig(opts ...Option) config {
	cfg := config{
		amplitude: defaultAmplitude,
		sweepEnd:  defaultSweepEnd,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// freqOr returns the configured frequency or def when unset.
func (c config) freqOr(def float64) float64 {
	if c.frequency > 0 {
		return c.frequency
	}

	return def
}

// finish adds trend and noise to a base sample at index i.
func (c config) finish(i int, base float64) float64 {
	base += c.trendK * float64(i)
	if c.noiseSigma > 0 {
		base += c.noiseSigma * c.rng.NormFloat64()
	}

	return base
}
