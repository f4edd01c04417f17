// SPDX-License-Identifier: MIT

// Package synth generates deterministic synthetic time series for tests,
// benchmarks and demos of the tsdist metrics.
//
// Generators:
//   - Pulse      — rectangular or triangular periodic pulse train.
//   - Chirp      — linear frequency sweep sinusoid.
//   - RandomWalk — Gaussian random walk (cumulative N(0, A²) steps).
//
// Every generator accepts the same functional options (amplitude,
// frequency, trend, noise, seed). Output is a pure function of
// (n, options): the same call always yields the same slice.
//
//	a := synth.Chirp(256, synth.WithNoise(0.05), synth.WithSeed(1))
//	b := synth.Chirp(256, synth.WithNoise(0.05), synth.WithSeed(2))
//	d, _ := dtw.DTW(a, b, dtw.WithWindow(0.1))
package synth
