// SPDX-License-Identifier: MIT

// Package tsdist is a small toolbox of distance measures between numeric
// time series — the primitive underneath nearest-neighbor search,
// matrix-profile joins and swap/anomaly detection.
//
// 🚀 What is inside?
//
//	euclid/ — ED and amplitude-normalized (z-normalized) ED, ZNormalize
//	dtw/    — Dynamic Time Warping with Sakoe–Chiba band, two memory modes
//	          and alignment path recovery
//	metric/ — one Metric interface over all of the above, selectable by name
//	series/ — shared input guards and sentinel errors
//	synth/  — deterministic pulse / chirp / random-walk generators
//	cmd/tsdist — command-line report of every metric for two series
//
// ✨ Guarantees:
//
//   - Pure functions: no shared state, safe for concurrent callers
//   - Explicit errors: length mismatch, zero variance and bad windows are
//     errors, never magic return values
//   - +Inf from a banded DTW is a distance ("no admissible alignment"),
//     not an error
//
// Quick look:
//
//	d, _ := euclid.ED([]float64{0, 0}, []float64{3, 4})        // 5
//	w, _ := dtw.DTW(a, b, dtw.WithWindow(0.1))                 // banded DTW
//	m, _ := metric.New(metric.NormalizedED)
//
//	go get github.com/katalvlaran/tsdist
package tsdist
