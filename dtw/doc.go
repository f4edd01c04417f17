// SPDX-License-Identifier: MIT

// Package dtw computes Dynamic Time Warping (DTW) distances between two
// equal-length numeric time series, with an optional Sakoe–Chiba warping
// window, two memory modes and on-demand alignment path recovery.
//
// 🚀 What is DTW?
//
//	DTW finds the cheapest monotonic alignment between two sequences,
//	letting either one stretch or compress locally. The cost of an
//	alignment is the sum of squared differences of the aligned samples.
//	It underlies:
//	  • Nearest-neighbor search over time series
//	  • Matrix-profile style similarity joins
//	  • Anomaly and meter-swap detection
//
// ✨ Recurrence (n = len(a) = len(b)):
//
//	D[0][0] = 0, every other cell starts at +∞
//	D[i][j] = (a[i-1] − b[j-1])² + min(D[i-1][j], D[i-1][j-1], D[i][j-1])
//	distance = D[n][n]
//
// With a window the row i only evaluates j ∈ [max(1, i−w), min(n, i+w)];
// cells outside the band stay +∞. A band too narrow to reach (n, n) yields
// +∞, which is a valid, comparable (worst-case) distance and not an error.
//
// ⚙️ Usage:
//
//	d, err := dtw.DTW(a, b)                      // unconstrained
//	d, err := dtw.DTW(a, b, dtw.WithWindow(0.1)) // w = floor(0.1·n)
//	d, err := dtw.DTW(a, b, dtw.WithBand(5))     // w = 5
//	d, err := dtw.DTW(a, b, dtw.WithMemoryMode(dtw.TwoRows))
//	d, path, err := dtw.Path(a, b, dtw.WithBand(5))
//
// Performance:
//
//   - Time:   O(n²) unconstrained, O(n·w) banded
//   - Memory: O(n²) (FullMatrix) or O(n) (TwoRows)
//
// The band is never silently widened: narrowing it changes both the
// runtime and the result.
package dtw
