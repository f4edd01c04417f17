// SPDX-License-Identifier: MIT

// Package euclid computes lock-step distances between two equal-length
// numeric time series: plain Euclidean distance (ED) and amplitude-normalized
// (z-normalized) Euclidean distance.
//
// 🚀 What is here?
//
//	ED           — sqrt(Σ (a[i] − b[i])²), the L2 norm of the difference.
//	NormalizedED — ED between the z-normalized copies of a and b, computed
//	               in closed form from means, population standard deviations
//	               and the dot product, without materializing the copies:
//
//	    norm_ed = sqrt(| 2n · (1 − (a·b − n·μa·μb) / (n·σa·σb)) |)
//
//	ZNormalize   — the materializing route, for callers that need the
//	               normalized series itself.
//
// ⚙️ Usage:
//
//	d, err := euclid.ED(a, b)
//	if errors.Is(err, series.ErrLengthMismatch) { ... }
//
//	nd, err := euclid.NormalizedED(a, b)
//	if errors.Is(err, euclid.ErrDegenerateSeries) { ... } // constant input
//
// σ is always the population standard deviation sqrt(mean((x − μ)²)), never
// the Bessel-corrected sample one.
//
// Performance:
//
//   - ED:           O(n) time, O(1) memory
//   - NormalizedED: O(n) time, O(1) memory (three passes)
//   - ZNormalize:   O(n) time, O(n) memory
package euclid
