// SPDX-License-Identifier: MIT

// Package series holds the input guards shared by every tsdist metric.
//
// A time series is a plain []float64 of length n ≥ 1. Metrics compare two
// series position by position, so both must carry the same n. The helpers
// here check exactly that and nothing more: they never copy, reorder or
// inspect the values themselves.
//
// Errors are package-level sentinels. Callers match them with errors.Is,
// even after a metric has wrapped them with its own name:
//
//	if _, err := euclid.ED(a, b); errors.Is(err, series.ErrLengthMismatch) {
//	  // lengths differ
//	}
package series
