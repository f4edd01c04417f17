// SPDX-License-Identifier: MIT

// Package metric puts the tsdist distance functions behind one interface so
// that callers such as nearest-neighbor scans or the tsdist CLI can pick a
// measure by name at runtime.
//
//	m, err := metric.New(metric.DTW, dtw.WithWindow(0.1))
//	d, err := m.Distance(a, b)
//
// Kinds: ED, NormalizedED, DTW. DTW options are ignored by the other kinds.
package metric
