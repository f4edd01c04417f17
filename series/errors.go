// SPDX-License-Identifier: MIT
// Package series: sentinel error set.
//
// Every message is prefixed with "series: ..." for easy grepping.
// Metric packages wrap these with their own context via %w; callers still
// match with errors.Is.

package series

import "errors"

var (
	// ErrEmpty is returned when a series has no samples.
	ErrEmpty = errors.New("series: empty series")

	// ErrLengthMismatch is returned when two series compared elementwise have
	// different lengths. It is never coerced by truncation or padding.
	ErrLengthMismatch = errors.New("series: length mismatch")
)
