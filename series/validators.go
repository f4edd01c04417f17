// SPDX-License-Identifier: MIT
// Package: series
//
// Purpose:
//  - Single source of truth for the input checks every metric performs.
//  - Return plain sentinel errors so metric facades can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are O(1), pure and allocate nothing.

package series

import "fmt"

// validatorErrorf tags a sentinel with the failing validator's name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate ensures ts holds at least one sample.
//
// Returns ErrEmpty if len(ts) == 0.
// Complexity: O(1).
func Validate(ts []float64) error {
	if len(ts) == 0 {
		return validatorErrorf("Validate", ErrEmpty)
	}

	return nil
}

// ValidatePair ensures ts1 and ts2 are non-empty and of equal length.
// Length is checked first so that ([1,2,3], []) reports a mismatch rather
// than an empty input.
//
// Returns ErrLengthMismatch or ErrEmpty (wrapped).
// Complexity: O(1).
func ValidatePair(ts1, ts2 []float64) error {
	if len(ts1) != len(ts2) {
		return validatorErrorf(
			fmt.Sprintf("ValidatePair: %d != %d", len(ts1), len(ts2)),
			ErrLengthMismatch,
		)
	}
	if len(ts1) == 0 {
		return validatorErrorf("ValidatePair", ErrEmpty)
	}

	return nil
}

// Len returns the common length of a validated pair, or an error from
// ValidatePair. It is a convenience for metrics that need n right away.
func Len(ts1, ts2 []float64) (int, error) {
	if err := ValidatePair(ts1, ts2); err != nil {
		return 0, err
	}

	return len(ts1), nil
}
