// SPDX-License-Identifier: MIT

package euclid

import (
	"fmt"

	"github.com/katalvlaran/tsdist/series"
	"gonum.org/v1/gonum/floats"
)

// euclideanNorm selects the L2 norm in floats.Distance.
const euclideanNorm = 2

// ED returns the Euclidean distance between ts1 and ts2:
//
//	sqrt(Σ (ts1[i] − ts2[i])²)
//
// Errors:
//   - series.ErrLengthMismatch if len(ts1) != len(ts2).
//   - series.ErrEmpty if both are empty.
//
// Complexity: O(n) time, O(1) memory.
func ED(ts1, ts2 []float64) (float64, error) {
	if err := series.ValidatePair(ts1, ts2); err != nil {
		return 0, fmt.Errorf("ED: %w", err)
	}

	return floats.Distance(ts1, ts2, euclideanNorm), nil
}
