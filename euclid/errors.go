// SPDX-License-Identifier: MIT

package euclid

import "errors"

// ErrDegenerateSeries indicates that a series has zero variance, so its
// z-normalization is undefined (division by σ = 0).
var ErrDegenerateSeries = errors.New("euclid: degenerate series (zero variance)")
