// SPDX-License-Identifier: MIT

package dtw

import "errors"

var (
	// ErrInvalidWindow indicates a negative or NaN warping window.
	ErrInvalidWindow = errors.New("dtw: invalid warping window")

	// ErrPathNeedsMatrix indicates that path recovery was requested with
	// MemoryMode=TwoRows, which does not keep the grid.
	ErrPathNeedsMatrix = errors.New("dtw: path recovery requires MemoryMode=FullMatrix")
)
