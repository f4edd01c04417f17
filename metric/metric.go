// SPDX-License-Identifier: MIT

package metric

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tsdist/dtw"
	"github.com/katalvlaran/tsdist/euclid"
)

// ErrUnknownMetric is returned by ParseKind and New for an unsupported kind.
var ErrUnknownMetric = errors.New("metric: unknown metric")

// Metric computes a distance between two equal-length series.
type Metric interface {
	// Name is the canonical kind name ("ed", "norm-ed", "dtw").
	Name() string
	// Distance returns the distance or the underlying metric's error.
	Distance(a, b []float64) (float64, error)
}

// Kind enumerates the supported measures.
type Kind int

const (
	// ED is the plain Euclidean distance (euclid.ED).
	ED Kind = iota

	// NormalizedED is the z-normalized Euclidean distance (euclid.NormalizedED).
	NormalizedED

	// DTW is the Dynamic Time Warping distance (dtw.DTW), honoring DTW options.
	DTW
)

var kindNames = map[Kind]string{
	ED:           "ed",
	NormalizedED: "norm-ed",
	DTW:          "dtw",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{ED, NormalizedED, DTW}
}

// ParseKind maps a case-insensitive name to a Kind. "euclidean",
// "normalized" and "znorm" are accepted as aliases.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ed", "euclidean":
		return ED, nil
	case "norm-ed", "normalized", "znorm":
		return NormalizedED, nil
	case "dtw":
		return DTW, nil
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownMetric)
}

// Func adapts a plain distance function into a Metric.
type Func struct {
	name string
	fn   func(a, b []float64) (float64, error)
}

// NewFunc wraps fn under the given name.
func NewFunc(name string, fn func(a, b []float64) (float64, error)) Func {
	return Func{name: name, fn: fn}
}

// Name returns the name given to NewFunc.
func (f Func) Name() string { return f.name }

// Distance calls the wrapped function.
func (f Func) Distance(a, b []float64) (float64, error) { return f.fn(a, b) }

// New returns the Metric for kind. opts only apply to DTW.
func New(kind Kind, opts ...dtw.Option) (Metric, error) {
	switch kind {
	case ED:
		return NewFunc(kind.String(), euclid.ED), nil
	case NormalizedED:
		return NewFunc(kind.String(), euclid.NormalizedED), nil
	case DTW:
		return NewFunc(kind.String(), func(a, b []float64) (float64, error) {
			return dtw.DTW(a, b, opts...)
		}), nil
	}

	return nil, fmt.Errorf("%v: %w", kind, ErrUnknownMetric)
}
