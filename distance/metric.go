// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Absolute returns |a − b|.
func Absolute[T constraints.Float](a, b T) T {
	if a > b {
		return a - b
	}

	return b - a
}

// Euclidean returns the L2 distance between a and b.
// Assumes len(a) == len(b); extra coordinates of the longer vector are ignored.
func Euclidean[T constraints.Float](a, b []T) T {
	var sum float64
	for i := range a {
		if i >= len(b) {
			break
		}
		d := float64(a[i] - b[i])
		sum += d * d
	}

	return T(math.Sqrt(sum))
}

// AbsoluteMetric is the 1D metric.
func AbsoluteMetric(a, b Point) float64 { return Absolute(a[0], b[0]) }

// EuclideanMetric is the 2D/3D metric.
func EuclideanMetric(a, b Point) float64 { return Euclidean([]float64(a), []float64(b)) }

// MetricFor returns the default metric for points of dimension dim.
func MetricFor(dim int) (Metric, error) {
	switch dim {
	case 1:
		return AbsoluteMetric, nil
	case 2, 3:
		return EuclideanMetric, nil
	default:
		return nil, fmt.Errorf("dimension %d: %w", dim, ErrUnsupportedDimension)
	}
}
