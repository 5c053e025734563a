// SPDX-License-Identifier: MIT

package distance

import "errors"

var (
	// ErrEmpty indicates an empty point set or table.
	ErrEmpty = errors.New("distance: point set is empty")

	// ErrSizeMismatch indicates source and target sets of different sizes.
	ErrSizeMismatch = errors.New("distance: source and target sizes differ")

	// ErrDimensionMismatch indicates points of different dimensions.
	ErrDimensionMismatch = errors.New("distance: point dimensions differ")

	// ErrUnsupportedDimension indicates a dimension outside 1..3 with no custom metric.
	ErrUnsupportedDimension = errors.New("distance: only 1D, 2D and 3D points are supported")

	// ErrInvalidCoordinate indicates a NaN or infinite coordinate.
	ErrInvalidCoordinate = errors.New("distance: coordinate must be finite")

	// ErrInvalidMetricValue indicates a metric returned a negative or non-finite distance.
	ErrInvalidMetricValue = errors.New("distance: metric returned an invalid value")
)

// Point is a coordinate vector; len(Point) is its dimension.
type Point []float64

// Dim returns the dimension of p.
func (p Point) Dim() int { return len(p) }

// Metric computes a non-negative distance between two points of equal dimension.
type Metric func(a, b Point) float64
