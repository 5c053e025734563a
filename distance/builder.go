// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"

	"github.com/Cuauhtlidp/emd-optimizer/matrix"
)

// Option configures CostMatrix.
type Option func(*config)

type config struct {
	metric Metric // nil ⇒ MetricFor(dim)
}

// WithMetric replaces the dimension-based default metric. Any dimension is
// then accepted. A nil metric restores the default.
func WithMetric(m Metric) Option {
	return func(c *config) { c.metric = m }
}

// CostMatrix returns the n×n matrix cost[i][j] = metric(src[i], dst[j]).
//
// Contract:
//   - len(src) == len(dst) ≥ 1 (ErrEmpty, ErrSizeMismatch).
//   - all points share one dimension (ErrDimensionMismatch), 1..3 unless a
//     custom metric is set (ErrUnsupportedDimension).
//   - coordinates are finite (ErrInvalidCoordinate).
//   - every metric value is finite and ≥ 0 (ErrInvalidMetricValue).
//
// Complexity: O(n²·d).
func CostMatrix(src, dst []Point, opts ...Option) (*matrix.Dense, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	dim, err := validatePoints(src, dst)
	if err != nil {
		return nil, err
	}
	metric := cfg.metric
	if metric == nil {
		if metric, err = MetricFor(dim); err != nil {
			return nil, err
		}
	}

	var (
		n    = len(src)
		i, j int
		d    float64
	)
	cost, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d = metric(src[i], dst[j])
			if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
				return nil, fmt.Errorf("pair (%d,%d) gave %g: %w", i, j, d, ErrInvalidMetricValue)
			}
			_ = cost.Set(i, j, d)
		}
	}

	return cost, nil
}

// validatePoints checks sizes, dimensions and coordinates; it returns the
// common dimension.
func validatePoints(src, dst []Point) (int, error) {
	if len(src) == 0 || len(dst) == 0 {
		return 0, ErrEmpty
	}
	if len(src) != len(dst) {
		return 0, fmt.Errorf("%d source vs %d target points: %w", len(src), len(dst), ErrSizeMismatch)
	}
	dim := src[0].Dim()
	if dim == 0 {
		return 0, fmt.Errorf("source point 0 has no coordinates: %w", ErrDimensionMismatch)
	}
	check := func(side string, pts []Point) error {
		for i, p := range pts {
			if p.Dim() != dim {
				return fmt.Errorf("%s point %d has dimension %d, want %d: %w",
					side, i, p.Dim(), dim, ErrDimensionMismatch)
			}
			for _, v := range p {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("%s point %d: %w", side, i, ErrInvalidCoordinate)
				}
			}
		}
		return nil
	}
	if err := check("source", src); err != nil {
		return 0, err
	}
	if err := check("target", dst); err != nil {
		return 0, err
	}

	return dim, nil
}

// SplitTable splits coordinate rows into source and target point sets.
// Each row holds 2, 4 or 6 values: the first half is a source point, the
// second half the matching-row target point (x1,x2 / x1,y1,x2,y2 /
// x1,y1,z1,x2,y2,z2).
//
// Errors: ErrEmpty, ErrUnsupportedDimension for other widths,
// ErrDimensionMismatch for ragged rows.
func SplitTable(rows [][]float64) (src, dst []Point, err error) {
	if len(rows) == 0 {
		return nil, nil, ErrEmpty
	}
	width := len(rows[0])
	switch width {
	case 2, 4, 6:
	default:
		return nil, nil, fmt.Errorf("table has %d columns, want 2, 4 or 6: %w", width, ErrUnsupportedDimension)
	}
	dim := width / 2
	src = make([]Point, len(rows))
	dst = make([]Point, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), width, ErrDimensionMismatch)
		}
		src[i] = append(Point(nil), row[:dim]...)
		dst[i] = append(Point(nil), row[dim:]...)
	}

	return src, dst, nil
}
