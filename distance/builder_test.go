// SPDX-License-Identifier: MIT

package distance_test

import (
	"math"
	"testing"

	"github.com/Cuauhtlidp/emd-optimizer/distance"
	"github.com/Cuauhtlidp/emd-optimizer/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowsOf(t *testing.T, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		r, err := m.Row(i)
		require.NoError(t, err)
		out[i] = r
	}
	return out
}

func TestCostMatrix_1D(t *testing.T) {
	t.Parallel()

	src := []distance.Point{{0}, {3}, {6}}
	dst := []distance.Point{{1}, {4}, {9}}
	m, err := distance.CostMatrix(src, dst)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{1, 4, 9},
		{2, 1, 6},
		{5, 2, 3},
	}, rowsOf(t, m))
}

func TestCostMatrix_2DAnd3D(t *testing.T) {
	t.Parallel()

	m, err := distance.CostMatrix(
		[]distance.Point{{0, 0}, {1, 1}},
		[]distance.Point{{3, 4}, {1, 1}},
	)
	require.NoError(t, err)
	got := rowsOf(t, m)
	assert.InDelta(t, 5.0, got[0][0], 1e-12)
	assert.InDelta(t, math.Sqrt2, got[0][1], 1e-12)
	assert.InDelta(t, 0.0, got[1][1], 1e-12)

	m, err = distance.CostMatrix(
		[]distance.Point{{0, 0, 0}},
		[]distance.Point{{1, 2, 2}},
	)
	require.NoError(t, err)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, 1e-12)
}

func TestCostMatrix_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src, dst []distance.Point
		wantErr  error
	}{
		{"empty", nil, nil, distance.ErrEmpty},
		{"size mismatch", []distance.Point{{1}}, []distance.Point{{1}, {2}}, distance.ErrSizeMismatch},
		{"dimension mismatch", []distance.Point{{1}, {2, 3}}, []distance.Point{{1}, {2}}, distance.ErrDimensionMismatch},
		{"target dimension mismatch", []distance.Point{{1}}, []distance.Point{{1, 2}}, distance.ErrDimensionMismatch},
		{"4D without metric", []distance.Point{{1, 2, 3, 4}}, []distance.Point{{1, 2, 3, 4}}, distance.ErrUnsupportedDimension},
		{"NaN coordinate", []distance.Point{{math.NaN()}}, []distance.Point{{1}}, distance.ErrInvalidCoordinate},
		{"Inf coordinate", []distance.Point{{1}}, []distance.Point{{math.Inf(1)}}, distance.ErrInvalidCoordinate},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := distance.CostMatrix(tc.src, tc.dst)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCostMatrix_CustomMetric(t *testing.T) {
	t.Parallel()

	manhattan := func(a, b distance.Point) float64 {
		var s float64
		for i := range a {
			s += distance.Absolute(a[i], b[i])
		}
		return s
	}
	m, err := distance.CostMatrix(
		[]distance.Point{{0, 0, 0, 0}},
		[]distance.Point{{1, -1, 2, 0}},
		distance.WithMetric(manhattan),
	)
	require.NoError(t, err)
	v, _ := m.At(0, 0)
	require.Equal(t, 4.0, v)

	negative := func(a, b distance.Point) float64 { return -1 }
	_, err = distance.CostMatrix([]distance.Point{{0}}, []distance.Point{{0}}, distance.WithMetric(negative))
	require.ErrorIs(t, err, distance.ErrInvalidMetricValue)
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2.5, distance.Absolute(1.0, 3.5))
	assert.Equal(t, float32(2), distance.Absolute(float32(3), float32(1)))
	assert.InDelta(t, 5.0, distance.Euclidean([]float64{0, 0}, []float64{3, 4}), 1e-12)

	_, err := distance.MetricFor(0)
	require.ErrorIs(t, err, distance.ErrUnsupportedDimension)
	for _, d := range []int{1, 2, 3} {
		m, err := distance.MetricFor(d)
		require.NoError(t, err)
		require.NotNil(t, m)
	}
}

func TestSplitTable(t *testing.T) {
	t.Parallel()

	src, dst, err := distance.SplitTable([][]float64{
		{0, 1},
		{3, 4},
	})
	require.NoError(t, err)
	require.Equal(t, []distance.Point{{0}, {3}}, src)
	require.Equal(t, []distance.Point{{1}, {4}}, dst)

	src, dst, err = distance.SplitTable([][]float64{{1, 2, 3, 4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, []distance.Point{{1, 2, 3}}, src)
	require.Equal(t, []distance.Point{{4, 5, 6}}, dst)

	_, _, err = distance.SplitTable(nil)
	require.ErrorIs(t, err, distance.ErrEmpty)

	_, _, err = distance.SplitTable([][]float64{{1, 2, 3}})
	require.ErrorIs(t, err, distance.ErrUnsupportedDimension)

	_, _, err = distance.SplitTable([][]float64{{1, 2}, {1}})
	require.ErrorIs(t, err, distance.ErrDimensionMismatch)
}
