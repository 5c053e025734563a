// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/Cuauhtlidp/emd-optimizer/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquareNonNil covers nil inputs, square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil dense", (*matrix.Dense)(nil), matrix.ErrNilMatrix},
		{"square 1x1", dense(1, 1), nil},
		{"square 3x3", dense(3, 3), nil},
		{"wide 2x3", dense(2, 3), matrix.ErrDimensionMismatch},
		{"tall 3x2", dense(3, 2), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// emptyMatrix reports zero rows and columns; Dense cannot represent that shape.
type emptyMatrix struct{}

func (emptyMatrix) Rows() int                     { return 0 }
func (emptyMatrix) Cols() int                     { return 0 }
func (emptyMatrix) At(i, j int) (float64, error)  { return 0, matrix.ErrIndexOutOfBounds }
func (emptyMatrix) Set(i, j int, v float64) error { return matrix.ErrIndexOutOfBounds }
func (emptyMatrix) Clone() matrix.Matrix          { return emptyMatrix{} }

func TestValidateSquare_Empty(t *testing.T) {
	t.Parallel()

	err := matrix.ValidateSquare(emptyMatrix{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
