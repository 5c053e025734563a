// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix used to carry cost
// matrices between the distance builder, the Hungarian solver and the EMD
// orchestrator.
//
// The package provides:
//
//   - Matrix: a minimal interface (Rows, Cols, At, Set, Clone) so callers can
//     plug their own storage into the solver.
//   - Dense: a row-major implementation backed by a single flat slice.
//   - Validators: ValidateNotNil, ValidateSquare and ValidateSquareNonNil,
//     returning the sentinels from errors.go wrapped with a call-site tag.
//
// All indexers are bounds-checked and return ErrIndexOutOfBounds instead of
// panicking.
//
//	m, err := matrix.NewDenseFromRows([][]float64{
//		{4, 1, 3},
//		{2, 0, 5},
//		{3, 2, 2},
//	})
package matrix
