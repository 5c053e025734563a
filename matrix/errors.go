// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it greps well in logs.
// Callers match these with errors.Is; call sites add context with %w.
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. a ragged
	// row set or a non-square matrix where a square one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
