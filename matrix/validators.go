// SPDX-License-Identifier: MIT

// Package matrix: canonical validation checks shared by the solver and the
// cost builders. Validators return sentinels wrapped with their tag so call
// sites can match them with errors.Is.
package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil or m holds a nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols) and non-empty.
// Assumes m is not nil.
//
// Errors: ErrInvalidDimensions if empty, ErrDimensionMismatch if not square.
func ValidateSquare(m Matrix) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}
