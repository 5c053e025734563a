// SPDX-License-Identifier: MIT

package hungarian

import (
	"fmt"

	"github.com/Cuauhtlidp/emd-optimizer/matrix"
)

// ValidateAssignment checks that assignment is a bijection on {0..n-1}.
// Returns ErrInvalidShape wrapped with the offending position otherwise.
//
// Complexity: O(n).
func ValidateAssignment(assignment []int, n int) error {
	if len(assignment) != n {
		return fmt.Errorf("assignment has %d rows, want %d: %w", len(assignment), n, ErrInvalidShape)
	}
	used := make([]bool, n)
	for i, j := range assignment {
		if j < 0 || j >= n {
			return fmt.Errorf("assignment[%d]=%d out of range: %w", i, j, ErrInvalidShape)
		}
		if used[j] {
			return fmt.Errorf("assignment[%d]=%d repeats a column: %w", i, j, ErrInvalidShape)
		}
		used[j] = true
	}

	return nil
}

// AssignmentCost returns Σ m[i][assignment[i]] after validating the shape of
// m and that assignment is a permutation of its columns.
//
// Complexity: O(n).
func AssignmentCost(m matrix.Matrix, assignment []int) (float64, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	if err := ValidateAssignment(assignment, m.Rows()); err != nil {
		return 0, err
	}
	var sum float64
	for i, j := range assignment {
		v, err := m.At(i, j)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidShape, err)
		}
		sum += v
	}

	return sum, nil
}

// sumOriginal evaluates assignment against the flat original entries.
func sumOriginal(original []float64, n int, assignment []int) float64 {
	var sum float64
	for i, j := range assignment {
		sum += original[i*n+j]
	}

	return sum
}
