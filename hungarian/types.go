// SPDX-License-Identifier: MIT

package hungarian

import "errors"

var (
	// ErrInvalidShape indicates a nil, empty, ragged or non-square cost matrix.
	ErrInvalidShape = errors.New("hungarian: cost matrix must be square and non-empty")

	// ErrInvalidValue indicates a negative, NaN or infinite cost entry.
	ErrInvalidValue = errors.New("hungarian: cost entries must be finite and non-negative")

	// ErrNoFeasibleAssignment signals that the zero graph of the reduced
	// matrix has no perfect matching. It is unreachable for valid input and
	// marks an internal invariant violation.
	ErrNoFeasibleAssignment = errors.New("hungarian: no perfect matching among zeros")

	// ErrIterationLimit signals that the cover/adjust loop exceeded its cap.
	ErrIterationLimit = errors.New("hungarian: iteration limit exceeded")
)

// Result holds the outcome of a solve.
type Result struct {
	// Assignment maps row i to column Assignment[i]; it is a permutation of 0..n-1.
	Assignment []int

	// Cost is Σ original[i][Assignment[i]], evaluated on the unreduced matrix.
	Cost float64

	// Iterations counts cover passes (one per loop turn, including the final one).
	Iterations int
}
