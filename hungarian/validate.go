// SPDX-License-Identifier: MIT

package hungarian

import (
	"fmt"
	"math"

	"github.com/Cuauhtlidp/emd-optimizer/matrix"
)

// load validates cost and copies it into a fresh workspace.
// It returns the workspace and a pristine copy of the original entries.
//
// Contract:
//   - cost must be non-nil, square, n ≥ 1 (ErrInvalidShape otherwise).
//   - every entry must be finite and ≥ 0 (ErrInvalidValue otherwise).
//
// Complexity: O(n²) time and memory.
func load(cost matrix.Matrix, eps float64) (*workspace, []float64, error) {
	if err := matrix.ValidateSquareNonNil(cost); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	var (
		n    = cost.Rows()
		w    = newWorkspace(n, eps)
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = cost.At(i, j); err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, nil, fmt.Errorf("entry (%d,%d)=%g: %w", i, j, v, ErrInvalidValue)
			}
			w.a[i*n+j] = v
		}
	}
	original := make([]float64, len(w.a))
	copy(original, w.a)

	return w, original, nil
}
