// SPDX-License-Identifier: MIT

package hungarian

import (
	"fmt"
	"math"
)

// adjust applies one Hungarian adjustment to w under the cover in st and
// returns δ, the smallest uncovered entry.
//
// Every uncovered row loses δ and every covered column gains δ, which is the
// same as: uncovered cells −δ, doubly covered cells +δ, singly covered cells
// unchanged. Every starred zero is singly covered (covered row and free
// column, or free row and covered column), so stars survive, and at least one
// new zero appears in the uncovered region.
//
// Errors: ErrNoFeasibleAssignment if the uncovered region is empty, which
// cannot happen while the cover has fewer than n lines.
//
// Complexity: O(n²).
func adjust(w *workspace, st *coverState) (float64, error) {
	var (
		n     = w.n
		i, j  int
		delta = math.Inf(1)
	)

	// Stage 1: δ over uncovered cells.
	for i = 0; i < n; i++ {
		if st.rowCovered(i) {
			continue
		}
		for j = 0; j < n; j++ {
			if st.colCovered(j) {
				continue
			}
			if v := w.at(i, j); v < delta {
				delta = v
			}
		}
	}
	if math.IsInf(delta, 1) {
		return 0, fmt.Errorf("adjust: cover of %d lines leaves no uncovered cell: %w",
			st.lines(), ErrNoFeasibleAssignment)
	}

	// Stage 2: uncovered rows −δ.
	for i = 0; i < n; i++ {
		if st.rowCovered(i) {
			continue
		}
		for j = 0; j < n; j++ {
			w.add(i, j, -delta)
		}
	}

	// Stage 3: covered columns +δ.
	for j = 0; j < n; j++ {
		if !st.colCovered(j) {
			continue
		}
		for i = 0; i < n; i++ {
			w.add(i, j, delta)
		}
	}

	return delta, nil
}
