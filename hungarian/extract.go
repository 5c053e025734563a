// SPDX-License-Identifier: MIT

package hungarian

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// extract returns one system of n independent zeros of w as an assignment
// (row i → column assignment[i]).
//
// It runs Kuhn's maximum bipartite matching on the zero graph from scratch:
// a greedy lowest-column seed followed by one augmenting search per exposed
// row. The work is polynomial, unlike enumerating the Cartesian product of
// each row's zero columns.
//
// Errors: ErrNoFeasibleAssignment if the zero graph has no perfect matching.
//
// Complexity: O(n³).
func extract(w *workspace) ([]int, error) {
	var (
		n    = w.n
		st   = newCoverState(n)
		seen = bitset.New(uint(n))
		i, j int
	)

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if w.isZero(i, j) && st.starRow[j] == unassigned {
				st.star(i, j)
				break
			}
		}
	}
	for i = 0; i < n; i++ {
		if st.starCol[i] != unassigned {
			continue
		}
		seen.ClearAll()
		if !augment(w, st, i, seen) {
			return nil, fmt.Errorf("extract: row %d has no augmenting path (%d of %d matched): %w",
				i, st.stars(), n, ErrNoFeasibleAssignment)
		}
	}

	return st.starCol, nil
}
