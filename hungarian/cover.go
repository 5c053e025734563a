// SPDX-License-Identifier: MIT

package hungarian

import "github.com/bits-and-blooms/bitset"

// cover recomputes the minimum line cover of the zeros of w into st and
// reports whether it needs n lines (a perfect zero assignment exists).
//
// Algorithm:
//  1. Drop stars that are no longer zeros (adjust never removes one; this
//     only guards eps round-off).
//  2. Greedy pass: each row without a star takes its first zero whose column
//     is still free (lowest column index wins).
//  3. Augment: each row still exposed searches an alternating path over
//     zeros; success grows the star set by one. The stars now form a
//     maximum matching of the zero graph.
//  4. Label: from exposed rows, mark every column reachable through a zero
//     of a marked row, then the row starred in that column; repeat to a
//     fixed point (BFS).
//  5. Cover = unmarked rows ∪ marked columns. By König's theorem its size
//     equals the number of stars.
//
// Complexity: O(n³) for the augmenting step, O(n²) for labelling.
func cover(w *workspace, st *coverState) bool {
	var (
		n    = w.n
		i, j int
	)

	// Stage 1: stale stars.
	for i = 0; i < n; i++ {
		if j = st.starCol[i]; j != unassigned && !w.isZero(i, j) {
			st.unstar(i)
		}
	}

	// Stage 2: greedy starring.
	for i = 0; i < n; i++ {
		if st.starCol[i] != unassigned {
			continue
		}
		for j = 0; j < n; j++ {
			if w.isZero(i, j) && st.starRow[j] == unassigned {
				st.star(i, j)
				break
			}
		}
	}

	// Stage 3: augmenting paths from exposed rows.
	seen := bitset.New(uint(n))
	for i = 0; i < n; i++ {
		if st.starCol[i] != unassigned {
			continue
		}
		seen.ClearAll()
		augment(w, st, i, seen)
	}

	// Stage 4: alternating labels from exposed rows.
	markedRows := bitset.New(uint(n))
	markedCols := bitset.New(uint(n))
	queue := make([]int, 0, n)
	for i = 0; i < n; i++ {
		if st.starCol[i] == unassigned {
			markedRows.Set(uint(i))
			queue = append(queue, i)
		}
	}
	var r int
	for len(queue) > 0 {
		i, queue = queue[0], queue[1:]
		for j = 0; j < n; j++ {
			if !w.isZero(i, j) || markedCols.Test(uint(j)) {
				continue
			}
			markedCols.Set(uint(j))
			if r = st.starRow[j]; r != unassigned && !markedRows.Test(uint(r)) {
				markedRows.Set(uint(r))
				queue = append(queue, r)
			}
		}
	}

	// Stage 5: read off the cover.
	st.rows = markedRows.Complement()
	st.cols = markedCols

	return st.lines() == n
}

// augment searches an alternating path from row i over zeros of w, visiting
// columns in ascending order. On success the path is flipped so that row i
// gains a star and every other row on the path keeps one.
//
// Complexity: O(n²) per call.
func augment(w *workspace, st *coverState, i int, seen *bitset.BitSet) bool {
	var j int
	for j = 0; j < w.n; j++ {
		if !w.isZero(i, j) || seen.Test(uint(j)) {
			continue
		}
		seen.Set(uint(j))
		if r := st.starRow[j]; r == unassigned || augment(w, st, r, seen) {
			st.star(i, j)
			return true
		}
	}

	return false
}
