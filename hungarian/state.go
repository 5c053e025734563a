// SPDX-License-Identifier: MIT

package hungarian

import "github.com/bits-and-blooms/bitset"

// unassigned marks a row or column without a starred zero.
const unassigned = -1

// workspace is the solver-owned working copy of the cost matrix.
// Values live in a flat row-major slice; the caller's matrix is never touched.
type workspace struct {
	n   int
	a   []float64
	eps float64
}

func newWorkspace(n int, eps float64) *workspace {
	return &workspace{n: n, a: make([]float64, n*n), eps: eps}
}

func (w *workspace) at(i, j int) float64 { return w.a[i*w.n+j] }

func (w *workspace) add(i, j int, d float64) { w.a[i*w.n+j] += d }

// isZero reports whether (i,j) is a zero of the reduced matrix under eps.
func (w *workspace) isZero(i, j int) bool { return w.a[i*w.n+j] <= w.eps }

// coverState carries the starred zeros and the current line cover.
//
// Invariant: starCol[i] == j ⇔ starRow[j] == i, so every row and every
// column holds at most one star.
type coverState struct {
	n       int
	starCol []int          // starCol[i] = column of the star in row i, or unassigned
	starRow []int          // starRow[j] = row of the star in column j, or unassigned
	rows    *bitset.BitSet // covered rows
	cols    *bitset.BitSet // covered columns
}

func newCoverState(n int) *coverState {
	st := &coverState{
		n:       n,
		starCol: make([]int, n),
		starRow: make([]int, n),
		rows:    bitset.New(uint(n)),
		cols:    bitset.New(uint(n)),
	}
	var i int
	for i = 0; i < n; i++ {
		st.starCol[i] = unassigned
		st.starRow[i] = unassigned
	}

	return st
}

// star records (i,j) as a starred zero.
func (st *coverState) star(i, j int) {
	st.starCol[i] = j
	st.starRow[j] = i
}

// unstar removes the star of row i, if any.
func (st *coverState) unstar(i int) {
	if j := st.starCol[i]; j != unassigned {
		st.starRow[j] = unassigned
		st.starCol[i] = unassigned
	}
}

// stars returns the number of starred zeros (the current matching size).
func (st *coverState) stars() int {
	var k, i int
	for i = 0; i < st.n; i++ {
		if st.starCol[i] != unassigned {
			k++
		}
	}

	return k
}

// lines returns |covered rows| + |covered columns|.
func (st *coverState) lines() int {
	return int(st.rows.Count() + st.cols.Count())
}

// rowCovered and colCovered read the current cover.
func (st *coverState) rowCovered(i int) bool { return st.rows.Test(uint(i)) }
func (st *coverState) colCovered(j int) bool { return st.cols.Test(uint(j)) }
