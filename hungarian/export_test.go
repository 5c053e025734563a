// SPDX-License-Identifier: MIT

package hungarian

// Test-only hooks exposing the private stages to the external hungarian_test
// package. They exist only under `go test`.

func toWorkspace(rows [][]float64, eps float64) *workspace {
	n := len(rows)
	w := newWorkspace(n, eps)
	for i := range rows {
		copy(w.a[i*n:(i+1)*n], rows[i])
	}

	return w
}

func fromWorkspace(w *workspace) [][]float64 {
	out := make([][]float64, w.n)
	for i := range out {
		out[i] = append([]float64(nil), w.a[i*w.n:(i+1)*w.n]...)
	}

	return out
}

// HookReduce runs the reduction stage on a copy of rows.
func HookReduce(rows [][]float64) [][]float64 {
	w := toWorkspace(rows, 0)
	reduce(w)

	return fromWorkspace(w)
}

// HookCover runs one cover pass on rows with no prior stars.
func HookCover(rows [][]float64) (coveredRows, coveredCols []int, done bool) {
	w := toWorkspace(rows, 0)
	st := newCoverState(w.n)
	done = cover(w, st)
	for i := 0; i < w.n; i++ {
		if st.rowCovered(i) {
			coveredRows = append(coveredRows, i)
		}
		if st.colCovered(i) {
			coveredCols = append(coveredCols, i)
		}
	}

	return coveredRows, coveredCols, done
}

// HookAdjust runs one adjustment on rows under the given cover.
func HookAdjust(rows [][]float64, coveredRows, coveredCols []int) ([][]float64, float64, error) {
	w := toWorkspace(rows, 0)
	st := newCoverState(w.n)
	for _, i := range coveredRows {
		st.rows.Set(uint(i))
	}
	for _, j := range coveredCols {
		st.cols.Set(uint(j))
	}
	delta, err := adjust(w, st)

	return fromWorkspace(w), delta, err
}

// HookExtract runs assignment extraction on a fully reduced matrix.
func HookExtract(rows [][]float64) ([]int, error) {
	return extract(toWorkspace(rows, 0))
}
