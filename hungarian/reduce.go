// SPDX-License-Identifier: MIT

package hungarian

// reduce subtracts every row minimum from its row, then every column minimum
// (of the row-reduced matrix) from its column. Afterwards every row and every
// column holds a zero, and every permutation's cost has dropped by the same
// constant Σ rowMin + Σ colMin.
//
// Complexity: O(n²).
func reduce(w *workspace) {
	var (
		n    = w.n
		i, j int
		low  float64
	)

	// Stage 1: rows.
	for i = 0; i < n; i++ {
		low = w.at(i, 0)
		for j = 1; j < n; j++ {
			if v := w.at(i, j); v < low {
				low = v
			}
		}
		if low == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			w.add(i, j, -low)
		}
	}

	// Stage 2: columns of the row-reduced matrix.
	for j = 0; j < n; j++ {
		low = w.at(0, j)
		for i = 1; i < n; i++ {
			if v := w.at(i, j); v < low {
				low = v
			}
		}
		if low == 0 {
			continue
		}
		for i = 0; i < n; i++ {
			w.add(i, j, -low)
		}
	}
}
