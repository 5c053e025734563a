// SPDX-License-Identifier: MIT

// Package hungarian solves the square assignment problem exactly with the
// Hungarian (Kuhn–Munkres) method on a non-negative cost matrix.
//
// 🚀 What is the assignment problem?
//
//	Given an n×n cost matrix C, pick one column per row, all columns
//	distinct, so that Σ C[i][σ(i)] is minimal. It is the balanced
//	transportation problem with unit supplies and demands, which is why it
//	drives the Earth Mover's Distance between equal-size point sets.
//
// ✨ Algorithm stages:
//   - Reduce:  subtract row minima, then column minima (cost shifts by a constant).
//   - Cover:   star a maximum set of independent zeros, label from exposed rows
//     and read off a minimum line cover (König's theorem).
//   - Adjust:  δ = min uncovered entry; uncovered rows −δ, covered columns +δ.
//   - Extract: once n lines are needed, take a perfect matching on the zero
//     graph with augmenting paths (Kuhn), never by enumerating candidates.
//
// ⚙️ Usage:
//
//	res, err := hungarian.SolveSlices([][]float64{
//		{4, 1, 3},
//		{2, 0, 5},
//		{3, 2, 2},
//	})
//	// res.Cost == 5, res.Assignment == [1 0 2]
//
// The solver works on a private copy; the caller's matrix is never mutated and
// the returned cost is summed over the original entries.
//
// Performance:
//
//   - Time:   O(n⁴) worst case for this cover/adjust formulation.
//   - Memory: O(n²) for the working copy.
package hungarian
