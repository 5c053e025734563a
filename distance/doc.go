// SPDX-License-Identifier: MIT

// Package distance builds square cost matrices of pairwise distances between
// two equal-size point sets, the input of the Hungarian solver.
//
// Supported layouts:
//   - 1D: absolute difference |a − b|
//   - 2D and 3D: Euclidean distance
//   - any dimension with a caller-provided Metric (WithMetric)
//
// SplitTable turns a coordinate table with 2, 4 or 6 columns into source and
// target point sets: the first half of the columns are the source
// coordinates, the second half the target coordinates.
//
//	src, dst, err := distance.SplitTable(rows)
//	cost, err := distance.CostMatrix(src, dst)
package distance
