// SPDX-License-Identifier: MIT

// Package emd computes the Earth Mover's Distance between two point sets of
// equal size with unit mass per point.
//
// With unit supplies and demands the transport problem collapses to the
// assignment problem: the EMD is the minimum total distance of a one-to-one
// matching, divided by the number of points.
//
//	res, err := emd.Between(
//		[]distance.Point{{0}, {3}, {6}},
//		[]distance.Point{{1}, {4}, {9}},
//	)
//	// res.Cost == 5, res.Distance == 5.0/3
package emd
