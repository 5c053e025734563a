// SPDX-License-Identifier: MIT

// Package emdoptimizer computes the Earth Mover's Distance between two
// equal-size point sets by solving the underlying assignment problem exactly
// with the Hungarian algorithm.
//
// Packages:
//
//	matrix/      — Matrix interface and row-major Dense storage + validators
//	hungarian/   — exact assignment solver (reduce, cover, adjust, extract)
//	distance/    — 1D/2D/3D pairwise cost matrices and coordinate tables
//	emd/         — EMD = minimum matching cost / n
//	report/      — text, JSON and versioned CBOR reports
//	cmd/emd      — command-line entry point over a CSV coordinate table
//
// Quick example:
//
//	res, _ := emd.Between(
//		[]distance.Point{{0}, {3}, {6}},
//		[]distance.Point{{1}, {4}, {9}},
//	)
//	// res.Distance == 5.0/3
package emdoptimizer
