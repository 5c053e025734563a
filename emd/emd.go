// SPDX-License-Identifier: MIT

package emd

import (
	"github.com/Cuauhtlidp/emd-optimizer/distance"
	"github.com/Cuauhtlidp/emd-optimizer/hungarian"
	"github.com/Cuauhtlidp/emd-optimizer/matrix"
)

// Result is the outcome of an EMD computation.
type Result struct {
	// Distance is Cost / N.
	Distance float64

	// Cost is the minimum total matching distance.
	Cost float64

	// Assignment maps source point i to target point Assignment[i].
	Assignment []int

	// N is the number of points per set.
	N int

	// Dimension is the coordinate dimension, 0 when built from a cost matrix.
	Dimension int

	// Iterations is the number of solver cover passes.
	Iterations int
}

// FromCostMatrix solves the assignment on a precomputed n×n cost matrix and
// divides the minimum sum by n.
//
// Errors: those of hungarian.Solve.
func FromCostMatrix(cost matrix.Matrix, opts ...hungarian.Option) (Result, error) {
	res, err := hungarian.Solve(cost, opts...)
	if err != nil {
		return Result{}, err
	}
	n := len(res.Assignment)

	return Result{
		Distance:   res.Cost / float64(n),
		Cost:       res.Cost,
		Assignment: res.Assignment,
		N:          n,
		Iterations: res.Iterations,
	}, nil
}

// Between builds the pairwise cost matrix of src and dst with the default
// metric for their dimension and returns the EMD.
//
// Errors: those of distance.CostMatrix and hungarian.Solve.
func Between(src, dst []distance.Point, opts ...hungarian.Option) (Result, error) {
	cost, err := distance.CostMatrix(src, dst)
	if err != nil {
		return Result{}, err
	}
	res, err := FromCostMatrix(cost, opts...)
	if err != nil {
		return Result{}, err
	}
	res.Dimension = src[0].Dim()

	return res, nil
}

// FromTable splits a 2/4/6-column coordinate table into source and target
// points (see distance.SplitTable) and returns their EMD.
func FromTable(rows [][]float64, opts ...hungarian.Option) (Result, error) {
	src, dst, err := distance.SplitTable(rows)
	if err != nil {
		return Result{}, err
	}

	return Between(src, dst, opts...)
}
