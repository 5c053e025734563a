// SPDX-License-Identifier: MIT

// Package hungarian - solver driver.
//
// State machine:
//
//	REDUCE ─▶ COVER ──(lines == n)──▶ EXTRACT (terminal)
//	            ▲  │
//	            │  └─(lines < n)──▶ ADJUST
//	            └────────────────────┘
//
// REDUCE runs once. Stars persist across COVER passes because ADJUST never
// destroys a starred zero; each ADJUST either lets the next COVER grow the
// star set or extends the labelled region by at least one column, so the
// loop makes at most n² adjustments. The (n+1)² default cap only trips on a
// logic defect.
package hungarian

import (
	"fmt"

	"github.com/Cuauhtlidp/emd-optimizer/matrix"
)

// Solve finds a minimum-cost perfect assignment for the square cost matrix.
//
// The caller's matrix is read once and never modified. The returned Cost is
// summed over the original entries along Result.Assignment.
//
// Errors:
//   - ErrInvalidShape: nil, empty or non-square matrix.
//   - ErrInvalidValue: negative, NaN or ±Inf entry.
//   - ErrNoFeasibleAssignment, ErrIterationLimit: internal invariant
//     violations; never returned for valid input.
//
// Complexity: O(n⁴) time worst case, O(n²) memory.
func Solve(cost matrix.Matrix, opts ...Option) (Result, error) {
	o := gatherOptions(opts)

	w, original, err := load(cost, o.eps)
	if err != nil {
		return Result{}, err
	}
	var (
		n     = w.n
		limit = o.iterationCap(n)
		log   = o.logger.With().Str("component", "hungarian").Int("n", n).Logger()
		st    = newCoverState(n)
		iter  int
		delta float64
	)

	// REDUCE
	reduce(w)
	log.Debug().Str("stage", "reduce").Msg("rows and columns reduced")

	// COVER ⇄ ADJUST
	for {
		if iter >= limit {
			log.Error().Int("iterations", iter).Int("limit", limit).Msg("iteration limit reached")
			return Result{}, fmt.Errorf("after %d cover passes: %w", iter, ErrIterationLimit)
		}
		iter++
		if cover(w, st) {
			log.Debug().Str("stage", "cover").Int("iteration", iter).Int("lines", st.lines()).
				Msg("zeros need n lines")
			break
		}
		log.Debug().Str("stage", "cover").Int("iteration", iter).Int("lines", st.lines()).
			Int("stars", st.stars()).Msg("cover too small")

		if delta, err = adjust(w, st); err != nil {
			return Result{}, err
		}
		log.Debug().Str("stage", "adjust").Int("iteration", iter).Float64("delta", delta).
			Msg("matrix adjusted")
	}

	// EXTRACT
	assignment, err := extract(w)
	if err != nil {
		return Result{}, err
	}
	if err = ValidateAssignment(assignment, n); err != nil {
		return Result{}, fmt.Errorf("extract: %v: %w", err, ErrNoFeasibleAssignment)
	}
	res := Result{
		Assignment: assignment,
		Cost:       sumOriginal(original, n, assignment),
		Iterations: iter,
	}
	log.Debug().Str("stage", "extract").Float64("cost", res.Cost).Int("iterations", iter).
		Msg("assignment extracted")

	return res, nil
}

// SolveSlices is Solve for a row-slice matrix.
// Ragged or empty input is reported as ErrInvalidShape.
func SolveSlices(cost [][]float64, opts ...Option) (Result, error) {
	m, err := matrix.NewDenseFromRows(cost)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}

	return Solve(m, opts...)
}

// MinCost returns only the minimum total assignment cost.
func MinCost(cost matrix.Matrix, opts ...Option) (float64, error) {
	res, err := Solve(cost, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}
