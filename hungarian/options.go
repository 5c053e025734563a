// SPDX-License-Identifier: MIT

// Package hungarian: functional configuration for the solver.
//
// Constructors panic only on nonsensical values (programmer error); user
// data problems are always reported as errors from Solve.
package hungarian

import (
	"math"

	"github.com/rs/zerolog"
)

// DefaultEpsilon is the zero tolerance: entries ≤ eps count as zeros.
const DefaultEpsilon = 0.0

const (
	panicEpsilonInvalid       = "hungarian: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterationsInvalid = "hungarian: WithMaxIterations: limit must be > 0"
)

// Option mutates solver options.
type Option func(*options)

type options struct {
	eps           float64
	maxIterations int // 0 ⇒ derived from n, see iterationCap
	logger        zerolog.Logger
}

func defaultOptions() options {
	return options{
		eps:    DefaultEpsilon,
		logger: zerolog.Nop(),
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon sets the tolerance under which a reduced entry counts as zero.
// Useful when costs come from floating-point distance computations and
// near-ties should be treated as ties. Panics when eps is negative or not finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithMaxIterations caps the number of cover passes. The default cap is
// (n+1)², which the cover/adjust loop never reaches on valid input.
// Panics when limit ≤ 0.
func WithMaxIterations(limit int) Option {
	if limit <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *options) { o.maxIterations = limit }
}

// WithLogger routes stage-level debug events to l. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// iterationCap resolves the effective loop cap for an n×n instance.
func (o options) iterationCap(n int) int {
	if o.maxIterations > 0 {
		return o.maxIterations
	}

	return (n + 1) * (n + 1)
}
