// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Cuauhtlidp/emd-optimizer/distance"
	"github.com/Cuauhtlidp/emd-optimizer/emd"
	"github.com/Cuauhtlidp/emd-optimizer/hungarian"
	"github.com/Cuauhtlidp/emd-optimizer/report"
	"github.com/rs/zerolog"
)

// Streams bundles the process I/O so Execute never touches globals.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewLogger builds the run logger on w: console output by default, JSON
// lines when asJSON is set.
func NewLogger(w io.Writer, level zerolog.Level, asJSON bool) zerolog.Logger {
	if !asJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Execute loads the coordinate table, computes the EMD and writes the
// report. It returns the process exit code and the error behind it, if any.
func Execute(ctx context.Context, inv Invocation, s Streams) (int, error) {
	log := NewLogger(s.Stderr, inv.LogLevel, inv.LogJSON)

	rows, err := loadTable(inv, s.Stdin)
	if err != nil {
		log.Error().Err(err).Str("input", inv.InputPath).Msg("cannot load input")
		return ExitInputError, err
	}
	log.Info().Str("input", inv.InputPath).Int("rows", len(rows)).Int("columns", len(rows[0])).
		Msg("input loaded")

	if err = ctx.Err(); err != nil {
		return ExitInternalError, err
	}

	opts := []hungarian.Option{
		hungarian.WithLogger(log),
		hungarian.WithEpsilon(inv.Epsilon),
	}
	if inv.MaxIterations > 0 {
		opts = append(opts, hungarian.WithMaxIterations(inv.MaxIterations))
	}

	start := time.Now()
	res, err := emd.FromTable(rows, opts...)
	if err != nil {
		log.Error().Err(err).Msg("emd computation failed")
		return exitCodeFor(err), err
	}
	log.Info().Float64("emd", res.Distance).Float64("cost", res.Cost).Int("points", res.N).
		Int("iterations", res.Iterations).Dur("elapsed", time.Since(start)).Msg("emd computed")

	if err = report.Write(s.Stdout, report.New(res), inv.Format); err != nil {
		log.Error().Err(err).Msg("cannot write report")
		return ExitInternalError, err
	}

	return ExitSuccess, nil
}

func loadTable(inv Invocation, stdin io.Reader) ([][]float64, error) {
	if inv.InputPath == "-" {
		if stdin == nil {
			return nil, fmt.Errorf("cli: stdin requested but not provided")
		}
		return ReadTable(stdin, inv.Header)
	}
	f, err := os.Open(inv.InputPath)
	if err != nil {
		return nil, fmt.Errorf("cli: %w", err)
	}
	defer f.Close()

	return ReadTable(f, inv.Header)
}

// exitCodeFor separates bad input data from solver invariant failures.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, hungarian.ErrNoFeasibleAssignment), errors.Is(err, hungarian.ErrIterationLimit):
		return ExitInternalError
	case errors.Is(err, distance.ErrEmpty),
		errors.Is(err, distance.ErrSizeMismatch),
		errors.Is(err, distance.ErrDimensionMismatch),
		errors.Is(err, distance.ErrUnsupportedDimension),
		errors.Is(err, distance.ErrInvalidCoordinate),
		errors.Is(err, hungarian.ErrInvalidShape),
		errors.Is(err, hungarian.ErrInvalidValue):
		return ExitInputError
	default:
		return ExitComputeFailure
	}
}
