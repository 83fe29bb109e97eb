// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/stridebench/ndarray"
)

// Case names, in driver order.
const (
	CaseContiguousContiguous = "contiguous/contiguous"
	CaseTransposedTransposed = "transposed/transposed"
	CaseContiguousTransposed = "contiguous/transposed"
	CaseTransposedContiguous = "transposed/contiguous"
)

// Case is one (a, b) pair of the suite. A is mutated by every run.
type Case struct {
	Name string
	A, B *ndarray.Array
}

// Result records one timed case.
type Result struct {
	Name       string
	Iterations int
	Elapsed    time.Duration
}

// Suite allocates the four operands and returns the fixed case order:
//
//	c0,c1 contiguous; f0,f1 transposed views over fresh zero arrays
//	(c0,c1) (f0,f1) (c0,f1) (f0,c1)
//
// c0 and f0 are shared between cases, so later cases start from the
// values left by earlier ones.
func Suite(rows, cols int) ([]Case, error) {
	f0, err := transposedZeros(rows, cols)
	if err != nil {
		return nil, err
	}
	f1, err := transposedZeros(rows, cols)
	if err != nil {
		return nil, err
	}
	c0, err := ndarray.Zeros(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("bench: suite: %w", err)
	}
	c1, err := ndarray.Zeros(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("bench: suite: %w", err)
	}

	return []Case{
		{Name: CaseContiguousContiguous, A: c0, B: c1},
		{Name: CaseTransposedTransposed, A: f0, B: f1},
		{Name: CaseContiguousTransposed, A: c0, B: f1},
		{Name: CaseTransposedContiguous, A: f0, B: c1},
	}, nil
}

// transposedZeros returns a rows×cols transposed view over a fresh cols×rows zero array.
func transposedZeros(rows, cols int) (*ndarray.Array, error) {
	base, err := ndarray.Zeros(cols, rows)
	if err != nil {
		return nil, fmt.Errorf("bench: suite: %w", err)
	}

	return base.T(), nil
}

// RunSuite runs every case in order, strictly one after another, printing
// one duration line per case. The first error stops the suite.
func (r *Runner) RunSuite(cases []Case, iterations int) ([]Result, error) {
	iterations = max(iterations, 0)
	rows, cols := r.Shape()
	r.log.Info("suite start",
		slog.Any("platform", DetectPlatform()),
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Int("iterations", iterations),
		slog.Int("cases", len(cases)),
	)

	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		log := r.log.WithCase(c.Name)
		elapsed, err := r.Run(c.A, c.B, iterations)
		if err != nil {
			log.Error("case failed", slog.Any("err", err))
			return results, fmt.Errorf("bench: case %s: %w", c.Name, err)
		}
		log.Debug("case done",
			slog.Duration("elapsed", elapsed),
			slog.Bool("a_contiguous", c.A.IsContiguous()),
			slog.Bool("b_contiguous", c.B.IsContiguous()),
		)
		results = append(results, Result{Name: c.Name, Iterations: iterations, Elapsed: elapsed})
	}

	return results, nil
}
