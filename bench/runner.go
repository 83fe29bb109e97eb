// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/stridebench/ndarray"
)

// Runner applies the timed update to array pairs and reports durations.
// The ones array is allocated once and never mutated afterwards.
type Runner struct {
	ones *ndarray.Array
	out  io.Writer
	log  *Logger
	now  func() time.Time
}

// NewRunner allocates the ones array and resolves options.
// Errors: ndarray.ErrBadShape for a non-positive WithShape.
func NewRunner(opts ...Option) (*Runner, error) {
	o := gatherOptions(opts...)

	ones, err := ndarray.Ones(o.rows, o.cols)
	if err != nil {
		return nil, fmt.Errorf("bench: allocate ones: %w", err)
	}

	return &Runner{
		ones: ones,
		out:  o.out,
		log:  o.log,
		now:  o.now,
	}, nil
}

// Shape returns the shape every operand must have.
func (r *Runner) Shape() (rows, cols int) { return r.ones.Shape() }

// ApplyUpdate computes a = a + b*0.5 + ones elementwise, in place.
// b and ones are only read. On shape mismatch a is left untouched and the
// returned error matches ndarray.ErrShapeMismatch.
func (r *Runner) ApplyUpdate(a, b *ndarray.Array) error {
	if err := ndarray.AddScaled(a, b, UpdateAlpha, r.ones); err != nil {
		return fmt.Errorf("bench: apply update: %w", err)
	}

	return nil
}

// Run applies the update iterations times in sequence, each call working on
// the result of the previous one, and prints the elapsed seconds as one line.
// MAIN DESCRIPTION:
//   - Stage 1: clamp negative iterations to zero.
//   - Stage 2: sample the clock, loop ApplyUpdate, sample the clock.
//   - Stage 3: print elapsed seconds (never negative) and return the duration.
//
// Errors:
//   - the first ApplyUpdate failure aborts the loop; nothing is printed.
//   - a failing output writer.
func (r *Runner) Run(a, b *ndarray.Array, iterations int) (time.Duration, error) {
	if iterations < 0 {
		iterations = 0
	}

	start := r.now()
	for k := 0; k < iterations; k++ {
		if err := r.ApplyUpdate(a, b); err != nil {
			return 0, fmt.Errorf("bench: iteration %d: %w", k, err)
		}
	}
	elapsed := r.now().Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	if _, err := fmt.Fprintln(r.out, elapsed.Seconds()); err != nil {
		return elapsed, fmt.Errorf("bench: write duration: %w", err)
	}

	return elapsed, nil
}
