// SPDX-License-Identifier: MIT

// Package bench: functional configuration for Runner.
// Defaults reproduce the fixed benchmark: 512×512 arrays, 1000 iterations,
// durations on stdout, logs on stderr, wall clock from time.Now.
package bench

import (
	"io"
	"os"
	"time"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRows and DefaultCols give the shape of every array in the suite.
	DefaultRows = 512
	DefaultCols = 512

	// DefaultIterations is the number of updates applied per case.
	DefaultIterations = 1000

	// UpdateAlpha scales b in a = a + b*UpdateAlpha + ones.
	UpdateAlpha = 0.5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilOutput = "bench: WithOutput: writer must be non-nil"
	panicNilLogger = "bench: WithLogger: logger must be non-nil"
	panicNilClock  = "bench: WithClock: clock must be non-nil"
)

// Option configures a Runner. Constructors panic only on nil arguments
// (programmer error).
type Option func(*options)

type options struct {
	rows, cols int
	out        io.Writer
	log        *Logger
	now        func() time.Time
}

// WithShape sets the shape of the ones array (and therefore of every
// operand the Runner accepts). Invalid shapes are reported by NewRunner.
func WithShape(rows, cols int) Option {
	return func(o *options) {
		o.rows, o.cols = rows, cols
	}
}

// WithOutput redirects the duration lines.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic(panicNilOutput)
	}
	return func(o *options) {
		o.out = w
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) {
		o.log = l
	}
}

// WithClock replaces time.Now, mainly for deterministic tests.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic(panicNilClock)
	}
	return func(o *options) {
		o.now = now
	}
}

func gatherOptions(user ...Option) options {
	o := options{
		rows: DefaultRows,
		cols: DefaultCols,
		out:  os.Stdout,
		now:  time.Now,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}
	if o.log == nil {
		o.log = NewLogger(nil)
	}

	return o
}
