// SPDX-License-Identifier: MIT

package bench_test

import (
	"bufio"
	"bytes"
	"errors"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/katalvlaran/stridebench/bench"
	"github.com/katalvlaran/stridebench/ndarray"
	"github.com/stretchr/testify/require"
)

// stepClock returns a clock that advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		t := t0.Add(time.Duration(n) * step)
		n++
		return t
	}
}

// newTestRunner builds a quiet r×c Runner writing durations into out.
func newTestRunner(t *testing.T, r, c int, out *bytes.Buffer, opts ...bench.Option) *bench.Runner {
	t.Helper()
	all := append([]bench.Option{
		bench.WithShape(r, c),
		bench.WithOutput(out),
		bench.WithLogger(bench.NoopLogger()),
	}, opts...)
	runner, err := bench.NewRunner(all...)
	require.NoError(t, err)

	return runner
}

func mustZeros(t *testing.T, r, c int) *ndarray.Array {
	t.Helper()
	a, err := ndarray.Zeros(r, c)
	require.NoError(t, err)

	return a
}

func mustFull(t *testing.T, r, c int, v float64) *ndarray.Array {
	t.Helper()
	a, err := ndarray.Full(r, c, v)
	require.NoError(t, err)

	return a
}

// randomArray fills an r×c array (optionally a transposed view) from seed.
func randomArray(t *testing.T, r, c int, transposed bool, seed int64) *ndarray.Array {
	t.Helper()
	var a *ndarray.Array
	if transposed {
		a = mustZeros(t, c, r).T()
	} else {
		a = mustZeros(t, r, c)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, a.Set(i, j, rng.Float64()*10-5))
		}
	}

	return a
}

// parseLines parses every stdout line as a float64 duration in seconds.
func parseLines(t *testing.T, out *bytes.Buffer) []float64 {
	t.Helper()
	var vals []float64
	sc := bufio.NewScanner(bytes.NewReader(out.Bytes()))
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		require.NoError(t, err, "line %q", sc.Text())
		vals = append(vals, v)
	}
	require.NoError(t, sc.Err())

	return vals
}

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }
