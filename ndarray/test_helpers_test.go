// SPDX-License-Identifier: MIT
// Package ndarray_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures shared by unit tests and benchmarks.

package ndarray_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stridebench/ndarray"
)

// MustZeros ALLOCATES an r×c zero array or fails the test.
func MustZeros(t testing.TB, r, c int) *ndarray.Array {
	t.Helper()
	a, err := ndarray.Zeros(r, c)
	if err != nil {
		t.Fatalf("Zeros(%d,%d): %v", r, c, err)
	}

	return a
}

// MustFull ALLOCATES an r×c array filled with v or fails the test.
func MustFull(t testing.TB, r, c int, v float64) *ndarray.Array {
	t.Helper()
	a, err := ndarray.Full(r, c, v)
	if err != nil {
		t.Fatalf("Full(%d,%d,%g): %v", r, c, v, err)
	}

	return a
}

// MustFromRows builds an array from literal rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return a
}

// fillRand writes values in [-1,1] from a seeded source through Set,
// so it works for every layout.
func fillRand(t testing.TB, a *ndarray.Array, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := a.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := a.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// mustAt reads (i,j) or fails the test.
func mustAt(t testing.TB, a *ndarray.Array, i, j int) float64 {
	t.Helper()
	v, err := a.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}
