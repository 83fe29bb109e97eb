// SPDX-License-Identifier: MIT
package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/stridebench/ndarray"
	"github.com/stretchr/testify/require"
)

// TestTransposeView verifies T swaps shape and strides and shares storage.
func TestTransposeView(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at := a.T()

	r, c := at.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)

	rs, cs := at.Strides()
	require.Equal(t, 1, rs)
	require.Equal(t, 3, cs)
	require.False(t, at.IsContiguous())

	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at.ToRows())

	// write through the view, observe in the base
	require.NoError(t, at.Set(2, 1, 60))
	require.Equal(t, 60.0, mustAt(t, a, 1, 2))

	// double transpose restores the original layout
	att := at.T()
	rs, cs = att.Strides()
	require.Equal(t, 3, rs)
	require.Equal(t, 1, cs)
	require.True(t, att.IsContiguous())
	require.Equal(t, a.ToRows(), att.ToRows())
}

// TestTransposeSquareIsStrided mirrors the benchmark fixture: a transposed
// square zero array is logically identical but not contiguous.
func TestTransposeSquareIsStrided(t *testing.T) {
	f := MustZeros(t, 4, 4).T()
	require.False(t, f.IsContiguous())

	r, c := f.Shape()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)
}

// TestRowColViews covers projections onto one row or column.
func TestRowColViews(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := a.Row(1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 5, 6}}, row.ToRows())
	require.True(t, row.IsContiguous())

	col, err := a.Col(2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3}, {6}}, col.ToRows())

	require.NoError(t, col.Set(0, 0, 30))
	require.Equal(t, 30.0, mustAt(t, a, 0, 2))

	_, err = a.Row(2)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = a.Col(-1)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	// column of a transposed view is a row of the base
	tc, err := a.T().Col(0)
	require.NoError(t, err)
	require.True(t, tc.IsContiguous())
	require.Equal(t, [][]float64{{1}, {2}, {3}}, tc.ToRows())
}

// TestWindow covers sub-window views and bounds.
func TestWindow(t *testing.T) {
	a := MustFromRows(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})

	w, err := a.Window(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 7}, {10, 11}}, w.ToRows())
	require.False(t, w.IsContiguous())
	require.Equal(t, 5, w.Offset())

	require.NoError(t, w.Set(1, 1, 110))
	require.Equal(t, 110.0, mustAt(t, a, 2, 2))

	bad := [][4]int{{-1, 0, 1, 1}, {0, 0, 0, 1}, {2, 0, 2, 1}, {0, 3, 1, 2}}
	for _, b := range bad {
		_, err := a.Window(b[0], b[1], b[2], b[3])
		require.ErrorIs(t, err, ndarray.ErrBadShape)
	}
}

// TestCopyMaterializes verifies Copy produces an independent contiguous array.
func TestCopyMaterializes(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	for name, src := range map[string]*ndarray.Array{
		"contiguous": a,
		"transposed": a.T(),
	} {
		t.Run(name, func(t *testing.T) {
			cp := src.Copy()
			require.True(t, cp.IsContiguous())
			require.Equal(t, 0, cp.Offset())
			require.Equal(t, src.ToRows(), cp.ToRows())

			require.NoError(t, cp.Set(0, 0, -1))
			require.NotEqual(t, -1.0, mustAt(t, src, 0, 0))
		})
	}

	w, err := a.Window(1, 0, 2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 4}, {5, 6}}, w.Copy().ToRows())
}
