// SPDX-License-Identifier: MIT

// Package ndarray - no-copy views and materialization.
//
// Purpose:
//   - Provide views (T, Row, Col, Window) that only rewrite shape, strides and offset.
//   - Provide Copy/ToRows to materialize a view with an independent lifetime.
//
// Notes:
//   - Views share the base buffer and numeric policy; mutations are visible both ways.
//   - Copy always yields a contiguous row-major array, whatever the source layout.

package ndarray

import "fmt"

// T returns the transposed view: logical axes swapped, buffer shared.
// A row-major base becomes column-major under T, so walking the last
// logical axis skips rowStride elements per step.
// Complexity: O(1).
func (a *Array) T() *Array {
	return &Array{
		r:              a.c,
		c:              a.r,
		rs:             a.cs,
		cs:             a.rs,
		off:            a.off,
		data:           a.data,
		validateNaNInf: a.validateNaNInf,
	}
}

// Row returns a 1×cols view of row i.
func (a *Array) Row(i int) (*Array, error) {
	if i < 0 || i >= a.r {
		return nil, arrayErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return &Array{
		r:              1,
		c:              a.c,
		rs:             a.rs,
		cs:             a.cs,
		off:            a.off + i*a.rs,
		data:           a.data,
		validateNaNInf: a.validateNaNInf,
	}, nil
}

// Col returns a rows×1 view of column j.
func (a *Array) Col(j int) (*Array, error) {
	if j < 0 || j >= a.c {
		return nil, arrayErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return &Array{
		r:              a.r,
		c:              1,
		rs:             a.rs,
		cs:             a.cs,
		off:            a.off + j*a.cs,
		data:           a.data,
		validateNaNInf: a.validateNaNInf,
	}, nil
}

// Window creates a no-copy view [r0:r0+h, c0:c0+w) over the same storage.
// MAIN DESCRIPTION:
//   - Rectangular sub-view keeping the base strides.
//
// Implementation:
//   - Stage 1: validate the window fits inside the array (ErrBadShape).
//   - Stage 2: shift the offset to (r0, c0) and shrink the shape.
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *Array) Window(r0, c0, h, w int) (*Array, error) {
	if r0 < 0 || c0 < 0 || h <= 0 || w <= 0 || r0+h > a.r || c0+w > a.c {
		return nil, fmt.Errorf("Array.%s(%d,%d,%d,%d): %w", ctxWindow, r0, c0, h, w, ErrBadShape)
	}

	return &Array{
		r:              h,
		c:              w,
		rs:             a.rs,
		cs:             a.cs,
		off:            a.off + r0*a.rs + c0*a.cs,
		data:           a.data,
		validateNaNInf: a.validateNaNInf,
	}, nil
}

// Copy returns a contiguous row-major deep copy of the logical elements.
// Complexity: O(r*c) time and memory.
func (a *Array) Copy() *Array {
	buf := make([]float64, a.r*a.c)
	if a.IsContiguous() {
		copy(buf, a.data[a.off:a.off+len(buf)])
	} else {
		k := 0
		for i := 0; i < a.r; i++ {
			src := a.off + i*a.rs
			for j := 0; j < a.c; j++ {
				buf[k] = a.data[src]
				src += a.cs
				k++
			}
		}
	}

	return &Array{
		r:              a.r,
		c:              a.c,
		rs:             a.c,
		cs:             1,
		data:           buf,
		validateNaNInf: a.validateNaNInf,
	}
}

// ToRows exports the logical elements as a fresh [][]float64.
func (a *Array) ToRows() [][]float64 {
	out := make([][]float64, a.r)
	for i := range out {
		row := make([]float64, a.c)
		src := a.off + i*a.rs
		for j := range row {
			row[j] = a.data[src]
			src += a.cs
		}
		out[i] = row
	}

	return out
}
