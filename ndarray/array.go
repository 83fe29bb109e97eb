// SPDX-License-Identifier: MIT

// Package ndarray - strided storage & safe accessors.
//
// Purpose:
//   - Map logical (i, j) to a physical offset through explicit per-axis strides.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce an optional numeric policy (NaN/Inf rejection) from a single source of truth.
//
// Complexity quicksheet:
//   - Zeros/Ones/Full: O(r*c); At/Set: O(1); views: O(1); Copy: O(r*c).

package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Array is a two-dimensional float64 grid over a flat buffer.
//   - r,c hold the logical dimensions (rows, cols).
//   - rs,cs are the row and column strides in elements.
//   - off is the offset of element (0,0) inside data.
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Array struct {
	r, c           int       // logical rows and columns (> 0)
	rs, cs         int       // per-axis strides (>= 0)
	off            int       // offset of (0,0) in data
	data           []float64 // backing storage, possibly shared with views
	validateNaNInf bool      // numeric guard for Set
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array)(nil)

// Zeros creates an r×c contiguous row-major array filled with 0.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and the default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled buffer (make() zero-fills deterministically).
//   - Stage 3: apply options.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Zeros(rows, cols int, opts ...Option) (*Array, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Zeros(%d,%d): %w", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)

	return &Array{
		r:              rows,
		c:              cols,
		rs:             cols,
		cs:             1,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Ones creates an r×c contiguous array filled with 1.
// Complexity: O(r*c).
func Ones(rows, cols int, opts ...Option) (*Array, error) {
	return Full(rows, cols, 1, opts...)
}

// Full creates an r×c contiguous array with every element set to v.
// A NaN/Inf fill under the finite-only policy returns ErrNaNInf.
// Complexity: O(r*c).
func Full(rows, cols int, v float64, opts ...Option) (*Array, error) {
	a, err := Zeros(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if a.validateNaNInf && !isFinite(v) {
		return nil, fmt.Errorf("Full(%d,%d): %w", rows, cols, ErrNaNInf)
	}
	for k := range a.data {
		a.data[k] = v
	}

	return a, nil
}

// FromRows copies a rectangular [][]float64 into a new contiguous array.
// Implementation:
//   - Stage 1: reject empty input and ragged rows (ErrBadShape).
//   - Stage 2: enforce the numeric policy on every value.
//   - Stage 3: copy row by row.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Array, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	c := len(rows[0])
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrBadShape)
		}
	}
	a, err := Zeros(len(rows), c, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if a.validateNaNInf {
			for j, v := range row {
				if !isFinite(v) {
					return nil, arrayErrorf("FromRows", i, j, ErrNaNInf)
				}
			}
		}
		copy(a.data[i*c:(i+1)*c], row)
	}

	return a, nil
}

// FromBuffer wraps buf as a contiguous row-major rows×cols array without copying.
// Errors: ErrBadShape, ErrBufferTooSmall.
func FromBuffer(rows, cols int, buf []float64, opts ...Option) (*Array, error) {
	return New(buf, rows, cols, cols, 1, 0, opts...)
}

// New is the low-level strided constructor. The array shares buf.
// MAIN DESCRIPTION:
//   - Describe an arbitrary rows×cols layout over buf with explicit strides and offset.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 (ErrBadShape).
//   - Stage 2: validate strides and offset are non-negative (ErrBadStride).
//   - Stage 3: ensure the last reachable element is inside buf (ErrBufferTooSmall).
//
// Notes:
//   - A zero stride is legal and makes logical elements alias one physical cell.
//
// Complexity:
//   - Time O(1), Space O(1).
func New(buf []float64, rows, cols, rowStride, colStride, offset int, opts ...Option) (*Array, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if rowStride < 0 || colStride < 0 || offset < 0 {
		return nil, fmt.Errorf("New: strides (%d,%d) offset %d: %w", rowStride, colStride, offset, ErrBadStride)
	}
	last := offset + (rows-1)*rowStride + (cols-1)*colStride
	if last >= len(buf) {
		return nil, fmt.Errorf("New: need index %d, buffer has %d: %w", last, len(buf), ErrBufferTooSmall)
	}
	o := gatherOptions(opts...)

	return &Array{
		r:              rows,
		c:              cols,
		rs:             rowStride,
		cs:             colStride,
		off:            offset,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the logical row count.
func (a *Array) Rows() int { return a.r }

// Cols returns the logical column count.
func (a *Array) Cols() int { return a.c }

// Shape packs Rows() and Cols() into a single call.
func (a *Array) Shape() (rows, cols int) { return a.r, a.c }

// Strides returns the row and column strides in elements.
func (a *Array) Strides() (rowStride, colStride int) { return a.rs, a.cs }

// Offset returns the position of element (0,0) in the backing buffer.
func (a *Array) Offset() int { return a.off }

// Len returns the number of logical elements (rows*cols).
func (a *Array) Len() int { return a.r * a.c }

// IsContiguous reports whether traversing (i, j) in row-major order walks
// consecutive buffer positions.
func (a *Array) IsContiguous() bool {
	if a.cs != 1 && a.c > 1 {
		return false
	}

	return a.rs == a.c || a.r == 1
}

// indexOf bounds-checks (row, col) and returns the physical offset.
// Returns the bare sentinel; public callers wrap it with coordinates.
func (a *Array) indexOf(row, col int) (int, error) {
	if row < 0 || row >= a.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= a.c {
		return 0, ErrOutOfRange
	}

	return a.off + row*a.rs + col*a.cs, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (a *Array) At(row, col int) (float64, error) {
	k, err := a.indexOf(row, col)
	if err != nil {
		return 0, arrayErrorf(ctxAt, row, col, err)
	}

	return a.data[k], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write with the optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: reject NaN/±Inf when the policy is enabled.
//   - Stage 3: write into the backing buffer (visible through every view).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *Array) Set(row, col int, v float64) error {
	k, err := a.indexOf(row, col)
	if err != nil {
		return arrayErrorf(ctxSet, row, col, err)
	}
	if a.validateNaNInf && !isFinite(v) {
		return arrayErrorf(ctxSet, row, col, ErrNaNInf)
	}
	a.data[k] = v

	return nil
}

// String renders the logical rows as "[v, v]\n" lines for diagnostics.
// Not intended for hot paths.
func (a *Array) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < a.r; i++ {
		sb.WriteString(_fmtRowOpen)
		base := a.off + i*a.rs
		for j = 0; j < a.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", a.data[base+j*a.cs])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
