// SPDX-License-Identifier: MIT

// Package ndarray provides a strided two-dimensional float64 array.
//
// An Array owns (or shares) a flat buffer and maps logical coordinates to
// physical offsets through per-axis strides:
//
//	offset(i, j) = off + i*rowStride + j*colStride
//
// A freshly allocated array is row-major (rowStride == cols, colStride == 1).
// Views such as T, Row, Col and Window only rewrite shape, strides and offset,
// so they never copy data and writes through a view land in the base buffer.
//
// The elementwise kernels (AddScaled, UpdateAdd, UpdateScale) run a flat loop
// when every operand is contiguous and fall back to a strided i→j walk
// otherwise. The same logical result is produced for every layout; only the
// memory access pattern differs.
//
// Quick example:
//
//	a, _ := ndarray.Zeros(2, 3)
//	at := a.T()               // 3×2 view, same buffer
//	_ = at.Set(2, 1, 7)       // a.At(1, 2) == 7
//
// All public methods return sentinel errors (see errors.go) instead of
// panicking on user-triggered conditions.
package ndarray
