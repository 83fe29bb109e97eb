// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every algorithm returns these sentinels (optionally wrapped with context via
// fmt.Errorf("...: %w", ErrX)); callers match them with errors.Is.

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0,
	// ragged input rows, or a window that does not fit).
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrShapeMismatch indicates that operands of an elementwise kernel differ in shape.
	// Kernels never broadcast and never partially apply.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrNilArray indicates that a nil *Array was passed where a value is required.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrBadStride indicates a negative stride or offset in a low-level constructor.
	ErrBadStride = errors.New("ndarray: invalid stride or offset")

	// ErrBufferTooSmall indicates that the backing buffer cannot hold every
	// element reachable through the requested shape, strides and offset.
	ErrBufferTooSmall = errors.New("ndarray: buffer not large enough")

	// ErrNaNInf signals a NaN or ±Inf value passed to Set while the
	// finite-only policy is enabled.
	ErrNaNInf = errors.New("ndarray: NaN or Inf encountered")
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxWindow = "Window"
)

// arrayErrorf wraps err with the method name and the offending coordinates.
func arrayErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Array.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps err with a kernel or constructor tag.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
