// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//  - Single source of truth for nil/shape checks used by the kernels.
//  - Return wrapped sentinels so call sites can match with errors.Is.

package ndarray

import "fmt"

// ValidateNotNil ensures the array reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(a *Array) error {
	if a == nil {
		return opErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// SameShape ensures a and b are non-nil and have equal logical dimensions.
// Layout (strides, offset) is irrelevant: a contiguous array and a
// transposed view of matching logical shape are compatible.
//
// Errors: ErrNilArray, ErrShapeMismatch.
// Complexity: O(1).
func SameShape(a, b *Array) error {
	if a == nil || b == nil {
		return opErrorf("SameShape", ErrNilArray)
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("SameShape: %dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrShapeMismatch)
	}

	return nil
}
