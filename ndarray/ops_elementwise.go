// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - In-place elementwise kernels shared by the benchmark and library callers.
//   - One contiguous fast path (flat loop over the buffer) and one strided
//     fallback (i→j walk through per-axis strides) per kernel.
//
// Determinism & Performance:
//   - Fixed loop orders: flat 0..n-1 or logical i→j.
//   - All kernels write into dst. The only allocation is a snapshot of an
//     operand that shares dst's buffer under a different layout (e.g. a.T()),
//     so every read sees the values from before the call.
//   - Shapes are validated before the first write, so a failed call leaves dst untouched.
//   - Products are converted to float64 before the add, which rules out a fused
//     multiply-add; every layout yields bit-identical results.

package ndarray

import "math"

// AddScaled computes, in place:
//
//	dst[i,j] = dst[i,j] + src[i,j]*alpha + addend[i,j]
//
// Implementation:
//   - Stage 1: validate dst, src and addend are non-nil and share one logical shape.
//   - Stage 2: snapshot src/addend when they alias dst with another layout.
//   - Stage 3: contiguous fast path when all three operands are row-major.
//   - Stage 4: strided i→j fallback otherwise.
//
// Errors:
//   - ErrNilArray, ErrShapeMismatch (no partial writes).
//
// Complexity:
//   - Time O(r*c), Space O(1); O(r*c) extra when an operand aliases dst.
func AddScaled(dst, src *Array, alpha float64, addend *Array) error {
	if err := SameShape(dst, src); err != nil {
		return opErrorf("AddScaled", err)
	}
	if err := SameShape(dst, addend); err != nil {
		return opErrorf("AddScaled", err)
	}
	src = detach(dst, src)
	addend = detach(dst, addend)

	if dst.IsContiguous() && src.IsContiguous() && addend.IsContiguous() {
		n := dst.r * dst.c
		d := dst.data[dst.off : dst.off+n]
		s := src.data[src.off : src.off+n]
		e := addend.data[addend.off : addend.off+n]
		for k := range d {
			d[k] = d[k] + float64(s[k]*alpha) + e[k]
		}
		return nil
	}

	var i, j int
	var di, si, ei int
	for i = 0; i < dst.r; i++ {
		di = dst.off + i*dst.rs
		si = src.off + i*src.rs
		ei = addend.off + i*addend.rs
		for j = 0; j < dst.c; j++ {
			dst.data[di] = dst.data[di] + float64(src.data[si]*alpha) + addend.data[ei]
			di += dst.cs
			si += src.cs
			ei += addend.cs
		}
	}

	return nil
}

// UpdateAdd computes dst[i,j] += src[i,j] in place.
// src may be any view over dst's buffer; it is read as of before the call.
// Errors: ErrNilArray, ErrShapeMismatch.
func UpdateAdd(dst, src *Array) error {
	if err := SameShape(dst, src); err != nil {
		return opErrorf("UpdateAdd", err)
	}
	src = detach(dst, src)

	if dst.IsContiguous() && src.IsContiguous() {
		n := dst.r * dst.c
		d := dst.data[dst.off : dst.off+n]
		s := src.data[src.off : src.off+n]
		for k := range d {
			d[k] += s[k]
		}
		return nil
	}

	for i := 0; i < dst.r; i++ {
		di := dst.off + i*dst.rs
		si := src.off + i*src.rs
		for j := 0; j < dst.c; j++ {
			dst.data[di] += src.data[si]
			di += dst.cs
			si += src.cs
		}
	}

	return nil
}

// UpdateScale computes dst[i,j] *= alpha in place.
func UpdateScale(dst *Array, alpha float64) error {
	if err := ValidateNotNil(dst); err != nil {
		return opErrorf("UpdateScale", err)
	}
	dst.each(func(k int) { dst.data[k] *= alpha })

	return nil
}

// Fill sets every logical element to v.
// Like Full and Set, a NaN/Inf value under the finite-only policy is
// rejected with ErrNaNInf and nothing is written.
func (a *Array) Fill(v float64) error {
	if a.validateNaNInf && !isFinite(v) {
		return opErrorf("Array.Fill", ErrNaNInf)
	}
	a.each(func(k int) { a.data[k] = v })

	return nil
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds elementwise.
// Layouts may differ; only logical positions are compared.
// Errors: ErrNilArray, ErrShapeMismatch.
func AllClose(a, b *Array, rtol, atol float64) (bool, error) {
	if err := SameShape(a, b); err != nil {
		return false, opErrorf("AllClose", err)
	}
	for i := 0; i < a.r; i++ {
		ai := a.off + i*a.rs
		bi := b.off + i*b.rs
		for j := 0; j < a.c; j++ {
			x, y := a.data[ai], b.data[bi]
			if math.Abs(x-y) > atol+rtol*math.Abs(y) {
				return false, nil
			}
			ai += a.cs
			bi += b.cs
		}
	}

	return true, nil
}

// each visits every physical offset of the logical elements in i→j order.
func (a *Array) each(f func(k int)) {
	if a.IsContiguous() {
		end := a.off + a.r*a.c
		for k := a.off; k < end; k++ {
			f(k)
		}
		return
	}
	for i := 0; i < a.r; i++ {
		k := a.off + i*a.rs
		for j := 0; j < a.c; j++ {
			f(k)
			k += a.cs
		}
	}
}

// detach returns src unchanged unless it shares dst's buffer with a
// different layout, in which case it returns a contiguous snapshot.
// Identical layouts are safe in place: each cell is read before it is written.
func detach(dst, src *Array) *Array {
	if !sharesBuffer(dst, src) {
		return src
	}
	if &dst.data[0] == &src.data[0] && dst.off == src.off && dst.rs == src.rs && dst.cs == src.cs {
		return src
	}

	return src.Copy()
}

// sharesBuffer reports whether a and b are backed by the same array.
// Slices resliced from one allocation share their last capacity slot.
func sharesBuffer(a, b *Array) bool {
	if len(a.data) == 0 || len(b.data) == 0 {
		return false
	}
	if &a.data[0] == &b.data[0] {
		return true
	}
	ae := a.data[:cap(a.data)]
	be := b.data[:cap(b.data)]

	return &ae[len(ae)-1] == &be[len(be)-1]
}
