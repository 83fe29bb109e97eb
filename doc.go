// Package stridebench measures elementwise float64 throughput on 2D arrays
// whose memory layout differs: row-major ("contiguous") versus transposed
// views over row-major storage ("strided"), and mixed pairs of the two.
//
// Under the hood, everything is organized under two subpackages:
//
//	ndarray/ — strided 2D array: shape, per-axis strides, offset, views, kernels
//	bench/   — Runner, fixed four-case suite, logging, host platform info
//
// The command lives in cmd/stridebench and prints one elapsed-seconds line
// per case:
//
//	go run ./cmd/stridebench
//
// Quick ASCII example of a transposed view over a 2×3 buffer:
//
//	buffer:  1 2 3 4 5 6          strides (3,1)  →  [1 2 3]
//	                                                 [4 5 6]
//	T():     same buffer          strides (1,3)  →  [1 4]
//	                                                 [2 5]
//	                                                 [3 6]
package stridebench
