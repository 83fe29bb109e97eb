// SPDX-License-Identifier: MIT

// Package bench times the in-place update
//
//	a = a + b*0.5 + ones
//
// over pairs of 2D arrays in contiguous and transposed layouts.
//
// A Runner owns the read-only ones array and is built once. Run applies the
// update a fixed number of times, samples the clock around the loop and
// prints the elapsed seconds as a single line. Suite builds the four fixed
// layout pairs and RunSuite executes them one after another.
//
// Stdout receives only the duration lines; diagnostics go to the Logger
// (stderr by default).
package bench
