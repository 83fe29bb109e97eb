// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for array constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options affect only the numeric policy carried by each Array.
//   - The policy is inherited by every view and copy of an Array.
package ndarray

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles finite-only validation in Set.
// Kernels write directly into the buffer and are not subject to the policy.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables or disables NaN/±Inf rejection in Set.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) {
		o.validateNaNInf = on
	}
}

// gatherOptions resolves user options on top of documented defaults.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
