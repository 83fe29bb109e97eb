// SPDX-License-Identifier: MIT

package ndarray

// Test bridge: exposes the resolved options to ndarray_test without
// widening the production API.

// OptionsSnapshot is a read-only copy of the internal Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts like the constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf}
}
