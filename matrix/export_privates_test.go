// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose the resolved Options to matrix_test ONLY (this file is a _test.go
//     file in package matrix, so it never reaches production builds).

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Axis        Axis
	LeadingNaN  bool
	Compounding Compounding
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the kernels do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Axis:        o.axis,
		LeadingNaN:  o.leadingNaN,
		Compounding: o.compounding,
	}
}
