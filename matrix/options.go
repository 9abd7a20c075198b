// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for reductions, appends and series
// transforms. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - An unknown axis is a caller contract violation, not a runtime condition;
//     WithAxis therefore panics instead of threading an error through every reduction.
package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAxis reduces down columns and appends rows.
	DefaultAxis = AxisCol

	// DefaultLeadingNaN controls the first element of PctChange.
	// false ⇒ 0 (no prior observation means no change).
	DefaultLeadingNaN = false

	// DefaultCompounding is geometric: Π(1+r) − 1.
	DefaultCompounding = CompoundGeometric
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicAxisInvalid        = "matrix: WithAxis: axis must be AxisCol (0) or AxisRow (1), got %d"
	panicCompoundingInvalid = "matrix: WithCompounding: unknown compounding mode %d"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points accept
// `...Option` and resolve them via gatherOptions.
type Options struct {
	axis        Axis        // DefaultAxis
	leadingNaN  bool        // DefaultLeadingNaN
	compounding Compounding // DefaultCompounding
}

// WithAxis selects the axis for Matrix reductions (Sum/Mean/StdevP/StdevS) and Append.
// Implementation:
//   - Stage 1: validate a ∈ {AxisCol, AxisRow}.
//   - Stage 2: return a setter that writes the axis into Options.
//
// Errors:
//   - Panics with a stable message when a is unknown (there is no third axis).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithAxis(a Axis) Option {
	if !a.valid() {
		panic(fmt.Sprintf(panicAxisInvalid, int(a)))
	}

	return func(o *Options) { o.axis = a }
}

// WithLeadingNaN makes PctChange emit NaN (instead of 0) at index 0,
// signalling "no prior observation" explicitly.
func WithLeadingNaN() Option {
	return func(o *Options) { o.leadingNaN = true }
}

// WithCompounding selects the CumReturn accumulation mode.
// Panics on an unknown mode (programmer error).
func WithCompounding(c Compounding) Option {
	if !c.valid() {
		panic(fmt.Sprintf(panicCompoundingInvalid, int(c)))
	}

	return func(o *Options) { o.compounding = c }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from the Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		axis:        DefaultAxis,
		leadingNaN:  DefaultLeadingNaN,
		compounding: DefaultCompounding,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
