// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the reduction engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultPivotTolerance is the magnitude at or below which a pivot candidate
// counts as zero. Zero means exact comparison with the field's zero.
const DefaultPivotTolerance = 0.0

// ---------- Internal panic messages (no magic strings) ----------

const panicPivotToleranceInvalid = "matrix: WithPivotTolerance: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options is the resolved configuration consumed by RowEchelon, Rank,
// Determinant and Inverse. Fields are unexported; build it with NewOptions.
type Options struct {
	pivotTol float64 // |candidate| <= pivotTol ⇒ no pivot in this column
}

// PivotTolerance returns the effective pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// WithPivotTolerance treats any pivot candidate with |x| <= eps as zero.
// Useful for floating-point inputs whose exact singularity is hidden by
// rounding (e.g. a rank-deficient matrix reducing to 1e-17 instead of 0).
//
// Panics if eps is negative, NaN or ±Inf.
func WithPivotTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = eps }
}

// NewOptions resolves opts over the defaults. Exposed for callers that need
// to inspect an effective configuration (e.g. the job runner).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{pivotTol: DefaultPivotTolerance}
}

// gatherOptions applies user setters on top of defaults, in order.
// Nil setters are ignored.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
