// SPDX-License-Identifier: MIT
// Package vector - element-wise arithmetic.
//
// Purpose:
//   - In-place kernels (Add, Sub, Scl, InvScl) are the primary contract.
//   - Value-returning methods (Plus, Minus, Times, DividedBy, Neg) clone the
//     receiver and delegate to the in-place kernel; they hold no logic of their own.
//
// Determinism:
//   - Fixed 0..N-1 loop order; no allocation in the in-place kernels.

package vector

import "github.com/katalvlaran/linalg/field"

// combine applies out[i] = op(out[i], o[i]) after the shared validation.
func (v *Vector[K]) combine(o *Vector[K], tag string, op func(a, b K) K) error {
	if err := validateSameDim(v, o); err != nil {
		return vectorErrorf(tag, err)
	}
	for i := range v.data {
		v.data[i] = op(v.data[i], o.data[i])
	}

	return nil
}

// Add sets v = v + o element-wise.
//
// Errors: ErrNilVector, ErrDimensionMismatch. v is untouched on error.
func (v *Vector[K]) Add(o *Vector[K]) error {
	return v.combine(o, opAdd, func(a, b K) K { return a + b })
}

// Sub sets v = v - o element-wise.
//
// Errors: ErrNilVector, ErrDimensionMismatch. v is untouched on error.
func (v *Vector[K]) Sub(o *Vector[K]) error {
	return v.combine(o, opSub, func(a, b K) K { return a - b })
}

// Scl multiplies every element by a.
func (v *Vector[K]) Scl(a K) {
	for i := range v.data {
		v.data[i] *= a
	}
}

// InvScl divides every element by a.
//
// Errors: ErrDivisionByZero when a is the additive identity; v is untouched.
func (v *Vector[K]) InvScl(a K) error {
	if field.IsZero(a) {
		return vectorErrorf(opInvScl, ErrDivisionByZero)
	}
	for i := range v.data {
		v.data[i] /= a
	}

	return nil
}

// Plus returns v + o as a new vector.
func (v *Vector[K]) Plus(o *Vector[K]) (*Vector[K], error) {
	out := v.Clone()
	if err := out.Add(o); err != nil {
		return nil, err
	}

	return out, nil
}

// Minus returns v - o as a new vector.
func (v *Vector[K]) Minus(o *Vector[K]) (*Vector[K], error) {
	out := v.Clone()
	if err := out.Sub(o); err != nil {
		return nil, err
	}

	return out, nil
}

// Times returns v * a as a new vector.
func (v *Vector[K]) Times(a K) *Vector[K] {
	out := v.Clone()
	out.Scl(a)

	return out
}

// DividedBy returns v / a as a new vector, or ErrDivisionByZero.
func (v *Vector[K]) DividedBy(a K) (*Vector[K], error) {
	out := v.Clone()
	if err := out.InvScl(a); err != nil {
		return nil, err
	}

	return out, nil
}

// Neg returns -v as a new vector.
func (v *Vector[K]) Neg() *Vector[K] {
	return v.Times(-field.One[K]())
}
