// SPDX-License-Identifier: MIT
// Package matrix provides element-wise arithmetic, row broadcasts,
// matrix-vector and matrix-matrix products, transpose and trace.
// All operations perform strict fail-fast validation and return
// tagged sentinels on dimension mismatches.
//
// Purpose:
//   - In-place kernels (Add, Sub, AddScalar, SubScalar, Scl, InvScl) are the
//     primary contract.
//   - Value-returning methods (Plus, Minus, Times, DividedBy, Neg) clone and
//     delegate; they carry no arithmetic of their own.
//
// Notes:
//   - Operands are validated through validators.go and wrapped via matrixErrorf.
//   - Loop orders are fixed (flat 0..n-1, or i→k→j for products).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/vector"
)

// Operation name constants for unified error wrapping.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opInvScl       = "InvScl"
	opMulMat       = "MulMat"
	opMulVec       = "MulVec"
	opBroadcastAdd = "BroadcastAdd"
	opBroadcastSub = "BroadcastSub"
	opBroadcastMul = "BroadcastMul"
	opTrace        = "Trace"
	opDeterminant  = "Determinant"
	opInverse      = "Inverse"
	opRowEchelon   = "RowEchelon"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes m[i] = m[i] + sign*o[i] in place for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateSameShape(m, o).
//   - Stage 2: single flat loop 0..n-1.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. m is untouched on error.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[K]) addSub(o *Matrix[K], sign K, opTag string) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opTag, err)
	}
	for idx := range m.data {
		m.data[idx] += sign * o.data[idx]
	}

	return nil
}

// Add sets m = m + o element-wise.
func (m *Matrix[K]) Add(o *Matrix[K]) error { return m.addSub(o, field.One[K](), opAdd) }

// Sub sets m = m - o element-wise.
func (m *Matrix[K]) Sub(o *Matrix[K]) error { return m.addSub(o, -field.One[K](), opSub) }

// Scl multiplies every element by a, in place.
func (m *Matrix[K]) Scl(a K) {
	for idx := range m.data {
		m.data[idx] *= a
	}
}

// AddScalar adds a to every element, in place.
func (m *Matrix[K]) AddScalar(a K) {
	for idx := range m.data {
		m.data[idx] += a
	}
}

// SubScalar subtracts a from every element, in place.
func (m *Matrix[K]) SubScalar(a K) {
	for idx := range m.data {
		m.data[idx] -= a
	}
}

// InvScl divides every element by a, in place.
//
// Errors: ErrDivisionByZero when a is zero; m is untouched.
func (m *Matrix[K]) InvScl(a K) error {
	if field.IsZero(a) {
		return matrixErrorf(opInvScl, ErrDivisionByZero)
	}
	for idx := range m.data {
		m.data[idx] /= a
	}

	return nil
}

// Plus returns m + o as a fresh matrix.
func (m *Matrix[K]) Plus(o *Matrix[K]) (*Matrix[K], error) {
	out := m.Clone()
	if err := out.Add(o); err != nil {
		return nil, err
	}

	return out, nil
}

// Minus returns m - o as a fresh matrix.
func (m *Matrix[K]) Minus(o *Matrix[K]) (*Matrix[K], error) {
	out := m.Clone()
	if err := out.Sub(o); err != nil {
		return nil, err
	}

	return out, nil
}

// Times returns m * a as a fresh matrix.
func (m *Matrix[K]) Times(a K) *Matrix[K] {
	out := m.Clone()
	out.Scl(a)

	return out
}

// DividedBy returns m / a as a fresh matrix, or ErrDivisionByZero.
func (m *Matrix[K]) DividedBy(a K) (*Matrix[K], error) {
	out := m.Clone()
	if err := out.InvScl(a); err != nil {
		return nil, err
	}

	return out, nil
}

// Neg returns -m as a fresh matrix.
func (m *Matrix[K]) Neg() *Matrix[K] { return m.Times(-field.One[K]()) }

// broadcast applies out[i,j] = op(m[i,j], v[j]) for every row i.
func (m *Matrix[K]) broadcast(v *vector.Vector[K], opTag string, op func(a, b K) K) (*Matrix[K], error) {
	if err := ValidateVecLen(v, m.c); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	row := v.Data()
	out := m.Clone()
	for i := 0; i < out.r; i++ {
		base := i * out.c
		for j, x := range row {
			out.data[base+j] = op(out.data[base+j], x)
		}
	}

	return out, nil
}

// BroadcastAdd returns a matrix whose every row is m's row plus v.
//
// Errors: ErrNilVector, ErrDimensionMismatch when v.Dim() != Cols().
func (m *Matrix[K]) BroadcastAdd(v *vector.Vector[K]) (*Matrix[K], error) {
	return m.broadcast(v, opBroadcastAdd, func(a, b K) K { return a + b })
}

// BroadcastSub returns a matrix whose every row is m's row minus v.
func (m *Matrix[K]) BroadcastSub(v *vector.Vector[K]) (*Matrix[K], error) {
	return m.broadcast(v, opBroadcastSub, func(a, b K) K { return a - b })
}

// BroadcastMul returns a matrix whose every row is m's row multiplied
// component-wise by v.
func (m *Matrix[K]) BroadcastMul(v *vector.Vector[K]) (*Matrix[K], error) {
	return m.broadcast(v, opBroadcastMul, func(a, b K) K { return a * b })
}

// MulMat performs standard matrix multiplication C = m × rhs.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == rhs.Rows).
//   - Stage 2: i→k→j triple loop with row-major strides; C[i,:] += m[i,k]*rhs[k,:].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func (m *Matrix[K]) MulMat(rhs *Matrix[K]) (*Matrix[K], error) {
	if err := ValidateMulCompatible(m, rhs); err != nil {
		return nil, matrixErrorf(opMulMat, err)
	}
	out := &Matrix[K]{r: m.r, c: rhs.c, data: make([]K, m.r*rhs.c)}
	for i := 0; i < m.r; i++ {
		outRow := out.data[i*out.c : (i+1)*out.c]
		for k := 0; k < m.c; k++ {
			aik := m.data[i*m.c+k]
			rhsRow := rhs.data[k*rhs.c : (k+1)*rhs.c]
			for j := range outRow {
				outRow[j] += aik * rhsRow[j]
			}
		}
	}

	return out, nil
}

// MulVec computes y = m × v.
//
// Errors: ErrNilVector, ErrDimensionMismatch when v.Dim() != Cols().
// Complexity: Time O(r*c), Space O(r).
func (m *Matrix[K]) MulVec(v *vector.Vector[K]) (*vector.Vector[K], error) {
	if err := ValidateVecLen(v, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	x := v.Data()
	y := make([]K, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		sum := field.Zero[K]()
		for j, xj := range x {
			sum += m.data[base+j] * xj
		}
		y[i] = sum
	}

	return vector.New(y...), nil
}

// Transpose returns the c×r matrix with rows and columns swapped.
// Complexity: O(r*c).
func (m *Matrix[K]) Transpose() *Matrix[K] {
	out := &Matrix[K]{r: m.c, c: m.r, data: make([]K, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Trace returns the sum of the main diagonal.
//
// Errors: ErrNonSquare.
func (m *Matrix[K]) Trace() (K, error) {
	if err := ValidateSquare(m); err != nil {
		return field.Zero[K](), matrixErrorf(opTrace, err)
	}
	sum := field.Zero[K]()
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}
