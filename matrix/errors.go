// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (wrapped once with an
// operation tag) and tests check them via errors.Is. No operation panics on
// a user-triggered condition; panics are reserved for invalid Option values.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with matrixErrorf(op, ErrX);
// callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/size -> dimension mismatch -> data-dependent (singular, zero divisor).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows indicates literal rows of unequal length.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")

	// ErrSizeMismatch indicates a flat buffer whose length is not rows*cols.
	ErrSizeMismatch = errors.New("matrix: buffer length does not match shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or MulMat where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilVector indicates that a nil *vector.Vector argument was used.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrDivisionByZero is returned by InvScl/DividedBy for a zero divisor.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrSingular is returned by Inverse when elimination cannot produce a
	// pivot in every column of the left block. It is a data-dependent,
	// recoverable outcome: callers may use it as an invertibility test.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInexact is returned for integer fields when an exact result is not
	// integral, e.g. the inverse of [[2,1],[1,1]] over int32 is fine but
	// that of [[2,0],[0,1]] is not.
	ErrInexact = errors.New("matrix: result is not integral")

	// ErrOverflow is returned for integer fields when an exact result does
	// not fit the scalar type.
	ErrOverflow = errors.New("matrix: result overflows the scalar type")
)
