// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return plain sentinel errors wrapped with the validator tag so call
//    sites can add their own operation tag uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[K field.Field](m *Matrix[K]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Use for Add/Sub kernels.
func ValidateSameShape[K field.Field](a, b *Matrix[K]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Use before Determinant, Inverse and Trace.
func ValidateSquare[K field.Field](m *Matrix[K]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
func ValidateMulCompatible[K field.Field](a, b *Matrix[K]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has dimension n.
// Use for MulVec and the row broadcasts.
func ValidateVecLen[K field.Field](x *vector.Vector[K], n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilVector)
	}
	if x.Dim() != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("dim %d, want %d: %w", x.Dim(), n, ErrDimensionMismatch))
	}

	return nil
}
