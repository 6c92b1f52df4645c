// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/field"
)

var (
	// ErrDimensionMismatch indicates operands of different dimensions.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrSizeMismatch indicates a buffer whose length differs from the declared size.
	ErrSizeMismatch = errors.New("vector: buffer length does not match size")

	// ErrOutOfRange indicates an element index outside [0, Dim()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDivisionByZero is returned by InvScl/DividedBy for a zero divisor.
	ErrDivisionByZero = errors.New("vector: division by zero")

	// ErrNilVector indicates a nil *Vector operand.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrNotThreeDimensional is returned by CrossProduct for operands with Dim() != 3.
	ErrNotThreeDimensional = errors.New("vector: cross product requires 3 dimensions")

	// ErrCoefficientCount indicates len(vectors) != len(coefficients).
	ErrCoefficientCount = errors.New("vector: vector and coefficient counts differ")

	// ErrEmptyCombination indicates a linear combination of zero vectors.
	ErrEmptyCombination = errors.New("vector: linear combination of no vectors")

	// ErrZeroVector is returned by AngleCos when an operand has zero norm.
	ErrZeroVector = errors.New("vector: zero vector has no direction")
)

// Operation tags used when wrapping sentinels.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opInvScl   = "InvScl"
	opDot      = "Dot"
	opCross    = "CrossProduct"
	opLinComb  = "LinearCombination"
	opAngleCos = "AngleCos"
	opAt       = "At"
	opSet      = "Set"
	opFrom     = "FromSlice"
)

// vectorErrorf wraps err with an operation tag. err must be non-nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSameDim checks both operands are non-nil and of equal dimension.
// Returns plain sentinels; callers wrap with their operation tag.
func validateSameDim[K field.Field](a, b *Vector[K]) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a.data) != len(b.data) {
		return ErrDimensionMismatch
	}

	return nil
}
