// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// Affine is the capability Lerp needs from a value type T scaled by K.
// Plus and Minus return fresh values and fail on shape mismatch.
type Affine[T any, K field.Field] interface {
	Plus(T) (T, error)
	Minus(T) (T, error)
	Times(K) T
}

// Compile-time assertions for the in-repo implementers.
var (
	_ Affine[*vector.Vector[float64], float64] = (*vector.Vector[float64])(nil)
	_ Affine[*matrix.Matrix[float32], float32] = (*matrix.Matrix[float32])(nil)
)

// Lerp returns u + (v-u)*t. Neither u nor v is modified.
//
// Errors: whatever Minus/Plus report for incompatible shapes, tagged "Lerp".
func Lerp[T Affine[T, K], K field.Field](u, v T, t K) (T, error) {
	var zero T
	delta, err := v.Minus(u)
	if err != nil {
		return zero, fmt.Errorf("Lerp: %w", err)
	}
	out, err := u.Plus(delta.Times(t))
	if err != nil {
		return zero, fmt.Errorf("Lerp: %w", err)
	}

	return out, nil
}

// Scalar is Lerp for bare field values.
func Scalar[K field.Field](u, v, t K) K {
	return u + (v-u)*t
}
