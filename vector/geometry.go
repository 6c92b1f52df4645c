// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/field"
)

// crossDim is the only dimension the cross product is defined for.
const crossDim = 3

// Dot returns Σ v[i]*o[i]. The accumulator starts at the field's zero, so an
// all-zero (or empty) input yields zero.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
func (v *Vector[K]) Dot(o *Vector[K]) (K, error) {
	if err := validateSameDim(v, o); err != nil {
		return field.Zero[K](), vectorErrorf(opDot, err)
	}

	return dot(v.data, o.data), nil
}

// dot assumes len(a) == len(b).
func dot[K field.Field](a, b []K) K {
	sum := field.Zero[K]()
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// dot64 is dot with every element widened to float64 first, so integer
// fields cannot overflow the accumulator.
func dot64[K field.Field](a, b []K) float64 {
	sum := 0.0
	for i := range a {
		sum += field.Float64(a[i]) * field.Float64(b[i])
	}

	return sum
}

// Norm returns the Euclidean norm sqrt(v·v). Elements are widened to float64
// before squaring.
func (v *Vector[K]) Norm() float64 {
	return math.Sqrt(dot64(v.data, v.data))
}

// Norm1 returns the taxicab norm Σ|v[i]|.
func (v *Vector[K]) Norm1() float64 {
	sum := 0.0
	for _, x := range v.data {
		sum += math.Abs(field.Float64(x))
	}

	return sum
}

// NormInf returns the supremum norm max|v[i]|, or 0 for a 0-dimensional vector.
func (v *Vector[K]) NormInf() float64 {
	best := 0.0
	for _, x := range v.data {
		best = math.Max(best, math.Abs(field.Float64(x)))
	}

	return best
}

// AngleCos returns the cosine of the angle between u and v:
// (u·v) / (‖u‖‖v‖), computed in float64.
//
// Errors: ErrNilVector, ErrDimensionMismatch, ErrZeroVector.
func AngleCos[K field.Field](u, v *Vector[K]) (float64, error) {
	if err := validateSameDim(u, v); err != nil {
		return 0, vectorErrorf(opAngleCos, err)
	}
	nu, nv := u.Norm(), v.Norm()
	if nu == 0 || nv == 0 {
		return 0, vectorErrorf(opAngleCos, ErrZeroVector)
	}

	return dot64(u.data, v.data) / (nu * nv), nil
}

// CrossProduct returns u × v for 3-dimensional operands:
//
//	[u1*v2 - u2*v1, u2*v0 - u0*v2, u0*v1 - u1*v0]
//
// Errors: ErrNilVector, ErrNotThreeDimensional.
func CrossProduct[K field.Field](u, v *Vector[K]) (*Vector[K], error) {
	if u == nil || v == nil {
		return nil, vectorErrorf(opCross, ErrNilVector)
	}
	if len(u.data) != crossDim || len(v.data) != crossDim {
		return nil, vectorErrorf(opCross, fmt.Errorf("dims %d and %d: %w", len(u.data), len(v.data), ErrNotThreeDimensional))
	}
	a, b := u.data, v.data

	return New(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	), nil
}

// LinearCombination returns Σ coefs[k] * vectors[k].
//
// Implementation:
//   - Stage 1: validate counts (ErrCoefficientCount, ErrEmptyCombination).
//   - Stage 2: validate every vector against the first (ErrNilVector, ErrDimensionMismatch).
//   - Stage 3: accumulate per element in vector order.
//
// Complexity: O(k*N) time, O(N) space.
func LinearCombination[K field.Field](vectors []*Vector[K], coefs []K) (*Vector[K], error) {
	if len(vectors) != len(coefs) {
		return nil, vectorErrorf(opLinComb, fmt.Errorf("%d vectors, %d coefficients: %w", len(vectors), len(coefs), ErrCoefficientCount))
	}
	if len(vectors) == 0 {
		return nil, vectorErrorf(opLinComb, ErrEmptyCombination)
	}
	for k, vec := range vectors {
		if err := validateSameDim(vectors[0], vec); err != nil {
			return nil, vectorErrorf(opLinComb, fmt.Errorf("vector %d: %w", k, err))
		}
	}

	out := Zeros[K](vectors[0].Dim())
	for k, vec := range vectors {
		c := coefs[k]
		for i, x := range vec.data {
			out.data[i] += c * x
		}
	}

	return out, nil
}
