// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/linalg/matrix"
)

// propN is the order of generated square matrices.
const propN = 3

func newProperties() *gopter.Properties {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200

	return gopter.NewProperties(params)
}

func genSquare() gopter.Gen {
	return gen.SliceOfN(propN*propN, gen.Float64Range(-10, 10))
}

func fromFlat(buf []float64) *matrix.Matrix[float64] {
	m, err := matrix.FromSlice(buf, propN, propN)
	if err != nil {
		panic(err)
	}

	return m
}

func closeTo(want, got float64) bool {
	return math.Abs(want-got) <= 1e-8*math.Max(1, math.Abs(want))
}

func TestMatrixLaws(t *testing.T) {
	properties := newProperties()

	properties.Property("det(AB) == det(A)·det(B)", prop.ForAll(
		func(a, b []float64) bool {
			ma, mb := fromFlat(a), fromFlat(b)
			ab, err := ma.MulMat(mb)
			if err != nil {
				return false
			}
			dab, _ := ab.Determinant()
			da, _ := ma.Determinant()
			db, _ := mb.Determinant()

			return math.Abs(dab-da*db) <= 1e-6*math.Max(1, math.Abs(da*db))
		},
		genSquare(), genSquare(),
	))

	properties.Property("det(Aᵀ) == det(A)", prop.ForAll(
		func(a []float64) bool {
			m := fromFlat(a)
			d, _ := m.Determinant()
			dt, _ := m.Transpose().Determinant()

			return closeTo(d, dt)
		},
		genSquare(),
	))

	properties.Property("(Aᵀ)ᵀ == A", prop.ForAll(
		func(a []float64) bool {
			m := fromFlat(a)

			return m.Transpose().Transpose().Equal(m)
		},
		genSquare(),
	))

	properties.Property("rank(A) <= n and rref is idempotent", prop.ForAll(
		func(a []float64) bool {
			m := fromFlat(a)
			rref := m.RowEchelon()
			again := rref.RowEchelon()
			for i, x := range rref.Data() {
				if !closeTo(x, again.Data()[i]) {
					return false
				}
			}

			return m.Rank() <= propN
		},
		genSquare(),
	))

	properties.Property("A·A⁻¹ == I for diagonally dominant A", prop.ForAll(
		func(a []float64) bool {
			buf := make([]float64, len(a))
			for i, x := range a {
				buf[i] = x / 10 // |x| <= 1
			}
			for i := 0; i < propN; i++ {
				buf[i*propN+i] += propN + 1
			}
			m := fromFlat(buf)
			inv, err := m.Inverse()
			if err != nil {
				return false
			}
			id, err := m.MulMat(inv)
			if err != nil {
				return false
			}
			for i := 0; i < propN; i++ {
				for j := 0; j < propN; j++ {
					want := 0.0
					if i == j {
						want = 1
					}
					got, _ := id.At(i, j)
					if math.Abs(got-want) > 1e-9 {
						return false
					}
				}
			}

			return true
		},
		genSquare(),
	))

	properties.TestingRun(t)
}
