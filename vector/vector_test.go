// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	buf := []float64{1, 2, 3}
	v := vector.New(buf...)
	buf[0] = 99

	got, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "New must not alias the caller's slice")
	assert.Equal(t, 3, v.Dim())
}

func TestFromSlice(t *testing.T) {
	v, err := vector.FromSlice([]float32{1, 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, v.Data())

	_, err = vector.FromSlice([]float32{1, 2}, 3)
	require.ErrorIs(t, err, vector.ErrSizeMismatch)

	_, err = vector.FromSlice([]float32{}, -1)
	require.ErrorIs(t, err, vector.ErrSizeMismatch)
}

func TestZeros(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, vector.Zeros[float64](3).Data())
	assert.Equal(t, 0, vector.Zeros[float64](-4).Dim())
}

func TestAtSetOutOfRange(t *testing.T) {
	v := vector.New(1.0, 2.0)

	_, err := v.At(2)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	require.ErrorIs(t, v.Set(5, 1), vector.ErrOutOfRange)

	require.NoError(t, v.Set(1, 8))
	assert.Equal(t, []float64{1, 8}, v.Data())
}

func TestDataAndCloneIndependence(t *testing.T) {
	v := vector.New(1.0, 2.0)
	d := v.Data()
	d[0] = 42
	c := v.Clone()
	require.NoError(t, c.Set(1, 7))

	assert.Equal(t, []float64{1, 2}, v.Data())
	assert.Equal(t, []float64{1, 7}, c.Data())
}

func TestEqual(t *testing.T) {
	assert.True(t, vector.New(1.0, 2).Equal(vector.New(1.0, 2)))
	assert.False(t, vector.New(1.0, 2).Equal(vector.New(1.0, 3)))
	assert.False(t, vector.New(1.0, 2).Equal(vector.New(1.0, 2, 0)))
	assert.False(t, vector.New(1.0).Equal(nil))

	var a, b *vector.Vector[float64]
	assert.True(t, a.Equal(b))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1.000, -2.500, 0.333]", vector.New(1, -2.5, 1.0/3).String())
	assert.Equal(t, "[1, -4]", vector.New[int32](1, -4).String())
	assert.Equal(t, "[]", vector.New[float64]().String())
}

func TestAddSubScl(t *testing.T) {
	u := vector.New(2.0, 3.0)
	require.NoError(t, u.Add(vector.New(5.0, 7.0)))
	assert.Equal(t, []float64{7, 10}, u.Data())

	u = vector.New(2.0, 3.0)
	require.NoError(t, u.Sub(vector.New(5.0, 7.0)))
	assert.Equal(t, []float64{-3, -4}, u.Data())

	u = vector.New(2.0, 3.0)
	u.Scl(2)
	assert.Equal(t, []float64{4, 6}, u.Data())
}

func TestAddSubDimensionMismatch(t *testing.T) {
	u := vector.New(1.0, 2.0)

	require.ErrorIs(t, u.Add(vector.New(1.0, 2.0, 3.0)), vector.ErrDimensionMismatch)
	require.ErrorIs(t, u.Sub(vector.New(1.0)), vector.ErrDimensionMismatch)
	require.ErrorIs(t, u.Add(nil), vector.ErrNilVector)
	assert.Equal(t, []float64{1, 2}, u.Data(), "receiver must be untouched on error")
}

func TestInvScl(t *testing.T) {
	u := vector.New(2.0, 4.0)
	require.NoError(t, u.InvScl(2))
	assert.Equal(t, []float64{1, 2}, u.Data())

	require.ErrorIs(t, u.InvScl(0), vector.ErrDivisionByZero)
	assert.Equal(t, []float64{1, 2}, u.Data())
}

func TestValueSugarLeavesOperandsIntact(t *testing.T) {
	u := vector.New(1.0, 2.0)
	v := vector.New(3.0, 5.0)

	sum, err := u.Plus(v)
	require.NoError(t, err)
	diff, err := u.Minus(v)
	require.NoError(t, err)
	half, err := v.DividedBy(2)
	require.NoError(t, err)

	assert.Equal(t, []float64{4, 7}, sum.Data())
	assert.Equal(t, []float64{-2, -3}, diff.Data())
	assert.Equal(t, []float64{6, 10}, v.Times(2).Data())
	assert.Equal(t, []float64{1.5, 2.5}, half.Data())
	assert.Equal(t, []float64{-1, -2}, u.Neg().Data())
	assert.Equal(t, []float64{1, 2}, u.Data())
	assert.Equal(t, []float64{3, 5}, v.Data())

	_, err = u.Plus(vector.New(1.0))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = u.DividedBy(0)
	require.ErrorIs(t, err, vector.ErrDivisionByZero)
}

func TestDot(t *testing.T) {
	cases := []struct {
		name string
		u, v *vector.Vector[float64]
		want float64
	}{
		{"zero", vector.New(0.0, 0.0), vector.New(1.0, 1.0), 0},
		{"ones", vector.New(1.0, 1.0), vector.New(1.0, 1.0), 2},
		{"mixed", vector.New(-1.0, 6.0), vector.New(3.0, 2.0), 9},
		{"empty", vector.New[float64](), vector.New[float64](), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.u.Dot(tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := vector.New(1.0).Dot(vector.New(1.0, 2.0))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestNorms(t *testing.T) {
	cases := []struct {
		in                 []float64
		norm1, norm, normI float64
	}{
		{[]float64{0, 0, 0}, 0, 0, 0},
		{[]float64{1, 2, 3}, 6, 3.74165738, 3},
		{[]float64{-1, -2}, 3, 2.236067977, 2},
	}
	for _, tc := range cases {
		v := vector.New(tc.in...)
		assert.InDelta(t, tc.norm1, v.Norm1(), 1e-8)
		assert.InDelta(t, tc.norm, v.Norm(), 1e-8)
		assert.InDelta(t, tc.normI, v.NormInf(), 1e-8)
	}
}

func TestNormInfNeverReturnsSeed(t *testing.T) {
	assert.Equal(t, 0.0, vector.New[float64]().NormInf())
	assert.Equal(t, 5.0, vector.New(-5.0).NormInf())
	assert.Equal(t, 7.0, vector.New[int16](3, -7, 2).NormInf())
}

func TestNormWidensIntegers(t *testing.T) {
	v := vector.New[int32](3, 4)
	assert.Equal(t, 5.0, v.Norm())
	assert.Equal(t, 7.0, v.Norm1())

	// 100²+100² and |-128| do not fit in int8.
	cases := []struct {
		name               string
		in                 []int8
		norm, norm1, normI float64
	}{
		{"SquaresOverflow", []int8{100, 100}, 141.42135623730951, 200, 100},
		{"MinInt", []int8{-128, 1}, 128.00390619039717, 129, 128},
		{"AllMinInt", []int8{-128, -128}, 181.01933598375618, 256, 128},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := vector.New(tc.in...)
			assert.InDelta(t, tc.norm, v.Norm(), 1e-9)
			assert.Equal(t, tc.norm1, v.Norm1())
			assert.Equal(t, tc.normI, v.NormInf())
			assert.GreaterOrEqual(t, v.Norm(), 0.0)
		})
	}

	w := vector.New[int16](200, 200, 200)
	assert.InDelta(t, 346.41016151377545, w.Norm(), 1e-9)
}

func TestAngleCosIntegers(t *testing.T) {
	// u·u = 32768 overflows int16.
	u := vector.New[int16](128, 128)
	got, err := vector.AngleCos(u, u)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	got, err = vector.AngleCos(vector.New[int8](-128, 0), vector.New[int8](127, 0))
	require.NoError(t, err)
	assert.InDelta(t, -1.0, got, 1e-12)
}

func TestCrossProduct(t *testing.T) {
	cases := []struct {
		u, v, want []float64
	}{
		{[]float64{0, 0, 1}, []float64{1, 0, 0}, []float64{0, 1, 0}},
		{[]float64{1, 2, 3}, []float64{4, 5, 6}, []float64{-3, 6, -3}},
		{[]float64{4, 2, -3}, []float64{-2, -5, 16}, []float64{17, -58, -16}},
	}
	for _, tc := range cases {
		got, err := vector.CrossProduct(vector.New(tc.u...), vector.New(tc.v...))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Data())
	}
}

func TestCrossProductWrongDimension(t *testing.T) {
	_, err := vector.CrossProduct(vector.New(1.0, 2.0), vector.New(1.0, 2.0, 3.0))
	require.ErrorIs(t, err, vector.ErrNotThreeDimensional)
	_, err = vector.CrossProduct(vector.New(1.0, 2.0, 3.0), vector.New(1.0, 2.0, 3.0, 4.0))
	require.ErrorIs(t, err, vector.ErrNotThreeDimensional)
	_, err = vector.CrossProduct(nil, vector.New(1.0, 2.0, 3.0))
	require.ErrorIs(t, err, vector.ErrNilVector)
}

func TestLinearCombination(t *testing.T) {
	e1, e2, e3 := vector.New(1.0, 0.0, 0.0), vector.New(0.0, 1.0, 0.0), vector.New(0.0, 0.0, 1.0)
	got, err := vector.LinearCombination([]*vector.Vector[float64]{e1, e2, e3}, []float64{10, -2, 0.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, -2, 0.5}, got.Data())

	v1, v2 := vector.New(1.0, 2.0, 3.0), vector.New(0.0, 10.0, -100.0)
	got, err = vector.LinearCombination([]*vector.Vector[float64]{v1, v2}, []float64{10, -2})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 0, 230}, got.Data())

	got, err = vector.LinearCombination([]*vector.Vector[float64]{v1}, []float64{1})
	require.NoError(t, err)
	assert.True(t, got.Equal(v1))
	assert.Equal(t, []float64{1, 2, 3}, v1.Data(), "inputs are not mutated")
}

func TestLinearCombinationErrors(t *testing.T) {
	v := vector.New(1.0, 2.0)

	_, err := vector.LinearCombination([]*vector.Vector[float64]{v}, []float64{1, 2})
	require.ErrorIs(t, err, vector.ErrCoefficientCount)

	_, err = vector.LinearCombination[float64](nil, nil)
	require.ErrorIs(t, err, vector.ErrEmptyCombination)

	_, err = vector.LinearCombination([]*vector.Vector[float64]{v, vector.New(1.0)}, []float64{1, 2})
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = vector.LinearCombination([]*vector.Vector[float64]{v, nil}, []float64{1, 2})
	require.ErrorIs(t, err, vector.ErrNilVector)
}

func TestAngleCos(t *testing.T) {
	cases := []struct {
		u, v []float64
		want float64
	}{
		{[]float64{1, 0}, []float64{1, 0}, 1},
		{[]float64{1, 0}, []float64{0, 1}, 0},
		{[]float64{-1, 1}, []float64{1, -1}, -1},
		{[]float64{2, 1}, []float64{4, 2}, 1},
		{[]float64{1, 2, 3}, []float64{4, 5, 6}, 0.974631846},
	}
	for _, tc := range cases {
		got, err := vector.AngleCos(vector.New(tc.u...), vector.New(tc.v...))
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-9)
	}

	_, err := vector.AngleCos(vector.New(0.0, 0.0), vector.New(1.0, 0.0))
	require.ErrorIs(t, err, vector.ErrZeroVector)
	_, err = vector.AngleCos(vector.New(1.0), vector.New(1.0, 0.0))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}
