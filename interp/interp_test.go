// SPDX-License-Identifier: MIT

package interp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/interp"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestScalar(t *testing.T) {
	cases := []struct {
		u, v, t, want float64
	}{
		{0, 1, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 0.5, 0.5},
		{21, 42, 0.3, 27.3},
		{0, 10, 2, 20},   // extrapolation past v
		{0, 10, -1, -10}, // and before u
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, interp.Scalar(tc.u, tc.v, tc.t), 1e-12)
	}
	assert.Equal(t, int16(7), interp.Scalar[int16](3, 7, 1))
}

func TestLerpVector(t *testing.T) {
	u := vector.New(2.0, 1)
	v := vector.New(4.0, 2)

	got, err := interp.Lerp(u, v, 0.3)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{2.6, 1.3}, got.Data(), approx); diff != "" {
		t.Fatalf("Lerp mismatch (-want +got):\n%s", diff)
	}

	start, err := interp.Lerp(u, v, 0.0)
	require.NoError(t, err)
	assert.True(t, start.Equal(u))

	end, err := interp.Lerp(u, v, 1.0)
	require.NoError(t, err)
	assert.True(t, end.Equal(v))

	assert.Equal(t, []float64{2, 1}, u.Data(), "operands are not mutated")
	assert.Equal(t, []float64{4, 2}, v.Data())
}

func TestLerpMatrix(t *testing.T) {
	u, err := matrix.New([][]float64{{2, 1}, {3, 4}})
	require.NoError(t, err)
	v, err := matrix.New([][]float64{{20, 10}, {30, 40}})
	require.NoError(t, err)

	got, err := interp.Lerp(u, v, 0.5)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{11, 5.5, 16.5, 22}, got.Data(), approx); diff != "" {
		t.Fatalf("Lerp mismatch (-want +got):\n%s", diff)
	}
}

func TestLerpDimensionMismatch(t *testing.T) {
	_, err := interp.Lerp(vector.New(1.0, 2), vector.New(1.0, 2, 3), 0.5)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	a, _ := matrix.New([][]float64{{1, 2}})
	b, _ := matrix.New([][]float64{{1}, {2}})
	_, err = interp.Lerp(a, b, 0.5)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
