// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and approximate comparisons.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/matrix"
)

// Reference tolerances.
const (
	eps64 = 1e-10
	eps32 = 1e-6
)

// MustNew builds a matrix from literal rows or fails the test.
func MustNew[K field.Field](t testing.TB, rows [][]K) *matrix.Matrix[K] {
	t.Helper()
	m, err := matrix.New(rows)
	if err != nil {
		t.Fatalf("New(%v): %v", rows, err)
	}

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.Identity[float64](n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// RequireApprox asserts equal shapes and element-wise |got-want| <= eps.
func RequireApprox(t testing.TB, want, got *matrix.Matrix[float64], eps float64) {
	t.Helper()
	require.NotNil(t, got)
	wr, wc := want.Shape()
	gr, gc := got.Shape()
	require.Equal(t, wr, gr, "rows")
	require.Equal(t, wc, gc, "cols")
	require.InDeltaSlice(t, want.Data(), got.Data(), eps)
}

// RandomDense fills an r×c matrix with values in [-1, 1).
func RandomDense(t testing.TB, rng *rand.Rand, r, c int) *matrix.Matrix[float64] {
	t.Helper()
	buf := make([]float64, r*c)
	for i := range buf {
		buf[i] = 2*rng.Float64() - 1
	}
	m, err := matrix.FromSlice(buf, r, c)
	if err != nil {
		t.Fatalf("FromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// DiagonallyDominant returns a random n×n matrix with |a_ii| > Σ_j≠i |a_ij|,
// which is guaranteed invertible and well conditioned.
func DiagonallyDominant(t testing.TB, rng *rand.Rand, n int) *matrix.Matrix[float64] {
	t.Helper()
	m := RandomDense(t, rng, n, n)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, float64(n)+rng.Float64()))
	}

	return m
}
