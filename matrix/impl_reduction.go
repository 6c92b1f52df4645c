// SPDX-License-Identifier: MIT
// Package matrix - reduction engine: reduced row-echelon form, rank,
// determinant and inverse.
//
// Purpose:
//   - One pivoting kernel (reduce) shared by RowEchelon, Rank and Inverse.
//   - A separate forward-only elimination for Determinant, which needs the
//     un-normalised pivots.
//
// Pivot policy (all entry points):
//   - Partial pivoting: among the remaining rows pick the largest |x| in the
//     current column; on exact ties the lowest row index wins.
//   - A candidate with |x| <= Options.PivotTolerance() is "no pivot"
//     (default tolerance 0: exact comparison with the field's zero).
//
// Determinism:
//   - Fixed column-major pivot scan, fixed row order for elimination.
//   - Inputs are never mutated; every entry point works on a clone.
//
// Integer fields:
//   - Division truncates for integer K, so every entry point dispatches on
//     field.IsInteger and runs the exact kernels in impl_exact.go instead.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/field"
)

// isNegligible reports whether a pivot magnitude counts as zero.
func isNegligible(mag, tol float64) bool {
	return mag <= tol
}

// magnitude is |x| widened to float64; it cannot wrap at the minimum integer.
func magnitude[K field.Field](x K) float64 {
	return math.Abs(field.Float64(x))
}

// swapRows exchanges rows a and b in place.
func (m *Matrix[K]) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// pivotCandidate returns the row in [from, r) with the largest |m[row,col]|.
// Ties keep the first (lowest) row.
func (m *Matrix[K]) pivotCandidate(col, from int) (row int, mag float64) {
	row = from
	mag = magnitude(m.data[from*m.c+col])
	for i := from + 1; i < m.r; i++ {
		if a := magnitude(m.data[i*m.c+col]); a > mag {
			row, mag = i, a
		}
	}

	return row, mag
}

// reduce runs Gauss-Jordan elimination with partial pivoting on a clone of m.
//
// Implementation:
//   - Stage 1: clone m; pivotRow = 0.
//   - Stage 2: for each column while pivotRow < r:
//     pick the pivot candidate; if negligible, skip the column without
//     advancing pivotRow; otherwise swap it into pivotRow, divide the row by
//     the pivot (leading 1) and eliminate the column from every other row.
//   - Stage 3: return the reduced clone and the pivot columns in order.
//
// Complexity: Time O(r*c*min(r,c)), Space O(r*c).
func (m *Matrix[K]) reduce(o Options) (*Matrix[K], []int) {
	out := m.Clone()
	pivots := make([]int, 0, min(m.r, m.c))
	pivotRow := 0
	for col := 0; col < out.c && pivotRow < out.r; col++ {
		best, mag := out.pivotCandidate(col, pivotRow)
		if isNegligible(mag, o.pivotTol) {
			continue // no pivot in this column: rank-deficient here
		}
		out.swapRows(pivotRow, best)

		prow := out.data[pivotRow*out.c : (pivotRow+1)*out.c]
		pivot := prow[col]
		for j := range prow {
			prow[j] /= pivot
		}

		for i := 0; i < out.r; i++ {
			if i == pivotRow {
				continue
			}
			row := out.data[i*out.c : (i+1)*out.c]
			factor := row[col]
			if field.IsZero(factor) {
				continue
			}
			for j := range row {
				row[j] -= factor * prow[j]
			}
		}

		pivots = append(pivots, col)
		pivotRow++
	}

	return out, pivots
}

// RowEchelon returns the reduced row-echelon form of m.
//
// Behavior highlights:
//   - Never fails; a column without a usable pivot is skipped, so the result
//     may have fewer pivots than columns (rank < Cols()).
//   - An all-zero matrix comes back unchanged; non-square shapes are supported.
//   - m itself is not modified.
//   - For integer K the form is computed exactly and each entry is truncated
//     toward zero; use ExactRowEchelon to get ErrInexact instead.
//
// Example:
//
//	[[1, 2], [2, 4]] → [[1, 2], [0, 0]]
func (m *Matrix[K]) RowEchelon(opts ...Option) *Matrix[K] {
	if field.IsInteger[K]() {
		out, _ := m.rowEchelonExact(false)

		return out
	}
	out, _ := m.reduce(gatherOptions(opts...))

	return out
}

// ExactRowEchelon is RowEchelon that refuses to truncate: for integer K a
// non-integral entry yields ErrInexact and one out of range ErrOverflow.
// For float K it never fails.
func (m *Matrix[K]) ExactRowEchelon(opts ...Option) (*Matrix[K], error) {
	if m == nil {
		return nil, matrixErrorf(opRowEchelon, ErrNilMatrix)
	}
	if !field.IsInteger[K]() {
		return m.RowEchelon(opts...), nil
	}
	out, err := m.rowEchelonExact(true)
	if err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}

	return out, nil
}

// Rank returns the number of pivots found while reducing m.
func (m *Matrix[K]) Rank(opts ...Option) int {
	if field.IsInteger[K]() {
		return m.rankExact()
	}
	_, pivots := m.reduce(gatherOptions(opts...))

	return len(pivots)
}

// Determinant returns det(m) for a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquare; clone m.
//   - Stage 2: forward elimination to upper-triangular form with partial
//     pivoting; each row swap flips the sign; each pivot is multiplied into
//     the running product before any normalisation.
//   - Stage 3: a column with no usable pivot means the matrix is singular:
//     return exactly the field's zero immediately.
//
// Convention: det = (−1)^swaps × Π pivots (un-normalised).
// Integer K uses determinantExact, which is exact.
//
// Errors: ErrNilMatrix, ErrNonSquare; ErrOverflow for an integer K too
// narrow to hold the result.
// Complexity: Time O(n³), Space O(n²).
func (m *Matrix[K]) Determinant(opts ...Option) (K, error) {
	if err := ValidateSquare(m); err != nil {
		return field.Zero[K](), matrixErrorf(opDeterminant, err)
	}
	if field.IsInteger[K]() {
		det, err := m.determinantExact()
		if err != nil {
			return field.Zero[K](), matrixErrorf(opDeterminant, err)
		}

		return det, nil
	}
	o := gatherOptions(opts...)
	a := m.Clone()
	n := a.r
	det := field.One[K]()
	for col := 0; col < n; col++ {
		best, mag := a.pivotCandidate(col, col)
		if isNegligible(mag, o.pivotTol) {
			return field.Zero[K](), nil
		}
		if best != col {
			a.swapRows(col, best)
			det = -det
		}
		pivot := a.data[col*n+col]
		det *= pivot

		prow := a.data[col*n : (col+1)*n]
		for i := col + 1; i < n; i++ {
			row := a.data[i*n : (i+1)*n]
			factor := row[col] / pivot
			if field.IsZero(factor) {
				continue
			}
			for j := col; j < n; j++ {
				row[j] -= factor * prow[j]
			}
		}
	}

	return det, nil
}

// Inverse returns m⁻¹ for a square, non-singular matrix.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: build the augmented n×2n matrix [m | I].
//   - Stage 3: reduce it; if any of the first n columns lacks a pivot the
//     left block did not become I and m is singular.
//   - Stage 4: copy the right block out.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (contract violations).
//   - ErrSingular (data-dependent; test with errors.Is).
//   - ErrInexact, ErrOverflow: integer K only, when the exact inverse has an
//     entry that is not integral or does not fit K.
//
// Complexity: Time O(n³), Space O(n²).
func (m *Matrix[K]) Inverse(opts ...Option) (*Matrix[K], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if field.IsInteger[K]() {
		inv, err := m.inverseExact()
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}

		return inv, nil
	}
	n := m.r
	aug := &Matrix[K]{r: n, c: 2 * n, data: make([]K, 2*n*n)}
	one := field.One[K]()
	for i := 0; i < n; i++ {
		copy(aug.data[i*2*n:i*2*n+n], m.data[i*n:(i+1)*n])
		aug.data[i*2*n+n+i] = one
	}

	red, pivots := aug.reduce(gatherOptions(opts...))
	left := 0
	for _, col := range pivots {
		if col < n {
			left++
		}
	}
	if left < n {
		return nil, matrixErrorf(opInverse, fmt.Errorf("rank %d of %d: %w", left, n, ErrSingular))
	}

	inv := &Matrix[K]{r: n, c: n, data: make([]K, n*n)}
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], red.data[i*2*n+n:(i+1)*2*n])
	}

	return inv, nil
}
