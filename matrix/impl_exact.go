// SPDX-License-Identifier: MIT
// Package matrix - exact reduction for integer fields.
//
// Purpose:
//   - Integer K truncates on division, so the float kernels in
//     impl_reduction.go would return wrong values with a nil error.
//   - Every integer entry point of the reduction engine routes here instead:
//     RowEchelon, Rank and Inverse reduce over big.Rat, Determinant uses
//     fraction-free Bareiss elimination over big.Int.
//
// Pivot policy matches the float kernels: partial pivoting on the largest
// |x|, lowest row on ties. Elimination is exact, so Options.PivotTolerance
// is not consulted.
//
// Results come back into K only when they are integral and in range;
// otherwise ErrInexact or ErrOverflow.

package matrix

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/linalg/field"
)

// ratRows widens m into a row-major grid of rationals.
func ratRows[K field.Field](m *Matrix[K]) [][]*big.Rat {
	rows := make([][]*big.Rat, m.r)
	for i := range rows {
		rows[i] = make([]*big.Rat, m.c)
		for j := range rows[i] {
			rows[i][j] = new(big.Rat).SetInt64(int64(m.data[i*m.c+j]))
		}
	}

	return rows
}

// ratPivot returns the row in [from, len(rows)) with the largest |rows[row][col]|,
// or -1 when every candidate is zero. Ties keep the lowest row.
func ratPivot(rows [][]*big.Rat, col, from int) int {
	best := -1
	var mag, cand big.Rat
	for i := from; i < len(rows); i++ {
		if rows[i][col].Sign() == 0 {
			continue
		}
		cand.Abs(rows[i][col])
		if best < 0 || cand.Cmp(&mag) > 0 {
			best = i
			mag.Set(&cand)
		}
	}

	return best
}

// reduceExact runs Gauss-Jordan elimination over the rationals in place and
// returns the pivot columns in order. Same stages as reduce.
func reduceExact(rows [][]*big.Rat) []int {
	if len(rows) == 0 {
		return nil
	}
	r, c := len(rows), len(rows[0])
	pivots := make([]int, 0, min(r, c))
	pivotRow := 0
	var inv, t big.Rat
	for col := 0; col < c && pivotRow < r; col++ {
		best := ratPivot(rows, col, pivotRow)
		if best < 0 {
			continue
		}
		rows[pivotRow], rows[best] = rows[best], rows[pivotRow]

		prow := rows[pivotRow]
		inv.Inv(prow[col])
		for j := range prow {
			prow[j].Mul(prow[j], &inv)
		}

		for i := 0; i < r; i++ {
			if i == pivotRow || rows[i][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(rows[i][col])
			for j := range rows[i] {
				rows[i][j].Sub(rows[i][j], t.Mul(factor, prow[j]))
			}
		}

		pivots = append(pivots, col)
		pivotRow++
	}

	return pivots
}

// narrowInt converts x to K, or reports ErrOverflow when it does not fit.
func narrowInt[K field.Field](x *big.Int) (K, error) {
	if !x.IsInt64() {
		return field.Zero[K](), fmt.Errorf("%s: %w", x.String(), ErrOverflow)
	}
	v := x.Int64()
	k := K(v)
	if int64(k) != v {
		return field.Zero[K](), fmt.Errorf("%d: %w", v, ErrOverflow)
	}

	return k, nil
}

// narrowRat converts x to K, or reports ErrInexact for a non-integral value
// and ErrOverflow for one out of range.
func narrowRat[K field.Field](x *big.Rat) (K, error) {
	if !x.IsInt() {
		return field.Zero[K](), fmt.Errorf("%s: %w", x.RatString(), ErrInexact)
	}

	return narrowInt[K](x.Num())
}

// rowEchelonExact is RowEchelon for integer K. With strict set, a
// non-integral or out-of-range entry is an error; otherwise entries are
// truncated toward zero and converted as Go conversions do.
func (m *Matrix[K]) rowEchelonExact(strict bool) (*Matrix[K], error) {
	rows := ratRows(m)
	reduceExact(rows)
	out := &Matrix[K]{r: m.r, c: m.c, data: make([]K, len(m.data))}
	var q big.Int
	for i, row := range rows {
		for j, x := range row {
			if !strict {
				out.data[i*m.c+j] = K(q.Quo(x.Num(), x.Denom()).Int64())
				continue
			}
			k, err := narrowRat[K](x)
			if err != nil {
				return nil, fmt.Errorf("entry (%d,%d) = %w", i, j, err)
			}
			out.data[i*m.c+j] = k
		}
	}

	return out, nil
}

// rankExact is Rank for integer K.
func (m *Matrix[K]) rankExact() int {
	return len(reduceExact(ratRows(m)))
}

// determinantExact is Determinant for integer K: Bareiss elimination with
// partial pivoting. Every division below is exact by construction.
//
// Implementation:
//   - Stage 1: widen to big.Int; prev = 1, sign = +1.
//   - Stage 2: for each k pick the largest |a[i][k]| in rows k..n-1; none
//     means det = 0; a swap flips the sign.
//   - Stage 3: a[i][j] = (a[i][j]*a[k][k] - a[i][k]*a[k][j]) / prev for
//     i, j > k; prev = a[k][k].
//   - Stage 4: det = sign * a[n-1][n-1], narrowed back to K.
//
// Complexity: Time O(n³) big-integer operations, Space O(n²).
func (m *Matrix[K]) determinantExact() (K, error) {
	n := m.r
	a := make([][]*big.Int, n)
	for i := range a {
		a[i] = make([]*big.Int, n)
		for j := range a[i] {
			a[i][j] = big.NewInt(int64(m.data[i*n+j]))
		}
	}

	prev := big.NewInt(1)
	negate := false
	var lhs, rhs big.Int
	for k := 0; k < n; k++ {
		best := -1
		for i := k; i < n; i++ {
			if a[i][k].Sign() == 0 {
				continue
			}
			if best < 0 || a[i][k].CmpAbs(a[best][k]) > 0 {
				best = i
			}
		}
		if best < 0 {
			return field.Zero[K](), nil
		}
		if best != k {
			a[k], a[best] = a[best], a[k]
			negate = !negate
		}

		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				lhs.Mul(a[i][j], a[k][k])
				rhs.Mul(a[i][k], a[k][j])
				a[i][j].Quo(lhs.Sub(&lhs, &rhs), prev)
			}
			a[i][k].SetInt64(0)
		}
		prev = a[k][k]
	}

	det := new(big.Int).Set(a[n-1][n-1])
	if negate {
		det.Neg(det)
	}

	return narrowInt[K](det)
}

// inverseExact is Inverse for integer K: [m | I] reduced over the rationals.
func (m *Matrix[K]) inverseExact() (*Matrix[K], error) {
	n := m.r
	rows := make([][]*big.Rat, n)
	for i := range rows {
		rows[i] = make([]*big.Rat, 2*n)
		for j := 0; j < n; j++ {
			rows[i][j] = new(big.Rat).SetInt64(int64(m.data[i*n+j]))
		}
		for j := n; j < 2*n; j++ {
			rows[i][j] = new(big.Rat)
		}
		rows[i][n+i].SetInt64(1)
	}

	left := 0
	for _, col := range reduceExact(rows) {
		if col < n {
			left++
		}
	}
	if left < n {
		return nil, fmt.Errorf("rank %d of %d: %w", left, n, ErrSingular)
	}

	inv := &Matrix[K]{r: n, c: n, data: make([]K, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k, err := narrowRat[K](rows[i][n+j])
			if err != nil {
				return nil, fmt.Errorf("entry (%d,%d) = %w", i, j, err)
			}
			inv.data[i*n+j] = k
		}
	}

	return inv, nil
}
