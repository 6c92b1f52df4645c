// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).
//
// Complexity quicksheet:
//   - New/NewDense/FromSlice: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/vector"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxRow  = "Row"
	ctxCol  = "Col"
	ctxNew  = "New"
	ctxFrom = "FromSlice"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a concrete row-major matrix over the scalar field K.
//   - r,c hold dimensions (rows, cols), both > 0 and fixed for the lifetime.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Matrix[K field.Field] struct {
	r, c int // row and column counts
	data []K // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense[K field.Field](rows, cols int) (*Matrix[K], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix[K]{r: rows, c: cols, data: make([]K, rows*cols)}, nil
}

// New builds a matrix from literal rows; the shape is inferred from the
// literal and the values are copied.
//
//	m, err := matrix.New([][]float64{{1, 2}, {3, 4}})
//
// Errors:
//   - ErrInvalidDimensions for no rows or empty rows.
//   - ErrRaggedRows when rows differ in length.
func New[K field.Field](rows [][]K) (*Matrix[K], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := &Matrix[K]{r: r, c: c, data: make([]K, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxNew, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), c, ErrRaggedRows))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// FromSlice builds a rows×cols matrix from a row-major buffer whose length
// must be exactly rows*cols. The buffer is copied.
//
// Errors: ErrInvalidDimensions, ErrSizeMismatch.
func FromSlice[K field.Field](buf []K, rows, cols int) (*Matrix[K], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxFrom, ErrInvalidDimensions)
	}
	if len(buf) != rows*cols {
		return nil, matrixErrorf(ctxFrom, fmt.Errorf("len %d, want %d: %w", len(buf), rows*cols, ErrSizeMismatch))
	}
	data := make([]K, len(buf))
	copy(data, buf)

	return &Matrix[K]{r: rows, c: cols, data: data}, nil
}

// Identity returns the n×n identity matrix.
//
// Errors: ErrInvalidDimensions when n <= 0.
func Identity[K field.Field](n int) (*Matrix[K], error) {
	m, err := NewDense[K](n, n)
	if err != nil {
		return nil, err
	}
	one := field.One[K]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[K]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[K]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix[K]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Matrix[K]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Matrix[K]) At(row, col int) (K, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return field.Zero[K](), denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Matrix[K]) Set(row, col int, v K) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i as a vector of dimension Cols().
func (m *Matrix[K]) Row(i int) (*vector.Vector[K], error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return vector.New(m.data[i*m.c : (i+1)*m.c]...), nil
}

// Col returns a copy of column j as a vector of dimension Rows().
func (m *Matrix[K]) Col(j int) (*vector.Vector[K], error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]K, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return vector.New(out...), nil
}

// Data returns a copy of the row-major buffer.
func (m *Matrix[K]) Data() []K {
	out := make([]K, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Matrix[K]) Clone() *Matrix[K] {
	data := make([]K, len(m.data))
	copy(data, m.data)

	return &Matrix[K]{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and o have the same shape and elements.
// Two nil matrices are equal.
func (m *Matrix[K]) Equal(o *Matrix[K]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line: "[a, b]\n[c, d]\n".
// Floats use three decimals, integers plain decimal (field.Format).
// Complexity: O(r*c).
func (m *Matrix[K]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(field.Format(m.data[base+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
