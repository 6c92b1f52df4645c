// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/field"
)

// Formatting literals.
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is an ordered, fixed-dimension sequence of scalars.
// The dimension is len(data) and is never changed after construction.
type Vector[K field.Field] struct {
	data []K
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[float64])(nil)

// New builds a vector from literal elements. The elements are copied,
// so the caller may reuse the argument slice.
//
//	v := vector.New(1.0, 2.0, 3.0) // Dim() == 3
func New[K field.Field](elems ...K) *Vector[K] {
	data := make([]K, len(elems))
	copy(data, elems)

	return &Vector[K]{data: data}
}

// FromSlice builds a vector of the declared size from buf.
// The size must equal len(buf); the buffer is copied.
//
// Errors:
//   - ErrSizeMismatch when size != len(buf) (including negative sizes).
func FromSlice[K field.Field](buf []K, size int) (*Vector[K], error) {
	if size != len(buf) {
		return nil, vectorErrorf(opFrom, fmt.Errorf("size %d, len %d: %w", size, len(buf), ErrSizeMismatch))
	}

	return New(buf...), nil
}

// Zeros returns the n-dimensional zero vector. Negative n yields Dim() == 0.
func Zeros[K field.Field](n int) *Vector[K] {
	if n < 0 {
		n = 0
	}

	return &Vector[K]{data: make([]K, n)}
}

// Dim returns the dimension N.
func (v *Vector[K]) Dim() int { return len(v.data) }

// At returns the i-th element or ErrOutOfRange.
func (v *Vector[K]) At(i int) (K, error) {
	if i < 0 || i >= len(v.data) {
		return field.Zero[K](), vectorErrorf(opAt, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}

	return v.data[i], nil
}

// Set stores x at index i or returns ErrOutOfRange.
func (v *Vector[K]) Set(i int, x K) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(opSet, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}
	v.data[i] = x

	return nil
}

// Data returns a copy of the elements in order.
func (v *Vector[K]) Data() []K {
	out := make([]K, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns an independent deep copy.
func (v *Vector[K]) Clone() *Vector[K] { return New(v.data...) }

// Equal reports element-wise equality. Vectors of different dimension are
// never equal; two nil vectors are.
func (v *Vector[K]) Equal(o *Vector[K]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "[a, b, c]" with field.Format for each element.
func (v *Vector[K]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(field.Format(x))
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
