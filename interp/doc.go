// SPDX-License-Identifier: MIT

// Package interp provides linear interpolation over any value that supports
// addition, subtraction and scaling: bare scalars, *vector.Vector and
// *matrix.Matrix.
//
//	mid, err := interp.Lerp(u, v, 0.5) // u + (v-u)*0.5
//
// t is not clamped; values outside [0, 1] extrapolate along the same line.
package interp
