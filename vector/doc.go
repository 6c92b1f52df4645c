// Package vector provides a fixed-dimension vector over any field.Field scalar.
//
// What & Why:
//
//	Vector[K] owns an ordered sequence of N scalars. N is fixed when the
//	vector is built and never changes afterwards; every binary operation
//	checks it and fails with ErrDimensionMismatch instead of truncating or
//	padding.
//
// Key features:
//   - in-place arithmetic: Add, Sub, Scl, InvScl
//   - value-returning sugar over the same kernels: Plus, Minus, Times, DividedBy, Neg
//   - geometry: Dot, Norm, Norm1, NormInf, AngleCos, CrossProduct
//   - LinearCombination of several vectors with per-vector coefficients
//
// Usage:
//
//	u := vector.New(2.0, 3.0)
//	v := vector.New(5.0, 7.0)
//	if err := u.Add(v); err != nil {
//		// ErrDimensionMismatch
//	}
//	fmt.Println(u) // [7.000, 10.000]
//
// Errors are package-level sentinels; match them with errors.Is.
package vector
