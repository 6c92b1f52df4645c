// Package matrix provides a generic dense matrix and the reduction engine
// built on it.
//
// The matrix package provides:
//
//   - Matrix[K], a row-major r×c container over any field.Field scalar, with
//     safe accessors (At/Set return ErrOutOfRange instead of panicking).
//   - Arithmetic: in-place Add/Sub/Scl/InvScl plus value-returning
//     Plus/Minus/Times/DividedBy/Neg, row broadcasts against a vector,
//     MulVec, MulMat, Transpose and Trace.
//   - The reduction engine: RowEchelon (Gauss-Jordan with partial pivoting),
//     Rank, Determinant and Inverse.
//
// Failure model:
//
//	Contract violations (shape mismatch, non-square input, zero divisor) and
//	the data-dependent singular case are both reported as sentinel errors.
//	Singularity is distinguishable with errors.Is(err, ErrSingular), so
//	Inverse doubles as an invertibility test. Nothing here panics on user
//	input; only invalid Option values panic.
//
// Complexity:
//
//	Element-wise ops O(r*c); MulMat O(r*n*c); reduction O(n³).
//
// See example_test.go for usage patterns.
package matrix
