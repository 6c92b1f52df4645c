// Package field describes the scalar capability shared by vectors and
// matrices in linalg.
//
// A scalar type K qualifies when it offers the additive and multiplicative
// identities, the four arithmetic operators, unary negation, an ordering
// (used for pivot comparison) and a lossless widening to float64 (used for
// norms). In Go that set is exactly:
//
//	~int8 | ~int16 | ~int32 | ~float32 | ~float64
//
// Wider integers are excluded because int64 → float64 loses precision, and
// unsigned integers because negation wraps around.
//
// The capability is a compile-time constraint, not a runtime object: every
// helper here is a pure function and none of them can fail.
//
//	import "github.com/katalvlaran/linalg/field"
//
//	z := field.Zero[float64]()     // 0
//	a := field.Abs[int32](-3)      // 3
//	w := field.Float64[float32](2) // 2.0
package field
