// Package linalg is a small generic linear-algebra engine: vectors and
// matrices over any numeric field, with arithmetic, geometry and a
// Gauss-Jordan reduction core.
//
// 🚀 What is linalg?
//
//	A pure-Go library built on Go generics that brings together:
//		• Field: the scalar constraint (int8, int16, int32, float32, float64)
//		• Vectors: add/sub/scale, dot, norms, cross product, linear combination
//		• Matrices: arithmetic, row broadcasts, products, transpose, trace
//		• Reduction: row-echelon form, rank, determinant, inverse
//		• Interpolation: lerp over scalars, vectors and matrices
//		• Projection: 4×4 perspective matrices
//
// ✨ Why choose linalg?
//
//   - Explicit failures: every contract violation is a sentinel error, never a panic
//   - Non-mutating reduction: the input matrix always survives
//   - Deterministic: fixed pivot policy and loop orders
//   - Batch friendly: YAML/TOML job files and the lalg CLI
//
// Under the hood, everything is organized into subpackages:
//
//	field/      the Field constraint and scalar helpers
//	vector/     Vector[K] and its operations
//	matrix/     Matrix[K], arithmetic and the reduction engine
//	interp/     generic Lerp
//	projection/ perspective projection builder
//	job/        YAML/TOML batch evaluation and colored rendering
//	cmd/lalg/   command-line front end
//
// Quick start:
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg
