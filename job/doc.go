// SPDX-License-Identifier: MIT

// Package job evaluates batches of vector and matrix operations described in
// YAML or TOML files.
//
// A job is a list of independent steps. Each step names an operation and its
// operands; Run evaluates every step and reports one Result per step, so a
// failing step never hides the others:
//
//	pivot_tolerance: 1e-12
//	steps:
//	  - name: det
//	    op: determinant
//	    matrix: [[2, 5, 3], [1, -2, -1], [1, 3, 4]]
//	  - name: blend
//	    op: lerp
//	    vectors: [[2, 1], [4, 2]]
//	    t: 0.3
//
// All operands are float64 except the projection parameters, which are
// float32 with fov given in degrees.
package job
