// SPDX-License-Identifier: MIT

// Package projection builds the 4×4 perspective projection matrix used to map
// camera space into clip space.
//
// The layout is column-vector style with the w-row in the last column:
//
//	[s/ratio, 0, 0,                   0 ]
//	[0,       s, 0,                   0 ]
//	[0,       0, (far+near)/(near-far), -1]
//	[0,       0, 2*far*near/(near-far), 0 ]
//
// where s = 1/tan(fov/2). Arithmetic is float32 throughout (math32).
package projection
