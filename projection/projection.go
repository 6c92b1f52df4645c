// SPDX-License-Identifier: MIT

package projection

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/linalg/matrix"
)

// Sentinel errors for invalid camera parameters.
var (
	// ErrInvalidFOV indicates a field of view outside the open interval (0, π).
	ErrInvalidFOV = errors.New("projection: field of view must be in (0, pi)")

	// ErrInvalidAspect indicates a non-positive aspect ratio.
	ErrInvalidAspect = errors.New("projection: aspect ratio must be positive")

	// ErrInvalidClip indicates near <= 0 or far <= near.
	ErrInvalidClip = errors.New("projection: clip planes must satisfy 0 < near < far")
)

// size is the order of the projection matrix.
const size = 4

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Perspective returns the perspective projection matrix for a vertical field
// of view fov (radians), aspect ratio width/height, and near/far clip planes.
//
// Errors: ErrInvalidFOV, ErrInvalidAspect, ErrInvalidClip.
func Perspective(fov, ratio, near, far float32) (*matrix.Matrix[float32], error) {
	if !(fov > 0 && fov < math32.Pi) {
		return nil, fmt.Errorf("Perspective: fov %g: %w", fov, ErrInvalidFOV)
	}
	if !(ratio > 0) || math32.IsInf(ratio, 0) {
		return nil, fmt.Errorf("Perspective: ratio %g: %w", ratio, ErrInvalidAspect)
	}
	if !(near > 0 && far > near) || math32.IsInf(far, 0) {
		return nil, fmt.Errorf("Perspective: near %g, far %g: %w", near, far, ErrInvalidClip)
	}

	s := 1 / math32.Tan(fov/2)
	depth := near - far

	return matrix.FromSlice([]float32{
		s / ratio, 0, 0, 0,
		0, s, 0, 0,
		0, 0, (far + near) / depth, -1,
		0, 0, 2 * far * near / depth, 0,
	}, size, size)
}
