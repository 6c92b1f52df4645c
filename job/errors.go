// SPDX-License-Identifier: MIT

package job

import (
	"errors"
	"fmt"
)

// Sentinel errors for job decoding and evaluation.
var (
	// ErrUnsupportedFormat indicates a job file extension or format other than YAML or TOML.
	ErrUnsupportedFormat = errors.New("job: unsupported format")

	// ErrInvalidTolerance indicates a negative, NaN or infinite pivot tolerance.
	ErrInvalidTolerance = errors.New("job: pivot tolerance must be finite and non-negative")

	// ErrNoSteps indicates a job without any steps.
	ErrNoSteps = errors.New("job: no steps")

	// ErrUnknownOp indicates a step whose op is not recognised.
	ErrUnknownOp = errors.New("job: unknown op")

	// ErrMissingOperand indicates a step lacking an operand its op requires.
	ErrMissingOperand = errors.New("job: missing operand")

	// ErrUnexpectedOperand indicates a step carrying more operands than its op takes.
	ErrUnexpectedOperand = errors.New("job: unexpected operand")
)

// jobErrorf wraps err with a step tag, preserving it for errors.Is.
func jobErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
