// SPDX-License-Identifier: MIT

package job

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a job file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Job is a batch of steps sharing one reduction configuration.
type Job struct {
	// PivotTolerance is passed to matrix.WithPivotTolerance for rank,
	// row_echelon, determinant and inverse steps.
	PivotTolerance float64 `yaml:"pivot_tolerance" toml:"pivot_tolerance"`
	Steps          []Step  `yaml:"steps" toml:"steps"`
}

// Step is one operation with its operands. Which fields are read depends on Op.
type Step struct {
	Name string `yaml:"name" toml:"name"`
	Op   string `yaml:"op" toml:"op"`

	Matrix       [][]float64   `yaml:"matrix,omitempty" toml:"matrix,omitempty"`
	Matrices     [][][]float64 `yaml:"matrices,omitempty" toml:"matrices,omitempty"`
	Vectors      [][]float64   `yaml:"vectors,omitempty" toml:"vectors,omitempty"`
	Coefficients []float64     `yaml:"coefficients,omitempty" toml:"coefficients,omitempty"`
	Scalar       float64       `yaml:"scalar,omitempty" toml:"scalar,omitempty"`
	T            float64       `yaml:"t,omitempty" toml:"t,omitempty"`

	// Projection parameters; FOV is in degrees.
	FOV   float32 `yaml:"fov,omitempty" toml:"fov,omitempty"`
	Ratio float32 `yaml:"ratio,omitempty" toml:"ratio,omitempty"`
	Near  float32 `yaml:"near,omitempty" toml:"near,omitempty"`
	Far   float32 `yaml:"far,omitempty" toml:"far,omitempty"`
}

// decodeFunc decodes a job from r into j, rejecting unknown keys.
type decodeFunc func(r io.Reader, j *Job) error

var decoders = map[Format]decodeFunc{
	FormatYAML: func(r io.Reader, j *Job) error {
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)

		return dec.Decode(j)
	},
	FormatTOML: func(r io.Reader, j *Job) error {
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()

		return dec.Decode(j)
	},
}

// FormatOf maps a file name to its Format by extension (.yaml, .yml, .toml).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("FormatOf %q: %w", path, ErrUnsupportedFormat)
}

// Load reads and validates the job file at path.
//
// Errors: ErrUnsupportedFormat, I/O and decoding errors, and anything Validate reports.
func Load(path string) (*Job, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	return Decode(bufio.NewReader(f), format)
}

// Decode reads a job in the given format from r and validates it.
func Decode(r io.Reader, format Format) (*Job, error) {
	decode, ok := decoders[format]
	if !ok {
		return nil, fmt.Errorf("Decode %q: %w", format, ErrUnsupportedFormat)
	}
	var j Job
	if err := decode(r, &j); err != nil {
		return nil, fmt.Errorf("Decode %s: %w", format, err)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}

	return &j, nil
}

// Validate checks the job-level settings. Step operands are checked when the
// step runs, so one malformed step does not reject the whole job.
//
// Errors: ErrNoSteps, ErrInvalidTolerance.
func (j *Job) Validate() error {
	if len(j.Steps) == 0 {
		return jobErrorf("Validate", ErrNoSteps)
	}
	if !validTolerance(j.PivotTolerance) {
		return jobErrorf("Validate", fmt.Errorf("%g: %w", j.PivotTolerance, ErrInvalidTolerance))
	}

	return nil
}

func validTolerance(eps float64) bool {
	return eps >= 0 && !math.IsInf(eps, 0)
}
