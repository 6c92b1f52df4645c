// SPDX-License-Identifier: MIT

package job

import (
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/interp"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/projection"
	"github.com/katalvlaran/linalg/vector"
)

// Result is the outcome of one step. Exactly one of Value and Err is meaningful.
type Result struct {
	Name  string
	Op    string
	Value string // rendered with the operand type's String or field.Format
	Err   error
}

// Failed reports whether the step returned an error.
func (r Result) Failed() bool { return r.Err != nil }

// opFunc evaluates one step. opts carries the job's reduction options.
type opFunc func(s Step, opts []matrix.Option) (string, error)

var ops = map[string]opFunc{
	"add":                runAdd,
	"sub":                runSub,
	"scale":              runScale,
	"dot":                runDot,
	"norm":               runNorm(func(v *vector.Vector[float64]) float64 { return v.Norm() }),
	"norm_1":             runNorm(func(v *vector.Vector[float64]) float64 { return v.Norm1() }),
	"norm_inf":           runNorm(func(v *vector.Vector[float64]) float64 { return v.NormInf() }),
	"cross":              runCross,
	"angle_cos":          runAngleCos,
	"linear_combination": runLinearCombination,
	"lerp":               runLerp,
	"mul_vec":            runMulVec,
	"mul_mat":            runMulMat,
	"transpose":          runTranspose,
	"trace":              runTrace,
	"rank":               runRank,
	"row_echelon":        runRowEchelon,
	"determinant":        runDeterminant,
	"inverse":            runInverse,
	"projection":         runProjection,
}

// OpNames returns the supported op names in lexical order.
func OpNames() []string {
	names := maps.Keys(ops)
	slices.Sort(names)

	return names
}

// Run evaluates every step of j in order and returns one Result per step.
// Steps are independent: a failing step is reported and the next one runs.
func Run(j *Job) []Result {
	var (
		opts   []matrix.Option
		tolErr error
	)
	if validTolerance(j.PivotTolerance) {
		opts = append(opts, matrix.WithPivotTolerance(j.PivotTolerance))
	} else {
		tolErr = fmt.Errorf("%g: %w", j.PivotTolerance, ErrInvalidTolerance)
	}

	results := make([]Result, 0, len(j.Steps))
	for i, s := range j.Steps {
		res := Result{Name: s.Name, Op: s.Op}
		if res.Name == "" {
			res.Name = "step-" + strconv.Itoa(i+1)
		}
		switch fn, ok := ops[s.Op]; {
		case !ok:
			res.Err = jobErrorf(res.Name, fmt.Errorf("%q: %w", s.Op, ErrUnknownOp))
		case tolErr != nil:
			res.Err = jobErrorf(res.Name, tolErr)
		default:
			res.Value, res.Err = fn(s, opts)
			if res.Err != nil {
				res.Err = jobErrorf(res.Name, res.Err)
			}
		}
		results = append(results, res)
	}

	return results
}

// ---------- operand extraction ----------

func countErr(kind string, want, got int) error {
	if got < want {
		return fmt.Errorf("want %d %s, got %d: %w", want, kind, got, ErrMissingOperand)
	}

	return fmt.Errorf("want %d %s, got %d: %w", want, kind, got, ErrUnexpectedOperand)
}

func (s Step) vectors(n int) ([]*vector.Vector[float64], error) {
	if len(s.Vectors) != n {
		return nil, countErr("vectors", n, len(s.Vectors))
	}
	out := make([]*vector.Vector[float64], n)
	for i, elems := range s.Vectors {
		out[i] = vector.New(elems...)
	}

	return out, nil
}

func (s Step) matrix() (*matrix.Matrix[float64], error) {
	if s.Matrix == nil {
		return nil, fmt.Errorf("matrix: %w", ErrMissingOperand)
	}

	return matrix.New(s.Matrix)
}

func (s Step) matrices(n int) ([]*matrix.Matrix[float64], error) {
	if len(s.Matrices) != n {
		return nil, countErr("matrices", n, len(s.Matrices))
	}
	out := make([]*matrix.Matrix[float64], n)
	for i, rows := range s.Matrices {
		m, err := matrix.New(rows)
		if err != nil {
			return nil, fmt.Errorf("matrices[%d]: %w", i, err)
		}
		out[i] = m
	}

	return out, nil
}

// usesVectors reports whether a step that accepts either operand kind
// supplied vectors.
func (s Step) usesVectors() bool { return len(s.Vectors) > 0 }

func scalar(x float64) string { return field.Format(x) }

// ---------- element-wise ----------

func runAdd(s Step, _ []matrix.Option) (string, error) {
	return binary(s,
		func(u, v *vector.Vector[float64]) (fmt.Stringer, error) { return u.Plus(v) },
		func(a, b *matrix.Matrix[float64]) (fmt.Stringer, error) { return a.Plus(b) },
	)
}

func runSub(s Step, _ []matrix.Option) (string, error) {
	return binary(s,
		func(u, v *vector.Vector[float64]) (fmt.Stringer, error) { return u.Minus(v) },
		func(a, b *matrix.Matrix[float64]) (fmt.Stringer, error) { return a.Minus(b) },
	)
}

func runLerp(s Step, _ []matrix.Option) (string, error) {
	return binary(s,
		func(u, v *vector.Vector[float64]) (fmt.Stringer, error) { return interp.Lerp(u, v, s.T) },
		func(a, b *matrix.Matrix[float64]) (fmt.Stringer, error) { return interp.Lerp(a, b, s.T) },
	)
}

// binary dispatches a two-operand step to its vector or matrix form.
func binary(
	s Step,
	onVec func(u, v *vector.Vector[float64]) (fmt.Stringer, error),
	onMat func(a, b *matrix.Matrix[float64]) (fmt.Stringer, error),
) (string, error) {
	if s.usesVectors() {
		vs, err := s.vectors(2)
		if err != nil {
			return "", err
		}
		out, err := onVec(vs[0], vs[1])
		if err != nil {
			return "", err
		}

		return out.String(), nil
	}
	ms, err := s.matrices(2)
	if err != nil {
		return "", err
	}
	out, err := onMat(ms[0], ms[1])
	if err != nil {
		return "", err
	}

	return out.String(), nil
}

func runScale(s Step, _ []matrix.Option) (string, error) {
	if s.usesVectors() {
		vs, err := s.vectors(1)
		if err != nil {
			return "", err
		}

		return vs[0].Times(s.Scalar).String(), nil
	}
	m, err := s.matrix()
	if err != nil {
		return "", err
	}

	return m.Times(s.Scalar).String(), nil
}

// ---------- vector geometry ----------

func runDot(s Step, _ []matrix.Option) (string, error) {
	vs, err := s.vectors(2)
	if err != nil {
		return "", err
	}
	d, err := vs[0].Dot(vs[1])
	if err != nil {
		return "", err
	}

	return scalar(d), nil
}

func runNorm(norm func(*vector.Vector[float64]) float64) opFunc {
	return func(s Step, _ []matrix.Option) (string, error) {
		vs, err := s.vectors(1)
		if err != nil {
			return "", err
		}

		return scalar(norm(vs[0])), nil
	}
}

func runCross(s Step, _ []matrix.Option) (string, error) {
	vs, err := s.vectors(2)
	if err != nil {
		return "", err
	}
	out, err := vector.CrossProduct(vs[0], vs[1])
	if err != nil {
		return "", err
	}

	return out.String(), nil
}

func runAngleCos(s Step, _ []matrix.Option) (string, error) {
	vs, err := s.vectors(2)
	if err != nil {
		return "", err
	}
	c, err := vector.AngleCos(vs[0], vs[1])
	if err != nil {
		return "", err
	}

	return scalar(c), nil
}

func runLinearCombination(s Step, _ []matrix.Option) (string, error) {
	if len(s.Vectors) == 0 {
		return "", fmt.Errorf("vectors: %w", ErrMissingOperand)
	}
	vs, err := s.vectors(len(s.Vectors))
	if err != nil {
		return "", err
	}
	out, err := vector.LinearCombination(vs, s.Coefficients)
	if err != nil {
		return "", err
	}

	return out.String(), nil
}

// ---------- matrix products and reductions ----------

func runMulVec(s Step, _ []matrix.Option) (string, error) {
	m, err := s.matrix()
	if err != nil {
		return "", err
	}
	vs, err := s.vectors(1)
	if err != nil {
		return "", err
	}
	y, err := m.MulVec(vs[0])
	if err != nil {
		return "", err
	}

	return y.String(), nil
}

func runMulMat(s Step, _ []matrix.Option) (string, error) {
	ms, err := s.matrices(2)
	if err != nil {
		return "", err
	}
	out, err := ms[0].MulMat(ms[1])
	if err != nil {
		return "", err
	}

	return out.String(), nil
}

func runTranspose(s Step, _ []matrix.Option) (string, error) {
	m, err := s.matrix()
	if err != nil {
		return "", err
	}

	return m.Transpose().String(), nil
}

func runTrace(s Step, _ []matrix.Option) (string, error) {
	m, err := s.matrix()
	if err != nil {
		return "", err
	}
	tr, err := m.Trace()
	if err != nil {
		return "", err
	}

	return scalar(tr), nil
}

func runRank(s Step, opts []matrix.Option) (string, error) {
	m, err := s.matrix()
	if err != nil {
		return "", err
	}

	return strconv.Itoa(m.Rank(opts...)), nil
}

func runRowEchelon(s Step, opts []matrix.Option) (string, error) {
	m, err := s.matrix()
	if err != nil {
		return "", err
	}

	return m.RowEchelon(opts...).String(), nil
}

func runDeterminant(s Step, opts []matrix.Option) (string, error) {
	m, err := s.matrix()
	if err != nil {
		return "", err
	}
	det, err := m.Determinant(opts...)
	if err != nil {
		return "", err
	}

	return scalar(det), nil
}

func runInverse(s Step, opts []matrix.Option) (string, error) {
	m, err := s.matrix()
	if err != nil {
		return "", err
	}
	inv, err := m.Inverse(opts...)
	if err != nil {
		return "", err
	}

	return inv.String(), nil
}

func runProjection(s Step, _ []matrix.Option) (string, error) {
	p, err := projection.Perspective(projection.Radians(s.FOV), s.Ratio, s.Near, s.Far)
	if err != nil {
		return "", err
	}

	return p.String(), nil
}
