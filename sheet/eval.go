// SPDX-License-Identifier: MIT

package sheet

import (
	"context"
	"fmt"

	"github.com/katalvlaran/vecxify/bigint"
	"github.com/katalvlaran/vecxify/matrix"
)

// Result is the outcome of one evaluation step.
type Result struct {
	Name  string
	Op    string
	Value Value
}

// opFunc computes an operation over arguments of one kind.
type opFunc func(args []Value) (Value, error)

// opSpec describes an operation: its arity and an implementation per kind.
type opSpec struct {
	arity  int
	byKind map[Kind]opFunc
}

var ops = map[string]opSpec{
	"add": {2, map[Kind]opFunc{
		KindInteger: func(a []Value) (Value, error) { return IntValue(a[0].Int.Add(a[1].Int)), nil },
		KindMatrix:  matBinary(matrix.Add[float64]),
		KindVector: func(a []Value) (Value, error) {
			v, err := a[0].Vec.Add(a[1].Vec)
			return VecValue(v), err
		},
	}},
	"sub": {2, map[Kind]opFunc{
		KindInteger: func(a []Value) (Value, error) { return IntValue(a[0].Int.Sub(a[1].Int)), nil },
		KindMatrix:  matBinary(matrix.Sub[float64]),
		KindVector: func(a []Value) (Value, error) {
			v, err := a[0].Vec.Sub(a[1].Vec)
			return VecValue(v), err
		},
	}},
	"mul": {2, map[Kind]opFunc{
		KindInteger: func(a []Value) (Value, error) { return IntValue(a[0].Int.Mul(a[1].Int)), nil },
		KindMatrix:  matBinary(matrix.Mul[float64]),
	}},
	"mod": {2, map[Kind]opFunc{
		KindInteger: func(a []Value) (Value, error) {
			r, err := a[0].Int.Mod(a[1].Int)
			return IntValue(r), err
		},
	}},
	"neg": {1, map[Kind]opFunc{
		KindInteger: func(a []Value) (Value, error) { return IntValue(a[0].Int.Neg()), nil },
	}},
	"cmp": {2, map[Kind]opFunc{
		KindInteger: func(a []Value) (Value, error) {
			return IntValue(bigint.FromInt64(int64(a[0].Int.Cmp(a[1].Int)))), nil
		},
	}},
	"det": {1, map[Kind]opFunc{
		KindMatrix: func(a []Value) (Value, error) {
			d, err := a[0].Mat.Determinant()
			return NumValue(d), err
		},
	}},
	"transpose": {1, map[Kind]opFunc{
		KindMatrix: func(a []Value) (Value, error) { return MatValue(a[0].Mat.Transpose()), nil },
	}},
	"identity": {1, map[Kind]opFunc{
		KindMatrix: func(a []Value) (Value, error) {
			id, err := matrix.IdentityLike(a[0].Mat)
			return MatValue(id), err
		},
	}},
	"dot": {2, map[Kind]opFunc{
		KindVector: func(a []Value) (Value, error) {
			d, err := a[0].Vec.Dot(a[1].Vec)
			return NumValue(d), err
		},
	}},
	"length": {1, map[Kind]opFunc{
		KindVector: func(a []Value) (Value, error) { return NumValue(a[0].Vec.Length()), nil },
	}},
}

func matBinary(f func(a, b *matrix.Mat[float64]) (*matrix.Mat[float64], error)) opFunc {
	return func(a []Value) (Value, error) {
		m, err := f(a[0].Mat, a[1].Mat)
		return MatValue(m), err
	}
}

// Apply evaluates a single operation over explicit values.
//
// Errors:
//   - ErrUnknownOp, ErrArity, ErrKind, plus any error of the underlying
//     operation (bigint.ErrDivisionUndefined, matrix.ErrDimensionMismatch, ...).
func Apply(op string, args ...Value) (Value, error) {
	def, ok := ops[op]
	if !ok {
		return Value{}, fmt.Errorf("%q: %w", op, ErrUnknownOp)
	}
	if len(args) != def.arity {
		return Value{}, fmt.Errorf("%s takes %d, got %d: %w", op, def.arity, len(args), ErrArity)
	}
	kind := args[0].Kind
	for _, a := range args[1:] {
		if a.Kind != kind {
			return Value{}, fmt.Errorf("%s: mixed %s and %s: %w", op, kind, a.Kind, ErrKind)
		}
	}
	fn, ok := def.byKind[kind]
	if !ok {
		return Value{}, fmt.Errorf("%s on %s: %w", op, kind, ErrKind)
	}

	return fn(args)
}

// Eval runs every step in file order and returns their results. A step's
// result becomes visible to later steps under its name. Evaluation stops at
// the first failing step; results computed before it are returned with the
// error. ctx is checked between steps.
func (s *Sheet) Eval(ctx context.Context) ([]Result, error) {
	env := make(map[string]Value, len(s.values)+len(s.steps))
	for k, v := range s.values {
		env[k] = v
	}

	results := make([]Result, 0, len(s.steps))
	for _, st := range s.steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		args := make([]Value, len(st.Args))
		for i, name := range st.Args {
			v, ok := env[name]
			if !ok {
				return results, sheetErrorf("eval", st.Name, fmt.Errorf("%q: %w", name, ErrUnknownValue))
			}
			args[i] = v
		}
		v, err := Apply(st.Op, args...)
		if err != nil {
			return results, sheetErrorf("eval", st.Name, err)
		}
		env[st.Name] = v
		results = append(results, Result{Name: st.Name, Op: st.Op, Value: v})
	}

	return results, nil
}
