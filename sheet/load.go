// SPDX-License-Identifier: MIT

package sheet

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/vecxify/bigint"
	"github.com/katalvlaran/vecxify/matrix"
	"github.com/katalvlaran/vecxify/vector"
)

// fileRoot is used to decode all top-level blocks of a worksheet.
type fileRoot struct {
	Integers []*integerBlock `hcl:"integer,block"`
	Matrices []*matrixBlock  `hcl:"matrix,block"`
	Vectors  []*vectorBlock  `hcl:"vector,block"`
	Evals    []*evalBlock    `hcl:"eval,block"`
}

type integerBlock struct {
	Name  string    `hcl:"name,label"`
	Value cty.Value `hcl:"value"`
}

type matrixBlock struct {
	Name string    `hcl:"name,label"`
	Rows cty.Value `hcl:"rows"`
}

type vectorBlock struct {
	Name   string    `hcl:"name,label"`
	Values cty.Value `hcl:"values"`
}

type evalBlock struct {
	Name string   `hcl:"name,label"`
	Op   string   `hcl:"op"`
	Args []string `hcl:"args"`
}

// Step is one evaluation of a worksheet.
type Step struct {
	Name string
	Op   string
	Args []string
}

// Sheet is a decoded worksheet: declared values plus the evaluation steps in
// file order. A Sheet is not safe for concurrent Eval calls.
type Sheet struct {
	values map[string]Value
	order  []string // declaration order, for Names
	steps  []Step
}

// Load reads and decodes the worksheet at path.
func Load(path string) (*Sheet, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrParse, path, diags)
	}

	return decode(path, f)
}

// Parse decodes a worksheet from memory; filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Sheet, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrParse, filename, diags)
	}

	return decode(filename, f)
}

// decode converts the HCL body into a Sheet.
//
// Implementation:
//   - Stage 1: gohcl.DecodeBody into fileRoot.
//   - Stage 2: convert integers, then matrices, then vectors; names must be unique.
//   - Stage 3: record eval steps; their names may not shadow declarations.
func decode(filename string, f *hcl.File) (*Sheet, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrParse, filename, diags)
	}

	s := &Sheet{values: make(map[string]Value)}
	for _, b := range root.Integers {
		x, err := integerFromCty(b.Value)
		if err != nil {
			return nil, sheetErrorf("integer", b.Name, err)
		}
		if err = s.declare(b.Name, IntValue(x)); err != nil {
			return nil, sheetErrorf("integer", b.Name, err)
		}
	}
	for _, b := range root.Matrices {
		m, err := matrixFromCty(b.Rows)
		if err != nil {
			return nil, sheetErrorf("matrix", b.Name, err)
		}
		if err = s.declare(b.Name, MatValue(m)); err != nil {
			return nil, sheetErrorf("matrix", b.Name, err)
		}
	}
	for _, b := range root.Vectors {
		v, err := vectorFromCty(b.Values)
		if err != nil {
			return nil, sheetErrorf("vector", b.Name, err)
		}
		if err = s.declare(b.Name, VecValue(v)); err != nil {
			return nil, sheetErrorf("vector", b.Name, err)
		}
	}

	seen := make(map[string]struct{}, len(root.Evals))
	for _, e := range root.Evals {
		if _, dup := s.values[e.Name]; dup {
			return nil, sheetErrorf("eval", e.Name, ErrDuplicateName)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, sheetErrorf("eval", e.Name, ErrDuplicateName)
		}
		seen[e.Name] = struct{}{}
		s.steps = append(s.steps, Step{Name: e.Name, Op: e.Op, Args: e.Args})
	}

	return s, nil
}

func (s *Sheet) declare(name string, v Value) error {
	if _, dup := s.values[name]; dup {
		return ErrDuplicateName
	}
	s.values[name] = v
	s.order = append(s.order, name)

	return nil
}

// Names returns the declared value names in declaration order
// (integers, then matrices, then vectors).
func (s *Sheet) Names() []string {
	return append([]string(nil), s.order...)
}

// Steps returns a copy of the evaluation steps in file order.
func (s *Sheet) Steps() []Step {
	return append([]Step(nil), s.steps...)
}

// Lookup returns a declared value by name.
func (s *Sheet) Lookup(name string) (Value, bool) {
	v, ok := s.values[name]

	return v, ok
}

// integerFromCty accepts a whole HCL number or a canonical decimal string.
func integerFromCty(v cty.Value) (bigint.Int, error) {
	if v.IsNull() || !v.IsKnown() {
		return bigint.Int{}, ErrValue
	}
	switch v.Type() {
	case cty.String:
		return bigint.Parse(v.AsString())
	case cty.Number:
		bf := v.AsBigFloat()
		if !bf.IsInt() {
			return bigint.Int{}, fmt.Errorf("%s is not a whole number: %w", bf.Text('g', -1), ErrValue)
		}
		bi, _ := bf.Int(new(big.Int))

		return bigint.Parse(bi.String())
	default:
		return bigint.Int{}, fmt.Errorf("got %s, want number or string: %w", v.Type().FriendlyName(), ErrValue)
	}
}

// matrixFromCty converts a list of number lists into a matrix; the shape is
// taken from the first row and every other row is checked against it.
func matrixFromCty(v cty.Value) (*matrix.Mat[float64], error) {
	var rows [][]float64
	if err := fromCty(v, cty.List(cty.List(cty.Number)), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", matrix.ErrInvalidDimensions)
	}

	return matrix.NewFromRows(len(rows), len(rows[0]), rows)
}

// vectorFromCty converts a list of numbers into a vector.
func vectorFromCty(v cty.Value) (*vector.Vec[float64], error) {
	var vals []float64
	if err := fromCty(v, cty.List(cty.Number), &vals); err != nil {
		return nil, err
	}

	return vector.FromSlice(vals)
}

// fromCty converts v to want and decodes it into dst.
func fromCty(v cty.Value, want cty.Type, dst any) error {
	if v.IsNull() || !v.IsWhollyKnown() {
		return ErrValue
	}
	conv, err := convert.Convert(v, want)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValue, err)
	}
	if err = gocty.FromCtyValue(conv, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrValue, err)
	}

	return nil
}
