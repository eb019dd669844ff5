// SPDX-License-Identifier: MIT

package sheet

import (
	"strconv"

	"github.com/katalvlaran/vecxify/bigint"
	"github.com/katalvlaran/vecxify/matrix"
	"github.com/katalvlaran/vecxify/vector"
)

// Kind identifies what a Value holds.
type Kind int

const (
	KindInteger Kind = iota + 1
	KindMatrix
	KindVector
	KindNumber
)

var kindNames = map[Kind]string{
	KindInteger: "integer",
	KindMatrix:  "matrix",
	KindVector:  "vector",
	KindNumber:  "number",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a declared value or an evaluation result. Exactly one payload
// field matching Kind is set.
type Value struct {
	Kind Kind
	Int  bigint.Int
	Mat  *matrix.Mat[float64]
	Vec  *vector.Vec[float64]
	Num  float64
}

// IntValue wraps an integer.
func IntValue(x bigint.Int) Value { return Value{Kind: KindInteger, Int: x} }

// MatValue wraps a matrix.
func MatValue(m *matrix.Mat[float64]) Value { return Value{Kind: KindMatrix, Mat: m} }

// VecValue wraps a vector.
func VecValue(v *vector.Vec[float64]) Value { return Value{Kind: KindVector, Vec: v} }

// NumValue wraps a scalar.
func NumValue(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// String renders the payload with its own formatter.
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return v.Int.String()
	case KindMatrix:
		return v.Mat.String()
	case KindVector:
		return v.Vec.String()
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	default:
		return "<invalid>"
	}
}
