// SPDX-License-Identifier: MIT

// Package vector provides Vec, a 1×N row vector built on matrix.Mat.
//
// A Vec delegates storage and element-wise arithmetic to a 1×N matrix and
// adds the operations that only make sense for vectors: the dot product and
// the Euclidean length. Errors are the matrix sentinels
// (matrix.ErrDimensionMismatch, matrix.ErrOutOfRange,
// matrix.ErrInvalidDimensions), wrapped with the vector operation name.
package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecxify/matrix"
)

const (
	opNew   = "vector.New"
	opFrom  = "vector.FromSlice"
	opAt    = "Vec.At"
	opSet   = "Vec.Set"
	opDot   = "Vec.Dot"
	opAdd   = "Vec.Add"
	opSub   = "Vec.Sub"
	opAsVec = "vector.FromMatrix"
)

func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Vec is a row vector of N elements. It owns a 1×N matrix.
//
// Methods that return an error (At, Set, Dot, Add, Sub) report
// matrix.ErrNilMatrix for a nil receiver or argument. The remaining methods
// require a non-nil receiver.
type Vec[T matrix.Element] struct {
	m *matrix.Mat[T]
}

// New returns a zero vector of length n.
func New[T matrix.Element](n int) (*Vec[T], error) {
	m, err := matrix.New[T](1, n)
	if err != nil {
		return nil, vectorErrorf(opNew, err)
	}

	return &Vec[T]{m: m}, nil
}

// FromSlice copies vals into a new vector. An empty slice is rejected with
// matrix.ErrInvalidDimensions.
func FromSlice[T matrix.Element](vals []T) (*Vec[T], error) {
	m, err := matrix.NewFromData(1, len(vals), vals)
	if err != nil {
		return nil, vectorErrorf(opFrom, err)
	}

	return &Vec[T]{m: m}, nil
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice[T matrix.Element](vals ...T) *Vec[T] {
	v, err := FromSlice(vals)
	if err != nil {
		panic(err)
	}

	return v
}

// FromMatrix copies a 1×N matrix into a vector.
func FromMatrix[T matrix.Element](m *matrix.Mat[T]) (*Vec[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, vectorErrorf(opAsVec, err)
	}
	if m.Rows() != 1 {
		return nil, vectorErrorf(opAsVec, matrix.ErrDimensionMismatch)
	}

	return &Vec[T]{m: m.Clone()}, nil
}

// Len returns N.
func (v *Vec[T]) Len() int { return v.m.Cols() }

// At returns element i or matrix.ErrOutOfRange.
func (v *Vec[T]) At(i int) (T, error) {
	if err := matrix.ValidateNotNil(v.mat()); err != nil {
		var zero T
		return zero, vectorErrorf(opAt, err)
	}
	x, err := v.m.At(0, i)
	if err != nil {
		return x, vectorErrorf(opAt, err)
	}

	return x, nil
}

// Set assigns element i or returns matrix.ErrOutOfRange.
func (v *Vec[T]) Set(i int, x T) error {
	if err := matrix.ValidateNotNil(v.mat()); err != nil {
		return vectorErrorf(opSet, err)
	}
	if err := v.m.Set(0, i, x); err != nil {
		return vectorErrorf(opSet, err)
	}

	return nil
}

// Get is the unchecked accessor; the caller guarantees 0 <= i < Len().
func (v *Vec[T]) Get(i int) T { return v.m.Get(0, i) }

// Put is the unchecked counterpart of Set.
func (v *Vec[T]) Put(i int, x T) { v.m.Put(0, i, x) }

// Values returns a copy of the elements.
func (v *Vec[T]) Values() []T {
	row, _ := v.m.Row(0) // row 0 always exists

	return row
}

// Dot returns Σ v[i]*o[i], accumulated in T.
//
// Errors: matrix.ErrDimensionMismatch when the lengths differ.
func (v *Vec[T]) Dot(o *Vec[T]) (T, error) {
	var sum T
	if err := matrix.ValidateSameShape(v.mat(), o.mat()); err != nil {
		return sum, vectorErrorf(opDot, err)
	}
	for i := 0; i < v.Len(); i++ {
		sum += v.Get(i) * o.Get(i)
	}

	return sum, nil
}

// Length returns the Euclidean norm. The sum of squares is accumulated in T
// (so integer vectors can overflow for large entries) and converted to
// float64 before the square root.
func (v *Vec[T]) Length() float64 {
	var sum T
	v.m.Do(func(_, _ int, x T) bool {
		sum += x * x
		return true
	})

	return math.Sqrt(float64(sum))
}

// Add returns v + o.
func (v *Vec[T]) Add(o *Vec[T]) (*Vec[T], error) {
	m, err := matrix.Add(v.mat(), o.mat())
	if err != nil {
		return nil, vectorErrorf(opAdd, err)
	}

	return &Vec[T]{m: m}, nil
}

// Sub returns v - o.
func (v *Vec[T]) Sub(o *Vec[T]) (*Vec[T], error) {
	m, err := matrix.Sub(v.mat(), o.mat())
	if err != nil {
		return nil, vectorErrorf(opSub, err)
	}

	return &Vec[T]{m: m}, nil
}

// Scale returns alpha * v.
func (v *Vec[T]) Scale(alpha T) *Vec[T] {
	return &Vec[T]{m: v.m.Clone().ScaleInPlace(alpha)}
}

// Fill sets every element to x and returns v.
func (v *Vec[T]) Fill(x T) *Vec[T] {
	v.m.Fill(x)

	return v
}

// Clone returns a deep copy.
func (v *Vec[T]) Clone() *Vec[T] { return &Vec[T]{m: v.m.Clone()} }

// Equal reports whether v and o have the same length and elements.
// Two nil vectors are equal.
func (v *Vec[T]) Equal(o *Vec[T]) bool { return v.mat().Equal(o.mat()) }

// Matrix returns a 1×N copy of the vector as a matrix.
func (v *Vec[T]) Matrix() *matrix.Mat[T] { return v.m.Clone() }

// String renders the vector as "[e0, e1, ...]".
func (v *Vec[T]) String() string { return v.m.String() }

// mat returns the backing matrix, or nil for a nil vector.
func (v *Vec[T]) mat() *matrix.Mat[T] {
	if v == nil {
		return nil
	}

	return v.m
}
