// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the Mat value type.
// Errors live in errors.go; constructors and accessors in dense.go.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Element is the set of numeric types a Mat can hold.
// Integer element types use Go's truncating division wherever an operation
// divides (Determinant).
type Element interface {
	constraints.Integer | constraints.Float
}

// Mat is a dense rows×cols matrix stored row-major in a flat slice.
//   - r,c hold dimensions (both > 0 for every constructed Mat).
//   - data has length r*c; element (i,j) lives at i*c + j.
//
// A Mat owns its storage. Operations that return a *Mat allocate a fresh one
// unless documented as in-place; Clone is the explicit deep copy.
// The zero Mat is not usable; construct with New, NewFromRows, NewFromData
// or NewIdentity.
type Mat[T Element] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Mat[float64])(nil)
