// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for the
// unchecked accessors Get/Put and programmer errors in private helpers.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with matrixErrorf/denseErrorf
// ("Op: %w"), so callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> square requirement.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrConstruction is returned when literal rows (or a raw data slice) do not
	// match the declared shape.
	ErrConstruction = errors.New("matrix: literal does not match declared shape")

	// ErrOutOfRange indicates that an index, or a submatrix window, lies outside
	// valid bounds. Checked accessors (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Mat (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation name constants for unified error wrapping.
const (
	opNew       = "New"
	opFromRows  = "NewFromRows"
	opFromData  = "NewFromData"
	opIdentity  = "NewIdentity"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulIP     = "MulInPlace"
	opScale     = "Scale"
	opSubmat    = "Submat"
	opResize    = "Resize"
	opDet       = "Determinant"
	opSetIdent  = "SetIdentity"
	opTranspose = "Transpose"

	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with accessor context and call-site indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Mat.%s(%d,%d): %w", method, row, col, err)
}
