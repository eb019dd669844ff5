// SPDX-License-Identifier: MIT

// Package matrix - Mat storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the checked surface: At/Set return errors instead of panicking.
//   - Offer an unchecked fast path (Get/Put) for hot loops whose indices are known valid.
//   - Keep algorithmic determinism (fixed i→j loop orders).
//
// Complexity quicksheet:
//   - New/NewFromRows/NewFromData: O(r*c); At/Set/Get/Put: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtRowBreak = "\n"
)

// New creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func New[T Element](rows, cols int) (*Mat[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}

	return newMat[T](rows, cols), nil
}

// newMat allocates without validation; callers guarantee rows, cols > 0.
func newMat[T Element](rows, cols int) *Mat[T] {
	return &Mat[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewFromRows builds a rows×cols matrix from nested literal rows.
// MAIN DESCRIPTION:
//   - Checked literal construction: the outer length must equal rows and
//     every inner length must equal cols.
//
// Implementation:
//   - Stage 1: validate declared shape (ErrInvalidDimensions).
//   - Stage 2: validate the literal against it (ErrConstruction).
//   - Stage 3: copy rows into the flat buffer; the input is not retained.
//
// Errors:
//   - ErrInvalidDimensions, ErrConstruction (wrapped with "NewFromRows").
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFromRows[T Element](rows, cols int, lit [][]T) (*Mat[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	if len(lit) != rows {
		return nil, matrixErrorf(opFromRows,
			fmt.Errorf("got %d rows, want %d: %w", len(lit), rows, ErrConstruction))
	}
	for i, row := range lit {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrConstruction))
		}
	}

	m := newMat[T](rows, cols)
	for i, row := range lit {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewFromData builds a rows×cols matrix from a row-major slice of exactly
// rows*cols elements. The slice is copied.
func NewFromData[T Element](rows, cols int, data []T) (*Mat[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opFromData, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromData,
			fmt.Errorf("got %d elements, want %d: %w", len(data), rows*cols, ErrConstruction))
	}
	m := newMat[T](rows, cols)
	copy(m.data, data)

	return m, nil
}

// MustFromRows is like NewFromRows but panics on error.
// Intended for literals in tests and examples.
func MustFromRows[T Element](rows, cols int, lit [][]T) *Mat[T] {
	m, err := NewFromRows(rows, cols, lit)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the number of rows.
func (m *Mat[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Mat[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Mat[T]) Shape() (int, int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Mat[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Mat[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange for indices outside the matrix.
func (m *Mat[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange for indices outside the matrix; m is unchanged.
func (m *Mat[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Get is the unchecked accessor. The caller guarantees 0 <= row < Rows() and
// 0 <= col < Cols(); violating that is a programming error and may panic or
// silently read a neighbouring row.
func (m *Mat[T]) Get(row, col int) T { return m.data[row*m.c+col] }

// Put is the unchecked counterpart of Set; the same caller contract as Get applies.
func (m *Mat[T]) Put(row, col int, v T) { m.data[row*m.c+col] = v }

// Row returns a copy of row i.
func (m *Mat[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Rows2D returns a deep copy of the contents as nested rows.
func (m *Mat[T]) Rows2D() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy of m.
// Complexity: O(r*c) time and memory.
func (m *Mat[T]) Clone() *Mat[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Mat[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and equal elements.
// Differently shaped matrices are simply unequal. For floating types the
// comparison is exact (NaN != NaN).
func (m *Mat[T]) Equal(o *Mat[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String renders each row as "[e0, e1, ...]" with rows separated by '\n'.
// There is no trailing newline.
func (m *Mat[T]) String() string {
	var sb strings.Builder
	m.Do(func(i, j int, v T) bool {
		if j == 0 {
			if i > 0 {
				sb.WriteString(_fmtRowBreak)
			}
			sb.WriteString(_fmtRowOpen)
		} else {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, v)
		if j == m.c-1 {
			sb.WriteString(_fmtRowClose)
		}

		return true
	})

	return sb.String()
}
