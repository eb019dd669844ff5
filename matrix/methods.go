// SPDX-License-Identifier: MIT
// Package matrix - traversal and shape-changing methods.
//
// Purpose:
//   - Apply is the single in-place mapping primitive; Fill, the element-wise
//     operators and the multiplication stitch are all expressed through it.
//   - Do is the read-only visitor (used by String and the vector length).
//   - Transpose, Submat and Resize always materialize a fresh matrix.
//
// Determinism & Performance:
//   - Fixed i→j traversal order; the callback sees cells in row-major order.

package matrix

import "fmt"

// Apply replaces every element with f(i, j, current) in row-major order and
// returns m for chaining. f may capture and mutate outer state; it is called
// exactly Rows()*Cols() times.
//
// Complexity: O(r*c) calls of f.
func (m *Mat[T]) Apply(f func(i, j int, v T) T) *Mat[T] {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}

	return m
}

// Do visits every element in row-major order without modifying m.
// Returning false from f stops the walk early.
func (m *Mat[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Fill sets every element to v and returns m.
func (m *Mat[T]) Fill(v T) *Mat[T] {
	return m.Apply(func(_, _ int, _ T) T { return v })
}

// Transpose returns a new Cols()×Rows() matrix with t(i,j) = m(j,i).
func (m *Mat[T]) Transpose() *Mat[T] {
	res := newMat[T](m.c, m.r)
	res.Apply(func(i, j int, _ T) T { return m.data[j*m.c+i] })

	return res
}

// Submat copies the rows×cols window whose top-left corner is (row, col).
//
// Implementation:
//   - Stage 1: reject non-positive window sizes (ErrInvalidDimensions).
//   - Stage 2: reject windows that do not fit: row+rows > Rows(),
//     col+cols > Cols() or negative offsets (ErrOutOfRange).
//   - Stage 3: copy the window; the result shares no storage with m.
//
// Complexity: O(rows*cols).
func (m *Mat[T]) Submat(row, col, rows, cols int) (*Mat[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opSubmat, ErrInvalidDimensions)
	}
	if row < 0 || col < 0 || row+rows > m.r || col+cols > m.c {
		return nil, matrixErrorf(opSubmat,
			fmt.Errorf("window (%d,%d)+%dx%d exceeds %dx%d: %w", row, col, rows, cols, m.r, m.c, ErrOutOfRange))
	}

	return m.window(row, col, rows, cols), nil
}

// window is Submat without validation; callers guarantee the window fits.
func (m *Mat[T]) window(row, col, rows, cols int) *Mat[T] {
	res := newMat[T](rows, cols)
	for i := 0; i < rows; i++ {
		src := (row+i)*m.c + col
		copy(res.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return res
}

// Resize returns a rows×cols copy of m: cells inside both shapes keep their
// value, cells outside m are zero, and cells of m outside the target are
// dropped. Used to pad operands to a power-of-two size and to truncate the
// product back.
//
// Errors:
//   - ErrInvalidDimensions for a non-positive target shape.
func (m *Mat[T]) Resize(rows, cols int) (*Mat[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opResize, ErrInvalidDimensions)
	}

	return m.resize(rows, cols), nil
}

// resize is Resize without validation.
func (m *Mat[T]) resize(rows, cols int) *Mat[T] {
	res := newMat[T](rows, cols)
	w := min(cols, m.c)
	for i := 0; i < min(rows, m.r); i++ {
		copy(res.data[i*cols:i*cols+w], m.data[i*m.c:i*m.c+w])
	}

	return res
}

// Transpose is the free-function form of (*Mat).Transpose.
func Transpose[T Element](m *Mat[T]) (*Mat[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}
