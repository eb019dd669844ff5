// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise addition, subtraction and scalar scaling, each in an
//     allocating form (free function) and an in-place form (method).
//   - All loops go through Apply, so traversal order is the same everywhere.
//
// Failure semantics:
//   - In-place forms validate before touching the receiver; on error the
//     receiver is unchanged.

package matrix

// Add returns a new matrix C = A + B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
// Complexity: O(r*c).
func Add[T Element](a, b *Mat[T]) (*Mat[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return a.Clone().addInto(b), nil
}

// Sub returns a new matrix C = A - B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
func Sub[T Element](a, b *Mat[T]) (*Mat[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return a.Clone().subInto(b), nil
}

// Scale returns a new matrix alpha * M.
func Scale[T Element](m *Mat[T], alpha T) (*Mat[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return m.Clone().ScaleInPlace(alpha), nil
}

// AddInPlace performs m += b.
func (m *Mat[T]) AddInPlace(b *Mat[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	m.addInto(b)

	return nil
}

// SubInPlace performs m -= b.
func (m *Mat[T]) SubInPlace(b *Mat[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opSub, err)
	}
	m.subInto(b)

	return nil
}

// ScaleInPlace performs m *= alpha and returns m.
func (m *Mat[T]) ScaleInPlace(alpha T) *Mat[T] {
	return m.Apply(func(_, _ int, v T) T { return v * alpha })
}

// addInto performs m += b without validation; shapes must match.
func (m *Mat[T]) addInto(b *Mat[T]) *Mat[T] {
	return m.Apply(func(i, j int, v T) T { return v + b.data[i*b.c+j] })
}

// subInto performs m -= b without validation.
func (m *Mat[T]) subInto(b *Mat[T]) *Mat[T] {
	return m.Apply(func(i, j int, v T) T { return v - b.data[i*b.c+j] })
}
