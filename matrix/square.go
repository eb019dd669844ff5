// SPDX-License-Identifier: MIT
// Package matrix - operations defined only on square matrices.
//
// Every method here validates Rows() == Cols() first and returns ErrNonSquare
// otherwise, leaving the receiver untouched.

package matrix

// NewIdentity returns the n×n identity matrix.
func NewIdentity[T Element](n int) (*Mat[T], error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}
	m := newMat[T](n, n)
	m.setIdentity()

	return m, nil
}

// SetIdentity overwrites m with the identity: ones on the diagonal, zeros elsewhere.
func (m *Mat[T]) SetIdentity() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opSetIdent, err)
	}
	m.setIdentity()

	return nil
}

func (m *Mat[T]) setIdentity() {
	m.Apply(func(i, j int, _ T) T {
		if i == j {
			return 1
		}
		return 0
	})
}

// IdentityLike returns a fresh identity matrix with the shape of m. m is not modified.
func IdentityLike[T Element](m *Mat[T]) (*Mat[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity[T](m.r)
}

// Determinant computes det(m) by Gaussian elimination on a working copy.
// MAIN DESCRIPTION:
//   - Reduce the copy to upper-triangular form; the determinant is the
//     product of the pivots.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: for each column i, if the pivot is zero, scan downward for a
//     row with a non-zero entry in column i and swap it in. If there is none,
//     the determinant is exactly zero.
//   - Stage 3: eliminate rows below the pivot: row_j -= (a_ji / a_ii) * row_i.
//   - Stage 4: multiply the accumulator by the pivot.
//
// Behavior highlights:
//   - Integer element types use truncating division for the elimination
//     factor, so results for integer matrices are generally not the exact
//     determinant unless every factor divides evenly (a 1×1 or triangular
//     matrix, for instance). Use a floating type for exact-in-exact-arithmetic
//     semantics.
//   - A row swap does not change the sign of the result: the value is the
//     plain product of the pivots, so a matrix that needs an odd number of
//     swaps reports -det. [[0,1],[1,0]] yields 1.
//   - A zero row always yields exactly zero.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Determinant").
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func (m *Mat[T]) Determinant() (T, error) {
	if err := ValidateSquare(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDet, err)
	}

	n := m.r
	cp := m.Clone()
	d := cp.data
	det := T(1)

	var i, j, k, next int
	for i = 0; i < n; i++ {
		if d[i*n+i] == 0 {
			for next = i + 1; next < n && d[next*n+i] == 0; next++ {
			}
			if next == n {
				return 0, nil // column has no usable pivot
			}
			swapRows(d, n, i, next)
		}

		pivot := d[i*n+i]
		for j = i + 1; j < n; j++ {
			factor := d[j*n+i] / pivot
			if factor == 0 {
				continue
			}
			for k = i; k < n; k++ {
				d[j*n+k] -= factor * d[i*n+k]
			}
		}
		det *= pivot
	}

	return det, nil
}

// swapRows exchanges rows a and b of an n-column flat buffer.
func swapRows[T Element](d []T, n, a, b int) {
	ra, rb := d[a*n:(a+1)*n], d[b*n:(b+1)*n]
	for k := range ra {
		ra[k], rb[k] = rb[k], ra[k]
	}
}

// Determinant is the free-function form of (*Mat).Determinant.
func Determinant[T Element](m *Mat[T]) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDet, err)
	}

	return m.Determinant()
}
