// SPDX-License-Identifier: MIT
// Package matrix - recursive quadrant multiplication.
//
// Purpose:
//   - Mul pads both operands to a common power-of-two square, multiplies them
//     by recursive quartering and truncates the product back to R×U.
//   - The recursion computes the eight half-size products of the textbook
//     block formula (C11 = A11·B11 + A12·B21, ...). It is named after
//     Strassen's divide-and-conquer scheme but does not use the seven-product
//     variant, so the asymptotic cost stays O(n³).
//   - MulNaive is the plain triple loop, kept as the reference the recursive
//     kernel is checked against.
//
// Determinism & Performance:
//   - Fixed recursion and loop orders; integer results are exact and float
//     results are reproducible for a given shape.
//   - Each level allocates its quadrant copies; padding can grow the working
//     size up to 2× per dimension.

package matrix

import "math/bits"

// Mul returns the product C = A × B with shape a.Rows()×b.Cols().
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols() == b.Rows()).
//   - Stage 2: dim = max(bitCeil(R), bitCeil(C), bitCeil(U)); pad both with Resize.
//   - Stage 3: multiply the dim×dim operands recursively.
//   - Stage 4: truncate the product to R×U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(dim³), Space O(dim² log dim) for the recursion's quadrant copies.
func Mul[T Element](a, b *Mat[T]) (*Mat[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	dim := max(bitCeil(a.r), bitCeil(a.c), bitCeil(b.c))
	prod := multiply(a.resize(dim, dim), b.resize(dim, dim))

	return prod.resize(a.r, b.c), nil
}

// MulInPlace performs m = m × b. Because the receiver keeps its shape, b must
// be square with side m.Cols().
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (wrapped with "MulInPlace").
//     On error m is unchanged.
func (m *Mat[T]) MulInPlace(b *Mat[T]) error {
	if err := ValidateSquare(b); err != nil {
		return matrixErrorf(opMulIP, err)
	}
	prod, err := Mul(m, b)
	if err != nil {
		return matrixErrorf(opMulIP, err)
	}
	copy(m.data, prod.data)

	return nil
}

// MulNaive returns A × B using the i→k→j triple loop on the flat buffers.
// It has the same contract as Mul.
func MulNaive[T Element](a, b *Mat[T]) (*Mat[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := newMat[T](a.r, b.c)

	var (
		i, j, k                          int
		av                               T
		rowOffsetA, rowOffsetB, rowOffsR int
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// multiply computes lhs × rhs for n×n operands where n is a power of two.
//
// Implementation:
//   - n == 1: scalar product.
//   - n == 2: the four cells written out directly.
//   - otherwise: split both operands into h×h quadrants (h = n/2), compute
//     Cpq = Ap1·B1q + Ap2·B2q for the four quadrants and stitch them into the
//     result with a single Apply.
func multiply[T Element](lhs, rhs *Mat[T]) *Mat[T] {
	n := lhs.r
	res := newMat[T](n, n)

	switch n {
	case 1:
		res.data[0] = lhs.data[0] * rhs.data[0]
		return res
	case 2:
		l, r := lhs.data, rhs.data
		res.data[0] = l[0]*r[0] + l[1]*r[2]
		res.data[1] = l[0]*r[1] + l[1]*r[3]
		res.data[2] = l[2]*r[0] + l[3]*r[2]
		res.data[3] = l[2]*r[1] + l[3]*r[3]
		return res
	}

	h := n / 2
	a11, a12 := lhs.window(0, 0, h, h), lhs.window(0, h, h, h)
	a21, a22 := lhs.window(h, 0, h, h), lhs.window(h, h, h, h)
	b11, b12 := rhs.window(0, 0, h, h), rhs.window(0, h, h, h)
	b21, b22 := rhs.window(h, 0, h, h), rhs.window(h, h, h, h)

	c11 := multiply(a11, b11).addInto(multiply(a12, b21))
	c12 := multiply(a11, b12).addInto(multiply(a12, b22))
	c21 := multiply(a21, b11).addInto(multiply(a22, b21))
	c22 := multiply(a21, b12).addInto(multiply(a22, b22))

	return res.Apply(func(i, j int, _ T) T {
		switch {
		case i < h && j < h:
			return c11.Get(i, j)
		case i < h:
			return c12.Get(i, j-h)
		case j < h:
			return c21.Get(i-h, j)
		default:
			return c22.Get(i-h, j-h)
		}
	})
}

// bitCeil returns the smallest power of two >= n (n >= 1).
func bitCeil(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}
