// SPDX-License-Identifier: MIT

// Package modnum provides ModNum, an integer kept in the range [0, N) for a
// modulus N fixed by the type.
//
// The modulus is carried by a zero-size type implementing Modulus, so values
// with different moduli are different Go types and cannot be mixed:
//
//	type mod7 struct{}
//	func (mod7) Modulus() int { return 7 }
//
//	a := modnum.New[int, mod7](10) // 3
//	b := a.Add(modnum.New[int, mod7](5))
//	fmt.Println(b) // 1
//
// Intermediate sums and products are computed in 128 bits, so results are
// exact for every integer type and every positive modulus.
package modnum

import (
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Modulus supplies the modulus of a ModNum type. Implementations are expected
// to be stateless; Modulus must return a positive value.
type Modulus[T constraints.Integer] interface {
	Modulus() T
}

// ModNum is an integer modulo N, where N is M's Modulus.
// The zero value is 0.
type ModNum[T constraints.Integer, M Modulus[T]] struct {
	v T
}

// modulus returns N and panics if the Modulus implementation is not positive.
func modulus[T constraints.Integer, M Modulus[T]]() T {
	var m M
	n := m.Modulus()
	if n <= 0 {
		panic("modnum: modulus must be positive")
	}

	return n
}

// New returns v reduced into [0, N). Negative v wrap around: New(-1) == N-1.
func New[T constraints.Integer, M Modulus[T]](v T) ModNum[T, M] {
	n := modulus[T, M]()
	r := v % n
	if r < 0 {
		r += n
	}

	return ModNum[T, M]{v: r}
}

// Modulo returns N for the ModNum type.
func (a ModNum[T, M]) Modulo() T { return modulus[T, M]() }

// Value returns the representative in [0, N).
func (a ModNum[T, M]) Value() T { return a.v }

// Add returns (a + b) mod N.
func (a ModNum[T, M]) Add(b ModNum[T, M]) ModNum[T, M] {
	n := uint64(modulus[T, M]())
	lo, carry := bits.Add64(uint64(a.v), uint64(b.v), 0)

	return ModNum[T, M]{v: T(bits.Rem64(carry, lo, n))}
}

// Sub returns (a - b) mod N.
func (a ModNum[T, M]) Sub(b ModNum[T, M]) ModNum[T, M] {
	if a.v >= b.v {
		return ModNum[T, M]{v: a.v - b.v}
	}
	// a + (N - b) < N because a < b.
	return ModNum[T, M]{v: a.v + (modulus[T, M]() - b.v)}
}

// Neg returns (N - a) mod N.
func (a ModNum[T, M]) Neg() ModNum[T, M] {
	if a.v == 0 {
		return a
	}

	return ModNum[T, M]{v: modulus[T, M]() - a.v}
}

// Mul returns (a * b) mod N.
func (a ModNum[T, M]) Mul(b ModNum[T, M]) ModNum[T, M] {
	n := uint64(modulus[T, M]())
	hi, lo := bits.Mul64(uint64(a.v), uint64(b.v))

	return ModNum[T, M]{v: T(bits.Rem64(hi, lo, n))}
}

// Inc returns a + 1 mod N.
func (a ModNum[T, M]) Inc() ModNum[T, M] { return a.Add(New[T, M](1)) }

// Dec returns a - 1 mod N.
func (a ModNum[T, M]) Dec() ModNum[T, M] { return a.Sub(New[T, M](1)) }

// Equal reports whether a and b hold the same representative.
func (a ModNum[T, M]) Equal(b ModNum[T, M]) bool { return a.v == b.v }

// Less compares representatives.
func (a ModNum[T, M]) Less(b ModNum[T, M]) bool { return a.v < b.v }

// Greater compares representatives.
func (a ModNum[T, M]) Greater(b ModNum[T, M]) bool { return a.v > b.v }

// Bool reports whether a is non-zero.
func (a ModNum[T, M]) Bool() bool { return a.v != 0 }

// String renders the representative in base 10.
func (a ModNum[T, M]) String() string {
	if a.v < 0 {
		return strconv.FormatInt(int64(a.v), 10)
	}

	return strconv.FormatUint(uint64(a.v), 10)
}
