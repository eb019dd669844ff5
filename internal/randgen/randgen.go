// SPDX-License-Identifier: MIT

// Package randgen builds reproducible random inputs (decimal strings, numeric
// slices, permutations) for property tests, benchmarks and the self-check.
//
// Every generator takes an explicit *rand.Rand; nothing reads the clock or the
// global source. A *rand.Rand is not safe for concurrent use, so give each
// goroutine or trial its own stream with Derive.
package randgen

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// DefaultSeed replaces a zero seed.
const DefaultSeed int64 = 1

// Number is the set of element types Slice can produce.
type Number interface {
	constraints.Integer | constraints.Float
}

// New returns a generator for seed (DefaultSeed when seed is 0).
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// golden is the SplitMix64 increment.
const golden uint64 = 0x9e3779b97f4a7c15

// mix64 is the SplitMix64 output function.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

// Derive returns a new generator for sub-stream id of base. One value is
// drawn from base, so deriving the same id twice gives different streams;
// a nil base uses DefaultSeed as the parent and is fully reproducible.
func Derive(base *rand.Rand, id uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	seed := mix64(uint64(parent) + golden*(id+1))

	return rand.New(rand.NewSource(int64(seed)))
}

// Decimal returns a canonical signed decimal string of 1..maxDigits digits.
// About half of the non-zero results are negative and "0" is never signed.
// maxDigits < 1 yields "0".
func Decimal(r *rand.Rand, maxDigits int) string {
	if maxDigits < 1 {
		return "0"
	}
	n := 1 + r.Intn(maxDigits)
	buf := make([]byte, 0, n+1)
	if r.Intn(2) == 1 {
		buf = append(buf, '-')
	}
	lead := r.Intn(10)
	if lead == 0 {
		return "0"
	}
	buf = append(buf, byte('0'+lead))
	for i := 1; i < n; i++ {
		buf = append(buf, byte('0'+r.Intn(10)))
	}

	return string(buf)
}

// Slice returns n values drawn uniformly from the integer range [lo, hi],
// converted to T. n <= 0 or hi < lo yields nil.
func Slice[T Number](r *rand.Rand, n, lo, hi int) []T {
	if n <= 0 || hi < lo {
		return nil
	}
	out := make([]T, n)
	span := hi - lo + 1
	for i := range out {
		out[i] = T(lo + r.Intn(span))
	}

	return out
}

// Shuffle permutes a in place. A nil r uses the DefaultSeed stream.
func Shuffle[T any](a []T, r *rand.Rand) {
	if r == nil {
		r = New(0)
	}
	r.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
}
