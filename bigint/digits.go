// SPDX-License-Identifier: MIT
// Package bigint - digit-string engine.
//
// Purpose:
//   - Stateless helpers over decimal magnitudes (most significant digit first).
//   - Every helper returns a freshly built string; inputs are never modified.
//
// Contract:
//   - Magnitude arguments are canonical: non-empty, '0'..'9' only, no leading
//     zero unless the magnitude is exactly "0".
//   - digitValue/digitChar panic on out-of-domain input. They are reached only
//     through validated magnitudes, so a panic means a bug in this package.

package bigint

import (
	"strings"
)

// zeroDigits is the canonical magnitude of zero.
const zeroDigits = "0"

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// validDecimal reports whether s matches -?[1-9][0-9]*|0.
//
// Behavior highlights:
//   - "" , "-", "-0", "007", "+1", "1_000" are all rejected.
//
// Complexity: O(len(s)).
func validDecimal(s string) bool {
	if s == "" {
		return false
	}
	if s == zeroDigits {
		return true
	}
	if s[0] == '-' {
		s = s[1:]
	}
	// A lone sign, a leading zero or "-0" never form a valid magnitude.
	if s == "" || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}

	return true
}

// digitValue converts '0'..'9' into 0..9.
func digitValue(c byte) int {
	if !isDigit(c) {
		panic("bigint: digitValue: character out of range '0'..'9'")
	}

	return int(c - '0')
}

// digitChar converts 0..9 into '0'..'9'.
func digitChar(d int) byte {
	if d < 0 || d > 9 {
		panic("bigint: digitChar: value out of range 0..9")
	}

	return byte(d) + '0'
}

// trimLeadingZeros drops superfluous leading zeros from b.
// A buffer made only of zeros collapses to "0".
func trimLeadingZeros(b []byte) string {
	i := 0
	for i < len(b) && b[i] == '0' {
		i++
	}
	if i == len(b) {
		return zeroDigits
	}

	return string(b[i:])
}

// cmpMagnitude compares two canonical magnitudes: -1 if x<y, 0 if equal, +1 if x>y.
// Because both sides are unpadded, a longer magnitude is always larger and equal
// lengths compare lexicographically.
func cmpMagnitude(x, y string) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}

	return strings.Compare(x, y)
}

// addMagnitudes returns x+y, adding digit pairs from least to most significant
// with carry propagation.
//
// Complexity: O(max(len(x), len(y))).
func addMagnitudes(x, y string) string {
	if len(x) < len(y) {
		x, y = y, x // x is the longer operand
	}
	out := make([]byte, len(x)+1) // one extra slot for the final carry

	var (
		i, j, k  = len(x) - 1, len(y) - 1, len(out) - 1
		carry, s int
	)
	for ; i >= 0; i, k = i-1, k-1 {
		s = carry + digitValue(x[i])
		if j >= 0 {
			s += digitValue(y[j])
			j--
		}
		carry = s / 10
		out[k] = digitChar(s % 10)
	}
	out[0] = digitChar(carry)

	return trimLeadingZeros(out)
}

// subMagnitudes returns x-y for x >= y, subtracting digit pairs from least to
// most significant with borrow propagation. Cancellation zeros are stripped.
//
// Complexity: O(len(x)).
func subMagnitudes(x, y string) string {
	out := make([]byte, len(x))

	var (
		j         = len(y) - 1
		borrow, d int
	)
	for i := len(x) - 1; i >= 0; i-- {
		d = digitValue(x[i]) - borrow
		if j >= 0 {
			d -= digitValue(y[j])
			j--
		}
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		out[i] = digitChar(d)
	}

	return trimLeadingZeros(out)
}

// mulDigit returns x*d for a single decimal digit d, with carry propagation.
func mulDigit(x string, d int) string {
	if d < 0 || d > 9 {
		panic("bigint: mulDigit: multiplier out of range 0..9")
	}
	if d == 0 || x == zeroDigits {
		return zeroDigits
	}
	out := make([]byte, len(x)+1)

	var carry, s int
	k := len(out) - 1
	for i := len(x) - 1; i >= 0; i, k = i-1, k-1 {
		s = carry + digitValue(x[i])*d
		carry = s / 10
		out[k] = digitChar(s % 10)
	}
	out[0] = digitChar(carry)

	return trimLeadingZeros(out)
}

// shiftDecimal multiplies x by 10^k by appending k zeros.
func shiftDecimal(x string, k int) string {
	if k <= 0 || x == zeroDigits {
		return x
	}

	return x + strings.Repeat("0", k)
}
