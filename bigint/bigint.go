// SPDX-License-Identifier: MIT

// Package bigint - Int value type, constructors and text interface.
//
// Purpose:
//   - Hold a decimal magnitude plus a sign flag with value semantics.
//   - Keep the canonical form as an invariant of every constructor and operation.
//
// Storage:
//   - The magnitude is an immutable Go string. Assigning an Int shares the
//     string; every operation builds a new one, so values never observe each
//     other's updates.

package bigint

import (
	"encoding"
	"fmt"
	"strconv"
)

// Int is an arbitrary-precision signed decimal integer.
//
// The zero value is ready to use and represents 0. Int values are immutable:
// every operation returns a new Int, and copying an Int is cheap.
type Int struct {
	mag string // decimal digits, most significant first; "" reads as "0"
	neg bool   // sign flag; never set when the magnitude is zero
}

// Compile-time assertions for fmt and encoding conformance.
var (
	_ fmt.Stringer             = Int{}
	_ encoding.TextMarshaler   = Int{}
	_ encoding.TextUnmarshaler = (*Int)(nil)
)

// newInt builds an Int from a canonical magnitude, forcing zero non-negative.
func newInt(mag string, neg bool) Int {
	if mag == "" || mag == zeroDigits {
		return Int{mag: zeroDigits}
	}

	return Int{mag: mag, neg: neg}
}

// magnitude returns the digit sequence, mapping the zero value to "0".
func (x Int) magnitude() string {
	if x.mag == "" {
		return zeroDigits
	}

	return x.mag
}

// Zero returns the canonical 0.
func Zero() Int { return Int{mag: zeroDigits} }

// Parse converts decimal text into an Int.
//
// Accepted forms are "0" and -?[1-9][0-9]*. Anything else, including "-0",
// fails with ErrInvalidFormat and no value is produced.
//
// Complexity: O(len(s)).
func Parse(s string) (Int, error) {
	if !validDecimal(s) {
		return Int{}, bigintErrorf(opParse, fmtInvalid(s))
	}
	if s[0] == '-' {
		return newInt(s[1:], true), nil
	}

	return newInt(s, false), nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for literals in tests and examples.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// FromDigit converts a single character '0'..'9' into an Int.
func FromDigit(c byte) (Int, error) {
	if !isDigit(c) {
		return Int{}, bigintErrorf(opFromDigit, fmtInvalid(string(c)))
	}

	return newInt(string(c), false), nil
}

// FromInt64 converts a machine integer. The magnitude is taken via the
// absolute value (math.MinInt64 included) and the sign is recorded separately.
func FromInt64(v int64) Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u // two's complement negation is exact for MinInt64 as well
	}

	return newInt(strconv.FormatUint(u, 10), neg)
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return x.magnitude() == zeroDigits }

// Bool reports whether x is non-zero.
func (x Int) Bool() bool { return !x.IsZero() }

// Digits returns the magnitude of x as decimal text without a sign.
func (x Int) Digits() string { return x.magnitude() }

// Len returns the number of decimal digits of the magnitude (1 for zero).
func (x Int) Len() int { return len(x.magnitude()) }

// String renders x canonically: a '-' for negative non-zero values, then digits.
func (x Int) String() string {
	if x.neg && !x.IsZero() {
		return "-" + x.magnitude()
	}

	return x.magnitude()
}

// SetString assigns the value of s to z.
// On error z is left unchanged.
func (z *Int) SetString(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*z = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// On error z is left unchanged.
func (z *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return bigintErrorf(opUnmarshal, err)
	}
	*z = v

	return nil
}
