// SPDX-License-Identifier: MIT
// Package bigint: sentinel error set.
// Every exported operation that can fail returns one of these sentinels,
// optionally wrapped with an operation tag via bigintErrorf. Callers match
// with errors.Is. Neither condition leaves a partially updated value behind.

package bigint

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned when text is not a canonical decimal integer:
	// empty input, a non-digit character, a leading zero in the magnitude,
	// a lone "-", or "-0".
	ErrInvalidFormat = errors.New("bigint: invalid decimal representation")

	// ErrDivisionUndefined is returned by Mod and ModAssign for a zero divisor.
	ErrDivisionUndefined = errors.New("bigint: remainder by zero is undefined")
)

// Operation tags used in wrapped errors.
const (
	opParse     = "Parse"
	opFromDigit = "FromDigit"
	opMod       = "Mod"
	opUnmarshal = "UnmarshalText"
)

// bigintErrorf wraps err with an operation tag, preserving it for errors.Is.
func bigintErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// fmtInvalid attaches the rejected text to ErrInvalidFormat.
func fmtInvalid(text string) error {
	return fmt.Errorf("%q: %w", text, ErrInvalidFormat)
}
