// SPDX-License-Identifier: MIT

package sheet

import (
	"errors"
	"fmt"
)

var (
	// ErrParse wraps HCL parse and decode diagnostics.
	ErrParse = errors.New("sheet: invalid worksheet")

	// ErrUnknownValue is returned when an eval refers to a name that is not
	// declared (or not yet evaluated).
	ErrUnknownValue = errors.New("sheet: unknown value")

	// ErrUnknownOp is returned for an op name outside the supported set.
	ErrUnknownOp = errors.New("sheet: unknown operation")

	// ErrArity is returned when an op receives the wrong number of arguments.
	ErrArity = errors.New("sheet: wrong number of arguments")

	// ErrKind is returned when argument kinds are mixed or the op is not
	// defined for the argument kind.
	ErrKind = errors.New("sheet: operation not defined for argument kind")

	// ErrDuplicateName is returned when two declarations or evals share a name.
	ErrDuplicateName = errors.New("sheet: duplicate name")

	// ErrValue is returned when a declared literal cannot be converted.
	ErrValue = errors.New("sheet: invalid literal")
)

// sheetErrorf tags err with the block or eval it came from.
func sheetErrorf(kind, name string, err error) error {
	return fmt.Errorf("%s %q: %w", kind, name, err)
}
