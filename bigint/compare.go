// SPDX-License-Identifier: MIT

package bigint

// Cmp compares x and y and returns -1, 0 or +1.
//
// Ordering rules:
//   - differing signs: the negative operand is smaller;
//   - same sign, different digit counts: the shorter magnitude is smaller for
//     non-negative values and larger for negative ones;
//   - same digit count: lexicographic order of the digits, flipped when negative.
func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmpMagnitude(x.magnitude(), y.magnitude())
	if x.neg {
		return -c
	}

	return c
}

// Compare is Cmp as a free function, usable with slices.SortFunc.
func Compare(x, y Int) int { return x.Cmp(y) }

// Equal reports whether x and y have the same sign and digits.
func (x Int) Equal(y Int) bool {
	return x.neg == y.neg && x.magnitude() == y.magnitude()
}

// Less reports x < y.
func (x Int) Less(y Int) bool { return x.Cmp(y) < 0 }

// LessOrEqual reports x <= y.
func (x Int) LessOrEqual(y Int) bool { return x.Cmp(y) <= 0 }

// Greater reports x > y.
func (x Int) Greater(y Int) bool { return x.Cmp(y) > 0 }

// GreaterOrEqual reports x >= y.
func (x Int) GreaterOrEqual(y Int) bool { return x.Cmp(y) >= 0 }
