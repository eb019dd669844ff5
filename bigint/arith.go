// SPDX-License-Identifier: MIT
// Package bigint - arithmetic.
//
// Purpose:
//   - Addition and subtraction share one magnitude-combine routine.
//   - Multiplication is schoolbook long multiplication over single digits.
//   - Remainder is computed by repeated subtraction/addition of |divisor|.
//
// Determinism & Performance:
//   - Add/Sub: O(n). Mul: O(n·m). Mod: O(quotient · n), a documented
//     limitation of the repeated-subtraction scheme. Keep quotients small.

package bigint

// combine is the shared magnitude-combine routine behind Add and Sub.
//
// Implementation:
//   - Stage 1: equal signs → add magnitudes, keep the common sign.
//   - Stage 2: different signs → subtract the smaller magnitude from the larger
//     one; the result takes the sign of the larger-magnitude operand.
//   - Stage 3: newInt collapses a full cancellation to the canonical zero.
//
// Complexity: O(max(len(x), len(y))).
func combine(x, y Int) Int {
	xm, ym := x.magnitude(), y.magnitude()
	if x.neg == y.neg {
		return newInt(addMagnitudes(xm, ym), x.neg)
	}

	switch cmpMagnitude(xm, ym) {
	case 0:
		return Zero()
	case 1:
		return newInt(subMagnitudes(xm, ym), x.neg)
	default:
		return newInt(subMagnitudes(ym, xm), y.neg)
	}
}

// Add returns x + y.
func (x Int) Add(y Int) Int { return combine(x, y) }

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return combine(x, y.Neg()) }

// Neg returns -x. Zero stays non-negative.
func (x Int) Neg() Int { return newInt(x.magnitude(), !x.neg) }

// Abs returns |x|.
func (x Int) Abs() Int { return newInt(x.magnitude(), false) }

// Mul returns x * y using schoolbook long multiplication.
//
// Implementation:
//   - Stage 1: for every digit of y, least significant first, multiply the
//     magnitude of x by that digit (mulDigit).
//   - Stage 2: shift the partial product left by its position (shiftDecimal).
//   - Stage 3: accumulate partial products with Add.
//   - Stage 4: sign is the XOR of operand signs, zero forced non-negative.
//
// Complexity: O(len(x)·len(y)) digit steps.
func (x Int) Mul(y Int) Int {
	xm, ym := x.magnitude(), y.magnitude()
	acc := Zero()

	var partial string
	for k := 0; k < len(ym); k++ {
		partial = mulDigit(xm, digitValue(ym[len(ym)-1-k]))
		acc = acc.Add(newInt(shiftDecimal(partial, k), false))
	}

	return newInt(acc.magnitude(), x.neg != y.neg)
}

// Mod returns the remainder of x by d in the range [0, |d|).
//
// Implementation:
//   - Stage 1: reject d == 0 with ErrDivisionUndefined.
//   - Stage 2: while the value is positive, subtract |d|.
//   - Stage 3: while the value is negative, add |d|.
//
// Errors:
//   - ErrDivisionUndefined (wrapped with "Mod").
//
// Complexity: O(|x|/|d|) iterations of O(n) additions. Not meant for large
// quotients.
func (x Int) Mod(d Int) (Int, error) {
	if d.IsZero() {
		return Int{}, bigintErrorf(opMod, ErrDivisionUndefined)
	}
	step := d.Abs()
	r := x
	for r.Sign() > 0 {
		r = r.Sub(step)
	}
	for r.Sign() < 0 {
		r = r.Add(step)
	}

	return r, nil
}

// ModAssign sets z to z mod d. On error z is left unchanged.
func (z *Int) ModAssign(d Int) error {
	r, err := z.Mod(d)
	if err != nil {
		return err
	}
	*z = r

	return nil
}
