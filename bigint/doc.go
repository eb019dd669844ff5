// Package bigint implements an arbitrary-precision signed decimal integer.
//
// What & Why:
//
//	Int stores its magnitude as a decimal digit string plus a sign flag, so
//	values parse, print and compare without base conversion. Arithmetic
//	works directly on digit strings: carry/borrow addition, schoolbook
//	multiplication and a repeated-subtraction remainder.
//
// Text form:
//
//	Parse accepts "0" and -?[1-9][0-9]*; everything else (including "-0")
//	is rejected with ErrInvalidFormat. String returns the same canonical form.
//
// Usage:
//
//	a := bigint.MustParse("100")
//	b := a.Mul(bigint.MustParse("100")).Add(bigint.FromInt64(2309))
//	fmt.Println(b) // 12309
//
//	r, err := bigint.FromInt64(-7).Mod(bigint.FromInt64(3)) // r == 2
//
// Concurrency:
//
//	Int is immutable and safe to share between goroutines. The pointer
//	methods (SetString, UnmarshalText, ModAssign) write the receiver and need
//	the usual external synchronization.
//
// Complexity:
//
//	Add/Sub O(n), Mul O(n·m), Mod O(quotient·n).
package bigint
