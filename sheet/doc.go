// Package sheet evaluates HCL worksheets over big integers, matrices and vectors.
//
// A worksheet declares named values and a sequence of evaluations:
//
//	integer "a" { value = "123456789012345678901234567890" }
//	integer "b" { value = 97 }
//	matrix  "m" { rows = [[1, 2], [3, 4]] }
//	vector  "v" { values = [1, 2, 4] }
//
//	eval "r" {
//	  op   = "mod"
//	  args = ["a", "b"]
//	}
//	eval "mm" {
//	  op   = "mul"
//	  args = ["m", "m"]
//	}
//	eval "t" {
//	  op   = "transpose"
//	  args = ["mm"]
//	}
//
// Integers are arbitrary precision (bigint.Int) and may be written as HCL
// numbers or decimal strings. Matrices and vectors hold float64 elements.
// Evaluations run in file order and may refer to the results of earlier
// evaluations by name.
//
// Operations by kind:
//
//	integer: add sub mul mod neg cmp
//	matrix:  add sub mul det transpose identity
//	vector:  add sub dot length
//
// All arguments of an operation must share a kind; det, dot and length
// produce a scalar number.
package sheet
