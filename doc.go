// Package vecxify is a small numeric toolkit: exact big integers, generic
// dense matrices, row vectors and fixed-modulus integers.
//
// Everything lives in subpackages:
//
//	bigint/  arbitrary-precision signed decimal integers (Int)
//	matrix/  Mat[T]: dense row-major matrices with recursive multiplication,
//	         submatrices, resize, identity and a Gaussian determinant
//	vector/  Vec[T]: 1×N row vectors with dot product and Euclidean length
//	modnum/  ModNum[T, M]: integers kept in [0, N) with N fixed by the type
//	sheet/   HCL worksheets that declare values and evaluate operations
//
// The vecxify command (cmd/vecxify) runs the built-in self-check, evaluates
// worksheets and does one-off big-integer arithmetic:
//
//	vecxify selfcheck
//	vecxify eval sheet/testdata/demo.hcl
//	vecxify calc 123456789012345678901234567890 mul 97
//
// The library packages never log and never panic on bad input; failures are
// reported as wrapped sentinel errors matched with errors.Is.
package vecxify
