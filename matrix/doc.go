// Package matrix provides a generic dense matrix, Mat[T], over integer and
// floating-point element types.
//
// What & Why:
//
//	Mat stores its elements row-major in one flat slice. Shapes are runtime
//	values: every operation that needs compatible shapes validates them and
//	returns a sentinel error (ErrDimensionMismatch, ErrNonSquare, ...) instead
//	of relying on the type system.
//
// The matrix package provides:
//
//   - Construction from nested literal rows (checked against the declared
//     shape), a raw row-major slice, zeros or the identity.
//   - Checked accessors (At/Set) and unchecked ones (Get/Put).
//   - Apply (in-place map) and Do (read-only visitor) as the traversal primitives.
//   - Submat, Resize and Transpose, all returning fresh matrices.
//   - Element-wise Add/Sub/Scale with in-place variants.
//   - Mul: recursive quadrant multiplication on operands padded to a
//     power-of-two square, with MulNaive as the reference triple loop.
//   - Square-only Determinant (Gaussian elimination) and SetIdentity.
//
// Usage:
//
//	a := matrix.MustFromRows(2, 2, [][]float64{{1, 2}, {3, 4}})
//	d, _ := a.Determinant() // -2
//	p, _ := matrix.Mul(a, a)
//	fmt.Println(p)
//	// [7, 10]
//	// [15, 22]
//
// Complexity:
//
//	At/Set/Get/Put O(1); Apply/Do/Clone/Add/Sub/Scale O(r*c);
//	Mul O(dim³) with dim the padded power-of-two size; Determinant O(n³).
//
// Concurrency:
//
//	A Mat owns its storage. Concurrent reads are safe; any mutation
//	(Set, Put, Apply, the InPlace methods) needs external synchronization.
package matrix
