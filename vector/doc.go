// Package vector provides a fixed-dimension float64 vector with a cached
// Euclidean norm and the arithmetic used by the k-NN classifier.
//
// The dimension of a Vector is fixed when it is constructed. Every binary
// operation checks that both operands share that dimension and returns an
// *ErrDimensionMismatch before doing any arithmetic.
//
// # Usage
//
//	a := vector.MustNew(1, 2)
//	b := vector.MustNew(3, 4)
//	d, _ := vector.ComputeDistance(a, b)
//	h, _ := vector.HadamardProduct(a, b) // [3 8]
//
// Arithmetic is delegated to gonum's floats package. NaN and Inf values are
// not sanitized and propagate through every operation.
package vector
