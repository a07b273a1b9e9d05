// Package sparseop: sentinel errors.

package sparseop

import "errors"

// ErrDimension indicates a term references a qubit index at or above the
// declared qubit count.
var ErrDimension = errors.New("sparseop: qubit index exceeds declared count")

// ErrTooLarge indicates the requested qubit count cannot be materialized
// (sparse build or dense escape hatch past its size guard).
var ErrTooLarge = errors.New("sparseop: dimension too large to materialize")

// ErrOutOfRange indicates an At index outside [0, 2^n).
var ErrOutOfRange = errors.New("sparseop: index out of range")

// ErrNotHermitian indicates GroundState was handed a matrix that is not
// self-adjoint within tolerance.
var ErrNotHermitian = errors.New("sparseop: matrix is not hermitian")

// ErrShape indicates MatVec operand lengths disagree with the matrix
// dimension.
var ErrShape = errors.New("sparseop: vector length mismatch")
