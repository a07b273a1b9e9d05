// Package models: sentinel errors.
//
// Error policy (module-wide convention):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context (offending term, tensor axis) via %w
//     wrapping at the return site, never inside the sentinel itself.

package models

import "errors"

var (
	// ErrBadLattice is returned when a lattice dimension is below one.
	ErrBadLattice = errors.New("models: lattice dimensions must be at least 1")

	// ErrTensorShape is returned when the integral tensors passed to
	// FromTensors disagree on the number of modes.
	ErrTensorShape = errors.New("models: tensor dimensions disagree")

	// ErrShapeMismatch is returned by the array-form inverses when the
	// operator contains a term outside the requested shape.
	ErrShapeMismatch = errors.New("models: operator does not fit the requested array form")
)
