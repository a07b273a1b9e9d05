// Package qubit implements the Pauli-operator algebra: weighted sums of
// Pauli strings with exact ±i phase bookkeeping.
//
// 🚀 What is a qubit operator?
//
//	A linear combination of Pauli strings — products of single-qubit X, Y, Z
//	factors on pairwise-distinct qubit indices. Pauli strings multiply via
//	the cyclic table (X·Y = iZ, Y·Z = iX, Z·X = iY and the conjugate
//	orderings with −i), and every string is self-adjoint, so hermitian
//	conjugation only conjugates coefficients.
//
// ✨ Key features:
//   - canonical terms: factors sorted by ascending qubit index, unique per index
//   - exact products: same axis cancels to identity, differing axes pick up ±i
//   - text mini-language: "X0 Y1 Z12" (axis letter immediately followed by index)
//   - Commutator / Anticommutator helpers over the shared sum container
//   - Weight — the number of non-identity factors — to bound simulation cost
//
// ⚙️ Usage:
//
//	x, _ := qubit.ParseTerm("X0")
//	y, _ := qubit.ParseTerm("Y0")
//	a := qubit.NewOperator()
//	a.AddTerm(1, x)
//	b := qubit.NewOperator()
//	b.AddTerm(1, y)
//	comm, err := qubit.Commutator(a, b) // (2i) [Z0]
//
// Determinism:
//   - term keys are the canonical sorted factor rendering,
//   - operator iteration and String() follow insertion order.
//
// Errors are sentinels (ErrParse, ErrDuplicateQubit, ErrBadQubit,
// ErrNegativePower, ErrTermBudget); match with errors.Is.
package qubit
