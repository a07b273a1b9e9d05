// Package sparseop materializes qubit operators as explicit sparse linear
// operators over the 2^n-dimensional computational basis.
//
// 🚀 How the build works
//
//	Basis states are n-bit strings (bit i = state of qubit i). One Pauli
//	string maps each basis state to exactly one image state:
//
//	  X_q — flip bit q
//	  Y_q — flip bit q, phase +i when the bit was 0, −i when it was 1
//	  Z_q — keep the bit, sign −1 when it is 1
//
//	All factors act on disjoint bits, so a term is one basis permutation
//	composed with a ±1/±i phase — 2^n nonzero entries, accumulated term by
//	term into the sparse structure. The full dense tensor product is never
//	instantiated.
//
// ✨ Key features:
//   - deterministic nonzero enumeration (column-major, rows ascending)
//   - MatVec for matrix-free iterative eigensolvers
//   - Dense() escape hatch into gonum's mat.CDense for small n only
//   - GroundState() — Hermitian eigenpair via gonum's mat.EigenSym on the
//     standard [[A,−B],[B,A]] real-symmetric embedding
//
// ⚙️ Usage:
//
//	m, err := sparseop.FromQubitOperator(qop, sparseop.WithQubits(8))
//	energy, state, err := sparseop.GroundState(m)
//
// Memory is Θ(terms × 2^n); the qubit-count guards convert hopeless sizes
// into ErrTooLarge instead of an OOM.
//
// Errors are sentinels (ErrDimension, ErrTooLarge, ErrOutOfRange,
// ErrNotHermitian, ErrShape); match with errors.Is.
package sparseop
