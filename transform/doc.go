// Package transform lowers fermionic operators onto qubit operators and
// back: Jordan–Wigner, Bravyi–Kitaev, and the reverse Jordan–Wigner map.
//
// 🚀 Why transforms?
//
//	Quantum hardware speaks Pauli strings, not ladder operators. Both
//	mappings preserve the canonical anticommutation relations exactly:
//
//	  Jordan–Wigner  a†_p ↦ ½(X_p − iY_p)·Z_{p−1}⋯Z_0
//	                 — occupation is local, parity is a Z-prefix string.
//	  Bravyi–Kitaev  a†_p ↦ ½·X_{U(p)}·(X_p Z_{P(p)} − i Y_p Z_{R(p)})
//	                 — occupation and parity both live in a binary-indexed
//	                 (Fenwick) tree over n modes, trading the O(p) Z-string
//	                 for O(log n) index sets.
//
// ✨ Key features:
//   - JordanWigner needs no qubit count; BravyiKitaev requires a fixed n
//     and precomputes the update/parity/remainder sets per mode
//   - ReverseJordanWigner inverts the JW image back to ladder operators
//     (Z_j ↦ 1 − 2a†_j a_j, X_j/Y_j ↦ ladder combinations under Z-strings)
//   - per-factor lowering composed with exact Pauli products, so every
//     anticommutation identity survives the trip
//
// ⚙️ Usage:
//
//	qop, err := transform.JordanWigner(fermionic)
//	bkop, err := transform.BravyiKitaev(fermionic, 8)
//	back, err := transform.ReverseJordanWigner(qop)
//
// Errors are sentinels (ErrDimension, ErrBadQubitCount); match with
// errors.Is. Budget errors from the underlying algebras propagate as-is.
package transform
