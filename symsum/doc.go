// Package symsum provides the shared weighted-term container behind the
// fermionic and qubit operator algebras.
//
// A Sum maps canonical term keys (strings produced by the owning algebra)
// to complex128 coefficients. It guarantees:
//
//   - no stored coefficient has magnitude ≤ the configured epsilon
//     (near-zero entries are pruned after every mutation),
//   - keys are unique,
//   - iteration order is insertion order (first-insertion wins) and is
//     deterministic but carries no algebraic meaning,
//   - equality is set-of-(key, coefficient) equality within epsilon.
//
// symsum knows nothing about ladder operators or Pauli strings: the
// algebra-specific packages (fermion, qubit) own term encoding and the
// multiplication rules, and use Sum purely for coefficient bookkeeping.
//
// Performance:
//
//   - Accumulate: O(1) amortized (O(k) when a pruned key is evicted)
//   - Add / Scale / Equal: O(k) over stored terms
//
// See fermion and qubit for the public operator APIs.
package symsum
