// Package fermion implements the ladder-operator algebra of second
// quantization: weighted sums of ordered creation/annihilation products,
// exact multiplication, and canonical normal ordering.
//
// 🚀 What is a fermionic operator?
//
//	A linear combination of ladder-operator products such as
//	(1+2i)·a†₄a†₃a₉a₁. Factors do not commute: swapping two unequal-mode
//	factors flips the sign, and a_p a†_p = 1 − a†_p a_p splits one term
//	into two. NormalOrdered applies those identities until every term has
//	all creation factors first, each block sorted by descending mode.
//
// ✨ Key features:
//   - text mini-language: "4^ 3^ 9 1" (trailing ^ marks creation)
//   - Mul by exact concatenation — no simplification until NormalOrdered
//   - worklist-based normal ordering (no native recursion, budget-guarded)
//   - HermitianConjugate, Commutator, Anticommutator, Pow
//   - IsNormalOrdered canonical-form check
//
// ⚙️ Usage:
//
//	term, _ := fermion.ParseTerm("4^ 3^ 9 1")
//	op := fermion.NewOperator()
//	op.AddTerm(1+2i, term)
//
//	no, err := op.NormalOrdered()
//	if err != nil {
//	  // ErrTermBudget: the rewrite expanded past the configured limit
//	}
//
// Canonical order:
//
//	a†_p before a_q for every p, q; within each block, descending mode
//	index. a_p a_p (or a†_p a†_p) annihilates the whole term.
//
// Worst case: normal ordering is exponential in term length in the number
// of produced terms (the splitting rule) — bound it with WithMaxTerms.
package fermion
