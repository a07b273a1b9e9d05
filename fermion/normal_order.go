// Package fermion: worklist-based normal ordering.
//
// Algorithm (insertion-sort with relation expansion):
//
//	Keep a stack of pending (factors, coefficient) pairs. Pop one, scan
//	for the first adjacent pair violating canonical order, and rewrite:
//
//	  a_q a†_p , a_q a_p , a†_q a†_p  (p ≠ q) → swap, negate coefficient
//	  a_p a†_p                              → split: pair deleted (coeff kept)
//	                                           + pair swapped (coeff negated)
//	  a_p a_p , a†_p a†_p                   → drop the whole term (Pauli exclusion)
//
//	A pair with no violation is accumulated into the result. Every branch
//	strictly reduces (violations, length), so the loop terminates; the
//	splitting rule makes the produced term count worst-case exponential in
//	term length, which the budget guard converts into ErrTermBudget.
//
// Complexity:
//   - Time: O(produced terms × term length²) — the scan restarts per rewrite.
//   - Memory: O(stack depth × term length); the stack replaces native
//     recursion so depth never hits the goroutine stack.

package fermion

import "fmt"

// pending is one in-flight (factors, coefficient) rewrite branch.
type pending struct {
	fs Term
	c  complex128
}

// NormalOrdered rewrites every term into canonical form — all creation
// factors first, each block sorted by descending mode index — and returns
// the equivalent operator. The rewrite is an exact algebraic identity.
//
// Returns ErrTermBudget when accumulated result terms plus in-flight
// branches exceed the operator's term budget.
func (o *Operator) NormalOrdered() (*Operator, error) {
	out := o.derive()
	var stack []pending

	for _, key := range o.sum.Keys() {
		stack = append(stack, pending{fs: mustTerm(key), c: o.sum.Coefficient(key)})

		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			i := p.fs.violationAt()
			if i < 0 {
				out.sum.Accumulate(p.fs.Key(), p.c)
				continue
			}

			a, b := p.fs[i], p.fs[i+1]
			switch {
			case a.Mode == b.Mode && a.Act == b.Act:
				// a_p a_p = a†_p a†_p = 0: the term vanishes.
				continue

			case a.Mode == b.Mode:
				// a_p a†_p = 1 − a†_p a_p: split into deleted and swapped branches.
				deleted := make(Term, 0, len(p.fs)-2)
				deleted = append(deleted, p.fs[:i]...)
				deleted = append(deleted, p.fs[i+2:]...)
				// Swapped branch below the deleted one: shorter branches
				// resolve first, so identity-like terms render first.
				stack = append(stack, pending{fs: swapped(p.fs, i), c: -p.c})
				stack = append(stack, pending{fs: deleted, c: p.c})

			default:
				// Unequal modes anticommute exactly: swap and negate.
				stack = append(stack, pending{fs: swapped(p.fs, i), c: -p.c})
			}

			if out.sum.Len()+len(stack) > o.maxTerms {
				return nil, fmt.Errorf("normal ordering %q: %w", p.fs, ErrTermBudget)
			}
		}
	}
	return out, nil
}

// swapped returns a copy of fs with factors i and i+1 exchanged.
func swapped(fs Term, i int) Term {
	out := make(Term, len(fs))
	copy(out, fs)
	out[i], out[i+1] = out[i+1], out[i]
	return out
}
