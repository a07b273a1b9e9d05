// Package transform: the Bravyi–Kitaev mapping.
//
// The transform stores mode occupations in a binary-indexed (Fenwick) tree
// over n leaves, so both occupation and parity lookups touch O(log n)
// qubits. Three index sets per mode p drive the rule:
//
//	update    U(p) — ancestors whose stored parity flips with mode p
//	parity    P(p) — indices whose cumulative parity equals the sum of
//	                 occupations of modes below p
//	remainder R(p) — P(p) minus the flip (occupation) set of p, fixing the
//	                 relative phase of the Y-like half
//
// Rule per ladder factor on mode p:
//
//	a†_p ↦ ½·X_{U(p)}·(X_p Z_{P(p)} − i Y_p Z_{R(p)})
//	a_p  ↦ ½·X_{U(p)}·(X_p Z_{P(p)} + i Y_p Z_{R(p)})
//
// All sets are pure functions of (p, n) and are precomputed into lookup
// tables once per invocation.

package transform

import (
	"fmt"

	"github.com/katalvlaran/qualg/fermion"
	"github.com/katalvlaran/qualg/qubit"
)

// bkSets holds the precomputed index sets of one mode.
type bkSets struct {
	update    []int
	parity    []int
	remainder []int
}

// BravyiKitaev lowers a fermionic operator to a qubit operator over a fixed
// total of n modes/qubits. Returns ErrBadQubitCount on n < 1 and
// ErrDimension when any term references a mode at or above n.
func BravyiKitaev(op *fermion.Operator, n int) (*qubit.Operator, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadQubitCount)
	}
	tables := bkTables(n)

	return lower(op, func(l fermion.Ladder) (*qubit.Operator, error) {
		if l.Mode >= n {
			return nil, fmt.Errorf("factor %q with n=%d: %w", l, n, ErrDimension)
		}
		return bkFactor(l, tables[l.Mode])
	})
}

// bkFactor builds the two-term qubit sum for one ladder factor from its
// precomputed sets.
func bkFactor(l fermion.Ladder, sets bkSets) (*qubit.Operator, error) {
	shared := make([]qubit.Pauli, 0, len(sets.update)+1)
	for _, u := range sets.update {
		shared = append(shared, qubit.Pauli{Qubit: u, Axis: qubit.X})
	}

	xFactors := append(shared[:len(shared):len(shared)], qubit.Pauli{Qubit: l.Mode, Axis: qubit.X})
	for _, p := range sets.parity {
		xFactors = append(xFactors, qubit.Pauli{Qubit: p, Axis: qubit.Z})
	}
	xTerm, err := qubit.NewTerm(xFactors...)
	if err != nil {
		return nil, err
	}

	yFactors := append(shared[:len(shared):len(shared)], qubit.Pauli{Qubit: l.Mode, Axis: qubit.Y})
	for _, r := range sets.remainder {
		yFactors = append(yFactors, qubit.Pauli{Qubit: r, Axis: qubit.Z})
	}
	yTerm, err := qubit.NewTerm(yFactors...)
	if err != nil {
		return nil, err
	}

	cx, cy := ladderPhases(l.Act)
	return qubit.NewOperator().AddTerm(cx, xTerm).AddTerm(cy, yTerm), nil
}

// bkTables precomputes the update/parity/remainder sets for every mode in
// [0, n) via the classic binary-indexed-tree walks.
func bkTables(n int) []bkSets {
	out := make([]bkSets, n)
	for p := 0; p < n; p++ {
		parity := paritySet(p)
		out[p] = bkSets{
			update:    updateSet(p, n),
			parity:    parity,
			remainder: subtract(parity, occupationSet(p)),
		}
	}
	return out
}

// updateSet walks the Fenwick "update" direction: successive ancestors of
// p that accumulate its occupation. p itself is excluded.
func updateSet(p, n int) []int {
	var out []int
	i := p + 1 // Fenwick arithmetic counts from 1
	i += i & -i
	for i <= n {
		out = append(out, i-1)
		i += i & -i
	}
	return out
}

// paritySet walks the Fenwick "prefix" direction: the nodes whose stored
// parities sum to the occupation parity of modes 0..p−1.
func paritySet(p int) []int {
	var out []int
	for i := p; i > 0; i &= i - 1 {
		out = append(out, i-1)
	}
	return out
}

// occupationSet (the flip set plus p itself) lists the nodes whose parities
// sum to the occupation of mode p: p's stored bit corrected by the blocks
// it aggregates.
func occupationSet(p int) []int {
	out := []int{p}
	i := p + 1
	parent := i & (i - 1)
	for i--; i > parent; i &= i - 1 {
		out = append(out, i-1)
	}
	return out
}

// subtract returns the elements of a not present in b.
func subtract(a, b []int) []int {
	drop := make(map[int]struct{}, len(b))
	for _, x := range b {
		drop[x] = struct{}{}
	}
	var out []int
	for _, x := range a {
		if _, ok := drop[x]; !ok {
			out = append(out, x)
		}
	}
	return out
}
