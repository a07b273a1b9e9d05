// Package transform: the Jordan–Wigner mapping.
//
// Rule per ladder factor on mode p:
//
//	a†_p ↦ ½·(X_p − iY_p)·Z_{0}⋯Z_{p−1}
//	a_p  ↦ ½·(X_p + iY_p)·Z_{0}⋯Z_{p−1}
//
// The Z prefix carries the parity of all modes below p, so the qubit
// images anticommute exactly like the ladder operators they replace.

package transform

import (
	"github.com/katalvlaran/qualg/fermion"
	"github.com/katalvlaran/qualg/qubit"
)

// JordanWigner lowers a fermionic operator to a qubit operator. No qubit
// count is needed: each factor only references indices at or below its own
// mode.
func JordanWigner(op *fermion.Operator) (*qubit.Operator, error) {
	return lower(op, jwFactor)
}

// jwFactor builds the two-term qubit sum for one ladder factor.
func jwFactor(l fermion.Ladder) (*qubit.Operator, error) {
	// Z prefix over modes 0..p−1, shared by both halves.
	prefix := make([]qubit.Pauli, 0, l.Mode+1)
	for k := 0; k < l.Mode; k++ {
		prefix = append(prefix, qubit.Pauli{Qubit: k, Axis: qubit.Z})
	}

	xTerm, err := qubit.NewTerm(append(prefix[:len(prefix):len(prefix)], qubit.Pauli{Qubit: l.Mode, Axis: qubit.X})...)
	if err != nil {
		return nil, err
	}
	yTerm, err := qubit.NewTerm(append(prefix[:len(prefix):len(prefix)], qubit.Pauli{Qubit: l.Mode, Axis: qubit.Y})...)
	if err != nil {
		return nil, err
	}

	cx, cy := ladderPhases(l.Act)
	return qubit.NewOperator().AddTerm(cx, xTerm).AddTerm(cy, yTerm), nil
}
