// Package transform: reverse Jordan–Wigner.
//
// Inverts the JW images factor by factor:
//
//	Z_j ↦ 1 − 2·a†_j a_j
//	X_j ↦ (a_j + a†_j)·Π_{k<j}(1 − 2·a†_k a_k)
//	Y_j ↦ −i·(a_j − a†_j)·Π_{k<j}(1 − 2·a†_k a_k)
//
// The Π products are the fermionic images of the Z prefix strings, so the
// expansion is exponential in the factor's qubit index — acceptable for
// the small systems this inverse is meant for; the fermionic term budget
// converts runaway expansion into ErrTermBudget.

package transform

import (
	"github.com/katalvlaran/qualg/fermion"
	"github.com/katalvlaran/qualg/qubit"
)

// ReverseJordanWigner maps a qubit operator back to the fermionic operator
// whose Jordan–Wigner image it is. Composing with JordanWigner and normal
// ordering both sides reproduces the original operator within tolerance.
func ReverseJordanWigner(op *qubit.Operator) (*fermion.Operator, error) {
	out := fermion.NewOperator(fermion.WithEpsilon(op.Epsilon()))
	var failed error

	op.ForEachTerm(func(t qubit.Term, c complex128) {
		if failed != nil {
			return
		}
		acc := fermion.Identity(fermion.WithEpsilon(op.Epsilon()))
		for _, p := range t {
			img, err := raiseFactor(p)
			if err != nil {
				failed = err
				return
			}
			if acc, err = acc.Mul(img); err != nil {
				failed = err
				return
			}
		}
		out = out.Add(acc.Scale(c))
	})

	if failed != nil {
		return nil, failed
	}
	return out, nil
}

// raiseFactor returns the fermionic image of one Pauli factor.
func raiseFactor(p qubit.Pauli) (*fermion.Operator, error) {
	j := p.Qubit
	if p.Axis == qubit.Z {
		return zImage(j), nil
	}

	ladder := fermion.NewOperator()
	switch p.Axis {
	case qubit.X:
		// a_j + a†_j
		ladder.AddTerm(1, fermion.Term{{Mode: j, Act: fermion.Annihilate}})
		ladder.AddTerm(1, fermion.Term{{Mode: j, Act: fermion.Create}})
	case qubit.Y:
		// −i·(a_j − a†_j)
		ladder.AddTerm(-1i, fermion.Term{{Mode: j, Act: fermion.Annihilate}})
		ladder.AddTerm(1i, fermion.Term{{Mode: j, Act: fermion.Create}})
	}

	// Multiply in the fermionic Z prefix Π_{k<j}(1 − 2n_k).
	out := ladder
	var err error
	for k := 0; k < j; k++ {
		if out, err = out.Mul(zImage(k)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// zImage returns 1 − 2·a†_j a_j, the fermionic image of Z_j.
func zImage(j int) *fermion.Operator {
	return fermion.Identity().Sub(fermion.Number(j).Scale(2))
}
