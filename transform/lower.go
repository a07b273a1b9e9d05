// Package transform: shared per-factor lowering loop.
//
// Both fermion→qubit mappings share one shape: each ladder factor lowers
// independently to a two-term qubit sum, and a term's factors multiply
// together left to right, distributing over sums via qubit.Mul. Only the
// per-factor rule differs.

package transform

import (
	"github.com/katalvlaran/qualg/fermion"
	"github.com/katalvlaran/qualg/qubit"
)

// factorRule lowers one ladder factor to its qubit image.
type factorRule func(l fermion.Ladder) (*qubit.Operator, error)

// lower applies rule to every factor of every term, multiplies the
// per-factor images in original factor order, scales by the term's
// coefficient, and accumulates the results.
func lower(op *fermion.Operator, rule factorRule) (*qubit.Operator, error) {
	out := qubit.NewOperator(qubit.WithEpsilon(op.Epsilon()))
	var failed error

	op.ForEachTerm(func(t fermion.Term, c complex128) {
		if failed != nil {
			return
		}
		acc := qubit.Identity(qubit.WithEpsilon(op.Epsilon()))
		for _, l := range t {
			img, err := rule(l)
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

// ladderPhases returns the coefficients of the X-like and Y-like halves of
// a lowered ladder factor: ½ on the X half and ∓i/2 on the Y half
// (− for creation, + for annihilation).
func ladderPhases(act fermion.Action) (cx, cy complex128) {
	if act == fermion.Create {
		return 0.5, -0.5i
	}
	return 0.5, 0.5i
}
