// Package models: array-form inverses for restricted operators.
//
// Contract:
//   - ToQuadratic recognizes constant + Σ T[p][q]·a†_p a_q,
//   - ToDiagonalCoulomb additionally recognizes density-density products,
//     returning a symmetric interaction matrix W with
//     H = Constant + Σ T[p][q]·a†_p a_q + ½ Σ_{p≠q} W[p][q]·n_p n_q,
//   - both normal order the input first, so algebraically equivalent
//     writings of the same operator convert identically,
//   - any term outside the recognized shape fails with ErrShapeMismatch.

package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qualg/fermion"
)

// Quadratic is the array form of a purely quadratic operator.
type Quadratic struct {
	// Constant is the coefficient of the identity term.
	Constant complex128
	// OneBody holds T[p][q] for Σ T[p][q]·a†_p a_q.
	// Nil when the operator touches no modes.
	OneBody *mat.CDense
}

// DiagonalCoulomb is the array form of a quadratic operator plus
// density-density interactions.
type DiagonalCoulomb struct {
	// Constant is the coefficient of the identity term.
	Constant complex128
	// OneBody holds T[p][q] for Σ T[p][q]·a†_p a_q.
	// Nil when the operator touches no modes.
	OneBody *mat.CDense
	// Coulomb is the symmetric interaction matrix W entering the
	// Hamiltonian as ½ Σ_{p≠q} W[p][q]·n_p n_q. Nil alongside OneBody.
	Coulomb *mat.CDense
}

// ToQuadratic converts op to constant-plus-one-body array form.
// Returns ErrShapeMismatch when the normal-ordered operator holds any
// term of degree above two, and ErrTermBudget when normal ordering
// overflows the operator's term budget.
func ToQuadratic(op *fermion.Operator) (*Quadratic, error) {
	no, err := op.NormalOrdered()
	if err != nil {
		return nil, err
	}
	out := &Quadratic{}
	if n := no.MaxMode() + 1; n > 0 {
		out.OneBody = mat.NewCDense(n, n, nil)
	}
	var shapeErr error
	no.ForEachTerm(func(t fermion.Term, c complex128) {
		if shapeErr != nil {
			return
		}
		switch {
		case len(t) == 0:
			out.Constant += c
		case isQuadratic(t):
			p, q := t[0].Mode, t[1].Mode
			out.OneBody.Set(p, q, out.OneBody.At(p, q)+c)
		default:
			shapeErr = fmt.Errorf("term %q: %w", t, ErrShapeMismatch)
		}
	})
	if shapeErr != nil {
		return nil, shapeErr
	}
	return out, nil
}

// ToDiagonalCoulomb converts op to constant-plus-one-body-plus-Coulomb
// array form. Returns ErrShapeMismatch when the normal-ordered operator
// holds a quartic term that is not a density-density product, or any term
// of degree above four.
func ToDiagonalCoulomb(op *fermion.Operator) (*DiagonalCoulomb, error) {
	no, err := op.NormalOrdered()
	if err != nil {
		return nil, err
	}
	out := &DiagonalCoulomb{}
	if n := no.MaxMode() + 1; n > 0 {
		out.OneBody = mat.NewCDense(n, n, nil)
		out.Coulomb = mat.NewCDense(n, n, nil)
	}
	var shapeErr error
	no.ForEachTerm(func(t fermion.Term, c complex128) {
		if shapeErr != nil {
			return
		}
		switch {
		case len(t) == 0:
			out.Constant += c
		case isQuadratic(t):
			p, q := t[0].Mode, t[1].Mode
			out.OneBody.Set(p, q, out.OneBody.At(p, q)+c)
		case isDensityPair(t):
			// c·a†_p a†_q a_p a_q equals -c·n_p n_q, split evenly
			// across the two symmetric slots of W.
			p, q := t[0].Mode, t[1].Mode
			out.Coulomb.Set(p, q, out.Coulomb.At(p, q)-c)
			out.Coulomb.Set(q, p, out.Coulomb.At(q, p)-c)
		default:
			shapeErr = fmt.Errorf("term %q: %w", t, ErrShapeMismatch)
		}
	})
	if shapeErr != nil {
		return nil, shapeErr
	}
	return out, nil
}

// isQuadratic reports whether t is a single a†_p a_q product.
func isQuadratic(t fermion.Term) bool {
	return len(t) == 2 && t[0].Act == fermion.Create && t[1].Act == fermion.Annihilate
}

// isDensityPair reports whether the normal-ordered quartic t is
// a†_p a†_q a_p a_q, i.e. the creation and annihilation blocks touch the
// same two modes. Normal ordering keeps each block strictly descending,
// so a set comparison reduces to two index equalities.
func isDensityPair(t fermion.Term) bool {
	return len(t) == 4 &&
		t[0].Act == fermion.Create && t[1].Act == fermion.Create &&
		t[2].Act == fermion.Annihilate && t[3].Act == fermion.Annihilate &&
		t[0].Mode == t[2].Mode && t[1].Mode == t[3].Mode
}
