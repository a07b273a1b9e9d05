// Package sparseop: Hermitian ground-state solver.
//
// A Hermitian H = A + iB embeds into the real symmetric
//
//	[[ A, −B ],
//	 [ B,  A ]]
//
// whose spectrum is H's with each eigenvalue at twice its multiplicity,
// and whose
// eigenvector (x; y) recovers H's eigenvector as x + iy. That reduction
// lets gonum's symmetric eigensolver serve complex Hamiltonians.

package sparseop

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// hermTolerance is the slack admitted when checking self-adjointness.
const hermTolerance = 1e-9

// GroundState returns the smallest eigenvalue of a Hermitian sparse
// operator together with its normalized eigenvector.
// Returns ErrNotHermitian when the matrix is not self-adjoint within
// tolerance and ErrTooLarge past MaxDenseQubits (the reduction is dense).
func GroundState(m *Matrix) (float64, []complex128, error) {
	if m.qubits > MaxDenseQubits {
		return 0, nil, fmt.Errorf("n=%d exceeds %d: %w", m.qubits, MaxDenseQubits, ErrTooLarge)
	}
	tol := hermTolerance
	if m.eps > tol {
		tol = m.eps
	}

	// Self-adjointness: every entry must mirror its conjugate transpose.
	var hermErr error
	m.ForEachEntry(func(e Entry) {
		if hermErr != nil {
			return
		}
		if cmplx.Abs(e.Val-cmplx.Conj(m.cols[e.Row][e.Col])) > tol {
			hermErr = fmt.Errorf("entry (%d,%d): %w", e.Row, e.Col, ErrNotHermitian)
		}
	})
	if hermErr != nil {
		return 0, nil, hermErr
	}

	// Real symmetric embedding of A + iB.
	d := m.dim
	sym := mat.NewSymDense(2*d, nil)
	m.ForEachEntry(func(e Entry) {
		a, b := real(e.Val), imag(e.Val)
		setSym(sym, e.Row, e.Col, a)
		setSym(sym, e.Row+d, e.Col+d, a)
		setSym(sym, e.Row, e.Col+d, -b)
		setSym(sym, e.Row+d, e.Col, b)
	})

	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return 0, nil, fmt.Errorf("eigen factorization failed: %w", ErrNotHermitian)
	}
	values := es.Values(nil) // ascending
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	state := make([]complex128, d)
	norm := 0.0
	for k := 0; k < d; k++ {
		state[k] = complex(vectors.At(k, 0), vectors.At(k+d, 0))
		norm += real(state[k]) * real(state[k])
		norm += imag(state[k]) * imag(state[k])
	}
	scale := complex(1/math.Sqrt(norm), 0)
	for k := range state {
		state[k] *= scale
	}
	return values[0], state, nil
}

// setSym writes one mirrored element pair; SymDense only accepts the
// upper triangle.
func setSym(s *mat.SymDense, i, j int, v float64) {
	if i <= j {
		s.SetSym(i, j, v)
	} else {
		s.SetSym(j, i, v)
	}
}
