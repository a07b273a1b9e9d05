// Package models: integral tensors lowered to fermionic operators.
//
// Contract:
//   - FromTensors(c, one, two) builds
//     c + Σ one[p][q]·a†_p a_q + Σ two[p][q][r][s]·a†_p a†_q a_r a_s,
//   - nil tensors contribute nothing; present tensors must agree on the
//     mode count or the call fails with ErrTensorShape,
//   - zero tensor entries are skipped, so sparse inputs stay sparse.
//
// Complexity: O(n²) + O(n⁴) tensor scans for n modes.

package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qualg/fermion"
)

// FromTensors lowers a constant offset, a one-body integral matrix and a
// two-body integral tensor to a fermionic operator. Either tensor may be
// nil. Returns ErrTensorShape when the one-body matrix is not square, when
// the two-body tensor is ragged, or when the two disagree on the number of
// modes.
func FromTensors(constant complex128, oneBody *mat.CDense, twoBody [][][][]complex128) (*fermion.Operator, error) {
	n, err := tensorModes(oneBody, twoBody)
	if err != nil {
		return nil, err
	}

	h := fermion.NewOperator()
	if constant != 0 {
		h.AddTerm(constant, nil)
	}
	if oneBody != nil {
		for p := 0; p < n; p++ {
			for q := 0; q < n; q++ {
				c := oneBody.At(p, q)
				if c == 0 {
					continue
				}
				h.AddTerm(c, fermion.Term{
					{Mode: p, Act: fermion.Create},
					{Mode: q, Act: fermion.Annihilate},
				})
			}
		}
	}
	for p := range twoBody {
		for q := range twoBody[p] {
			for r := range twoBody[p][q] {
				for s, c := range twoBody[p][q][r] {
					if c == 0 {
						continue
					}
					h.AddTerm(c, fermion.Term{
						{Mode: p, Act: fermion.Create},
						{Mode: q, Act: fermion.Create},
						{Mode: r, Act: fermion.Annihilate},
						{Mode: s, Act: fermion.Annihilate},
					})
				}
			}
		}
	}
	return h, nil
}

// tensorModes derives the common mode count and validates tensor shapes.
func tensorModes(oneBody *mat.CDense, twoBody [][][][]complex128) (int, error) {
	n := -1
	if oneBody != nil {
		r, c := oneBody.Dims()
		if r != c {
			return 0, fmt.Errorf("one-body matrix is %d×%d: %w", r, c, ErrTensorShape)
		}
		n = r
	}
	if twoBody != nil {
		if n < 0 {
			n = len(twoBody)
		} else if len(twoBody) != n {
			return 0, fmt.Errorf("two-body tensor spans %d modes, one-body %d: %w", len(twoBody), n, ErrTensorShape)
		}
		for p := range twoBody {
			if len(twoBody[p]) != n {
				return 0, fmt.Errorf("two-body tensor ragged at axis 2: %w", ErrTensorShape)
			}
			for q := range twoBody[p] {
				if len(twoBody[p][q]) != n {
					return 0, fmt.Errorf("two-body tensor ragged at axis 3: %w", ErrTensorShape)
				}
				for r := range twoBody[p][q] {
					if len(twoBody[p][q][r]) != n {
						return 0, fmt.Errorf("two-body tensor ragged at axis 4: %w", ErrTensorShape)
					}
				}
			}
		}
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}
