// Package models: Fermi-Hubbard lattice Hamiltonians.
//
// Contract:
//   - FermiHubbard(xdim, ydim, opts...) builds the Hamiltonian of a 2D
//     rectangular Hubbard lattice as a fermionic operator,
//   - dimensions below one fail with ErrBadLattice,
//   - each bond appears exactly once (right/bottom sweep; periodic wrap
//     only when the wrapped dimension exceeds two sites).
//
// Complexity: O(xdim·ydim) emitted bonds, O(1) terms per bond.
// Determinism: terms accumulate in sweep order, so rendering is stable.

package models

import (
	"github.com/katalvlaran/qualg/fermion"
)

// FermiHubbard returns the Hubbard Hamiltonian on an xdim × ydim lattice:
//
//	H = -t Σ_{<i,j>,σ} (a†_iσ a_jσ + a†_jσ a_iσ)
//	    + U Σ_i n_i↑ n_i↓
//	    - Σ_{i,σ} (mu ± h/2) n_iσ
//
// where the sign in front of h/2 is minus for spin up and plus for spin
// down. Spinless lattices drop σ and move the U term onto neighbor bonds:
// U Σ_{<i,j>} n_i n_j. Returns ErrBadLattice when xdim or ydim is below one.
func FermiHubbard(xdim, ydim int, opts ...Option) (*fermion.Operator, error) {
	if xdim < 1 || ydim < 1 {
		return nil, ErrBadLattice
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := fermion.NewOperator()
	for y := 0; y < ydim; y++ {
		for x := 0; x < xdim; x++ {
			site := y*xdim + x

			// Local terms: chemical potential and magnetic field.
			if cfg.spinless {
				addNumber(h, site, complex(-cfg.chemicalPotential, 0))
			} else {
				addNumber(h, up(site), complex(-cfg.chemicalPotential-cfg.magneticField/2, 0))
				addNumber(h, down(site), complex(-cfg.chemicalPotential+cfg.magneticField/2, 0))
			}

			// On-site repulsion couples the two spin species.
			if !cfg.spinless && cfg.coulomb != 0 {
				addDensityPair(h, up(site), down(site), complex(cfg.coulomb, 0))
			}

			// Bonds to the right and bottom neighbors, wrap included.
			if right, ok := neighbor(x, xdim, cfg.periodic); ok {
				addBond(h, site, y*xdim+right, &cfg)
			}
			if bottom, ok := neighbor(y, ydim, cfg.periodic); ok {
				addBond(h, site, bottom*xdim+x, &cfg)
			}
		}
	}
	return h, nil
}

// up and down map a spatial site to its interleaved spin-orbital indices.
func up(site int) int   { return 2 * site }
func down(site int) int { return 2*site + 1 }

// neighbor returns the successor coordinate along one lattice axis.
// The wrap bond is suppressed on axes of two or fewer sites: there the
// forward sweep already covers every distinct pair.
func neighbor(coord, dim int, periodic bool) (int, bool) {
	if coord+1 < dim {
		return coord + 1, true
	}
	if periodic && dim > 2 {
		return 0, true
	}
	return 0, false
}

// addBond emits the hopping (and, for spinless lattices, the
// density-density) terms between sites i and j.
func addBond(h *fermion.Operator, i, j int, cfg *config) {
	t := complex(-cfg.tunneling, 0)
	if cfg.spinless {
		addHop(h, i, j, t)
		if cfg.coulomb != 0 {
			addDensityPair(h, i, j, complex(cfg.coulomb, 0))
		}
		return
	}
	addHop(h, up(i), up(j), t)
	addHop(h, down(i), down(j), t)
}

// addHop accumulates c·(a†_p a_q + a†_q a_p).
func addHop(h *fermion.Operator, p, q int, c complex128) {
	h.AddTerm(c, fermion.Term{
		{Mode: p, Act: fermion.Create},
		{Mode: q, Act: fermion.Annihilate},
	})
	h.AddTerm(c, fermion.Term{
		{Mode: q, Act: fermion.Create},
		{Mode: p, Act: fermion.Annihilate},
	})
}

// addNumber accumulates c·n_p.
func addNumber(h *fermion.Operator, p int, c complex128) {
	if c == 0 {
		return
	}
	h.AddTerm(c, fermion.Term{
		{Mode: p, Act: fermion.Create},
		{Mode: p, Act: fermion.Annihilate},
	})
}

// addDensityPair accumulates c·n_p n_q.
func addDensityPair(h *fermion.Operator, p, q int, c complex128) {
	h.AddTerm(c, fermion.Term{
		{Mode: p, Act: fermion.Create},
		{Mode: p, Act: fermion.Annihilate},
		{Mode: q, Act: fermion.Create},
		{Mode: q, Act: fermion.Annihilate},
	})
}
