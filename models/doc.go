// Package models produces fermionic operators from physical model
// parameters and converts restricted operators back to explicit array form.
//
// 🚀 What lives here?
//
//	The boundary between array-shaped inputs (lattice parameters, molecular
//	integral tensors) and the symbolic ladder algebra:
//
//	  FermiHubbard       — 2D Hubbard lattice Hamiltonian from geometry,
//	                       tunneling, on-site repulsion and local fields
//	  FromTensors        — constant + one-body + two-body integral tensors
//	                       lowered to a fermionic operator
//	  ToQuadratic        — the inverse for purely quadratic operators
//	  ToDiagonalCoulomb  — the inverse for quadratic-plus-density-density
//	                       operators
//
// ⚙️ Usage:
//
//	hub, err := models.FermiHubbard(2, 2,
//	  models.WithTunneling(1.0),
//	  models.WithCoulomb(4.0),
//	)
//
// Conventions:
//   - spatial site (x, y) has index y·xdim + x; spin-orbitals interleave
//     as up = 2·site, down = 2·site + 1 (spinless lattices use the site
//     index directly),
//   - each lattice bond is emitted once (right and bottom neighbors, with
//     periodic wrap only when the wrapped dimension exceeds two sites, so
//     no bond is double counted),
//   - FromTensors applies H = c + Σ T[p][q]·a†_p a_q
//     + Σ V[p][q][r][s]·a†_p a†_q a_r a_s.
//
// The narrow-array inverses fail with ErrShapeMismatch — never silently
// dropping terms — when the operator holds any term outside the recognized
// shape.
package models
