// Package qualg is an in-memory symbolic-algebra engine for second-quantized
// operators — from fermionic ladder arithmetic to qubit Hamiltonians and
// their sparse matrix form.
//
// 🚀 What is qualg?
//
//	A deterministic, single-threaded library that brings together:
//		• Fermionic operators: weighted sums of ladder-operator products
//		• Normal ordering: canonical creation-before-annihilation rewriting
//		• Qubit operators: weighted sums of Pauli strings with exact ±i phases
//		• Transforms: Jordan–Wigner and Bravyi–Kitaev fermion→qubit lowering
//		• Sparse matrices: 2^n × 2^n operators built term by term, never dense
//		• Model generators: Fermi–Hubbard lattices & molecular integral tensors
//
// ✨ Why choose qualg?
//
//   - Exact algebra – anticommutation identities applied symbolically, not numerically
//   - Deterministic – insertion-ordered terms, reproducible rendering, no globals
//   - Pure values – operators are immutable under arithmetic, safe to share across goroutines
//   - Honest failures – sentinel errors for parse, shape, dimension and budget violations
//
// Under the hood, everything is organized into focused subpackages:
//
//	symsum/    — shared weighted-term container (epsilon-pruned complex coefficients)
//	fermion/   — ladder-operator algebra, parsing, normal ordering
//	qubit/     — Pauli-string algebra and the cyclic product table
//	transform/ — Jordan–Wigner, Bravyi–Kitaev and the reverse mapping
//	sparseop/  — Pauli sums → sparse linear operators, dense & eigen escape hatches
//	models/    — Fermi–Hubbard generator and one-/two-body tensor conversions
//
// Quick taste:
//
//	h, _ := fermion.ParseTerm("2^ 0")
//	op := fermion.NewOperator()
//	op.AddTerm(1+2i, h)
//
//	maps through transform.JordanWigner into a qubit.Operator, and from
//	there through sparseop.FromQubitOperator into a matrix you can hand
//	to any eigensolver.
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and worked examples.
//
//	go get github.com/katalvlaran/qualg
package qualg
