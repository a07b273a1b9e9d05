// Package qubit: Axis, Pauli and Term types plus the canonical key scheme.
//
// Contract:
//   - A Term stores factors sorted by ascending qubit index with no
//     duplicate indices; the empty Term is the identity.
//   - Key() is the canonical text form ("X0 Z3") and doubles as the
//     symsum map key, so equal terms always collide.

package qubit

import (
	"fmt"
	"sort"
	"strings"
)

// Axis identifies one of the three non-identity single-qubit Pauli operators.
type Axis uint8

const (
	// X is the bit-flip Pauli operator.
	X Axis = iota
	// Y is the bit-and-phase-flip Pauli operator.
	Y
	// Z is the phase-flip Pauli operator.
	Z
)

// axisNames maps Axis values to their single-letter rendering.
var axisNames = [...]string{"X", "Y", "Z"}

// String renders the axis letter ("X", "Y" or "Z").
func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// Pauli is a single-qubit factor: an axis acting on one qubit index.
type Pauli struct {
	// Qubit is the non-negative index of the acted-upon qubit.
	Qubit int
	// Axis is the Pauli axis applied on that qubit.
	Axis Axis
}

// String renders the factor as axis letter followed by index, e.g. "Y3".
func (p Pauli) String() string { return p.Axis.String() + fmt.Sprint(p.Qubit) }

// Term is a product of Pauli factors on pairwise-distinct qubits, sorted by
// ascending index. The empty Term is the identity operator.
type Term []Pauli

// NewTerm builds a canonical Term from the given factors, sorting them by
// qubit index. Returns ErrBadQubit on a negative index and ErrDuplicateQubit
// when two factors share an index.
func NewTerm(factors ...Pauli) (Term, error) {
	t := make(Term, len(factors))
	copy(t, factors)
	sort.Slice(t, func(i, j int) bool { return t[i].Qubit < t[j].Qubit })
	for i, p := range t {
		if p.Qubit < 0 {
			return nil, fmt.Errorf("factor %q: %w", p, ErrBadQubit)
		}
		if i > 0 && t[i-1].Qubit == p.Qubit {
			return nil, fmt.Errorf("index %d: %w", p.Qubit, ErrDuplicateQubit)
		}
	}
	return t, nil
}

// Key returns the canonical text form, factors joined by single spaces.
// The identity Term yields the empty string.
func (t Term) Key() string {
	parts := make([]string, len(t))
	for i, p := range t {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// String is an alias for Key.
func (t Term) String() string { return t.Key() }

// Weight reports the number of non-identity factors in the term — the
// sparse-weight callers use to bound simulation cost.
func (t Term) Weight() int { return len(t) }

// MaxQubit returns the largest qubit index in the term, or -1 for identity.
func (t Term) MaxQubit() int {
	if len(t) == 0 {
		return -1
	}
	return t[len(t)-1].Qubit
}

// axisProduct and axisPhase encode the cyclic Pauli product rule for
// differing axes: row·col = phase · result-axis. Same-axis products cancel
// to identity and are handled before the table lookup.
var (
	axisProduct = [3][3]Axis{
		X: {Y: Z, Z: Y},
		Y: {X: Z, Z: X},
		Z: {X: Y, Y: X},
	}
	axisPhase = [3][3]complex128{
		X: {Y: 1i, Z: -1i},
		Y: {X: -1i, Z: 1i},
		Z: {X: 1i, Y: -1i},
	}
)

// mulTerms multiplies two canonical terms, merging factors per qubit index.
// It returns the canonical product term together with the accumulated ±i
// (or 1) phase multiplier.
func mulTerms(a, b Term) (Term, complex128) {
	out := make(Term, 0, len(a)+len(b))
	phase := complex128(1)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Qubit < b[j].Qubit:
			out = append(out, a[i])
			i++
		case a[i].Qubit > b[j].Qubit:
			out = append(out, b[j])
			j++
		default:
			// Same qubit: same axis squares to identity, differing axes
			// combine to the third axis with a ±i phase.
			if a[i].Axis != b[j].Axis {
				phase *= axisPhase[a[i].Axis][b[j].Axis]
				out = append(out, Pauli{Qubit: a[i].Qubit, Axis: axisProduct[a[i].Axis][b[j].Axis]})
			}
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out, phase
}
