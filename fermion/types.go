// Package fermion: Action, Ladder and Term types plus the canonical key
// scheme.
//
// Contract:
//   - A Term is an ordered, order-significant factor sequence; the empty
//     Term is the identity.
//   - Key() is the canonical text form ("4^ 3^ 9 1") and doubles as the
//     symsum map key, so identical products always collide.

package fermion

import (
	"fmt"
	"strconv"
	"strings"
)

// Action distinguishes the two ladder-operator kinds on a mode.
type Action uint8

const (
	// Annihilate is the lowering operator a_p.
	Annihilate Action = iota
	// Create is the raising operator a†_p.
	Create
)

// String renders the action as its term-text marker: "^" for creation,
// empty for annihilation.
func (a Action) String() string {
	if a == Create {
		return "^"
	}
	return ""
}

// Ladder is a single factor: one action applied to one fermionic mode.
type Ladder struct {
	// Mode is the non-negative index of the acted-upon fermionic mode.
	Mode int
	// Act selects creation or annihilation.
	Act Action
}

// String renders the factor as the mode index plus the creation marker,
// e.g. "4^" or "9".
func (l Ladder) String() string { return strconv.Itoa(l.Mode) + l.Act.String() }

// Term is an ordered product of ladder factors. Order is significant:
// ladder operators do not commute. The empty Term is the identity.
type Term []Ladder

// NewTerm validates the factor sequence and returns it as a Term.
// Returns ErrBadMode on a negative mode index.
func NewTerm(factors ...Ladder) (Term, error) {
	t := make(Term, len(factors))
	copy(t, factors)
	for _, l := range t {
		if l.Mode < 0 {
			return nil, fmt.Errorf("factor %q: %w", l, ErrBadMode)
		}
	}
	return t, nil
}

// Key returns the canonical text form, factors joined by single spaces.
// The identity Term yields the empty string.
func (t Term) Key() string {
	parts := make([]string, len(t))
	for i, l := range t {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}

// String is an alias for Key.
func (t Term) String() string { return t.Key() }

// MaxMode returns the largest mode index in the term, or -1 for identity.
func (t Term) MaxMode() int {
	max := -1
	for _, l := range t {
		if l.Mode > max {
			max = l.Mode
		}
	}
	return max
}

// violationAt reports the index of the first adjacent pair breaking
// canonical order, or -1 when the sequence is already normal ordered.
//
// Canonical order: every Create precedes every Annihilate, and each block
// is sorted by strictly descending mode index (equal adjacent modes within
// a block force the whole term to zero and count as violations).
func (t Term) violationAt() int {
	for i := 0; i+1 < len(t); i++ {
		a, b := t[i], t[i+1]
		switch {
		case a.Act == Annihilate && b.Act == Create:
			return i
		case a.Act == b.Act && a.Mode <= b.Mode:
			return i
		}
	}
	return -1
}

// IsNormalOrdered reports whether the factor sequence already satisfies
// canonical order.
func (t Term) IsNormalOrdered() bool { return t.violationAt() < 0 }
