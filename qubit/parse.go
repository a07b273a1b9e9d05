// Package qubit: text mini-language parser.
//
// Grammar (whitespace-separated tokens):
//
//	term   = { factor } ;
//	factor = axis index ;
//	axis   = "X" | "Y" | "Z" ;
//	index  = decimal digits ;
//
// The empty string denotes the identity term. Any other token shape fails
// with ErrParse; a repeated index fails with ErrDuplicateQubit.

package qubit

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTerm parses the compact text form of a Pauli string, e.g. "X0 Y1 Z12".
func ParseTerm(text string) (Term, error) {
	fields := strings.Fields(text)
	factors := make([]Pauli, 0, len(fields))
	for _, tok := range fields {
		p, err := parseFactor(tok)
		if err != nil {
			return nil, err
		}
		factors = append(factors, p)
	}
	return NewTerm(factors...)
}

// parseFactor decodes one "A<idx>" token.
func parseFactor(tok string) (Pauli, error) {
	if len(tok) < 2 {
		return Pauli{}, fmt.Errorf("token %q: %w", tok, ErrParse)
	}
	var axis Axis
	switch tok[0] {
	case 'X':
		axis = X
	case 'Y':
		axis = Y
	case 'Z':
		axis = Z
	default:
		return Pauli{}, fmt.Errorf("token %q: unknown axis: %w", tok, ErrParse)
	}
	for i := 1; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return Pauli{}, fmt.Errorf("token %q: bad index: %w", tok, ErrParse)
		}
	}
	idx, err := strconv.Atoi(tok[1:])
	if err != nil {
		return Pauli{}, fmt.Errorf("token %q: bad index: %w", tok, ErrParse)
	}
	return Pauli{Qubit: idx, Axis: axis}, nil
}
