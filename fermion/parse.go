// Package fermion: text mini-language parser.
//
// Grammar (whitespace-separated tokens):
//
//	term   = { factor } ;
//	factor = index [ "^" ] ;
//	index  = decimal digits ;
//
// A trailing "^" marks creation; its absence marks annihilation. The empty
// string denotes the identity term. Any other token shape fails with
// ErrParse.

package fermion

import (
	"fmt"
	"strconv"
	"strings"
)

// creationMarker is the raised-action suffix of the term mini-language.
const creationMarker = "^"

// ParseTerm parses the compact text form of a ladder product, e.g. "4^ 3^ 9 1".
func ParseTerm(text string) (Term, error) {
	fields := strings.Fields(text)
	factors := make([]Ladder, 0, len(fields))
	for _, tok := range fields {
		l, err := parseFactor(tok)
		if err != nil {
			return nil, err
		}
		factors = append(factors, l)
	}
	return NewTerm(factors...)
}

// parseFactor decodes one "<idx>[^]" token.
func parseFactor(tok string) (Ladder, error) {
	act := Annihilate
	digits := tok
	if strings.HasSuffix(tok, creationMarker) {
		act = Create
		digits = tok[:len(tok)-1]
	}
	if digits == "" {
		return Ladder{}, fmt.Errorf("token %q: %w", tok, ErrParse)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Ladder{}, fmt.Errorf("token %q: bad index: %w", tok, ErrParse)
		}
	}
	mode, err := strconv.Atoi(digits)
	if err != nil {
		return Ladder{}, fmt.Errorf("token %q: bad index: %w", tok, ErrParse)
	}
	return Ladder{Mode: mode, Act: act}, nil
}
