// Package symsum: the Sum container and its arithmetic.
//
// Contract:
//   - Every mutation re-establishes the pruning invariant: no entry with
//     |coefficient| ≤ epsilon survives.
//   - Add/Scale return new instances; Accumulate is the single in-place
//     primitive and is reserved for owners building a Sum incrementally.
//   - String() is deterministic for a fixed construction order.

package symsum

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// DefaultEpsilon is the pruning tolerance applied when no WithEpsilon
// option is given. Coefficients at or below this magnitude are dropped.
const DefaultEpsilon = 1e-8

// Option customizes a Sum at construction time.
type Option func(*Sum)

// WithEpsilon overrides the pruning tolerance.
// Panics on negative or NaN eps (programmer error; runtime code never panics).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("symsum: WithEpsilon requires a non-negative, finite tolerance")
	}
	return func(s *Sum) { s.eps = eps }
}

// Sum is a weighted mapping from canonical term keys to complex coefficients.
// The zero value is not usable; construct via New.
type Sum struct {
	eps    float64
	order  []string              // insertion order of live keys
	coeffs map[string]complex128 // key → coefficient, pruned
}

// New returns an empty Sum (the identically-zero operator).
func New(opts ...Option) *Sum {
	s := &Sum{
		eps:    DefaultEpsilon,
		coeffs: make(map[string]complex128),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Epsilon reports the pruning tolerance of this Sum.
func (s *Sum) Epsilon() float64 { return s.eps }

// Len reports the number of stored terms.
func (s *Sum) Len() int { return len(s.coeffs) }

// IsZero reports whether the Sum holds no terms.
func (s *Sum) IsZero() bool { return len(s.coeffs) == 0 }

// Coefficient returns the stored coefficient for key, or 0 when absent.
func (s *Sum) Coefficient(key string) complex128 { return s.coeffs[key] }

// Keys returns the live keys in insertion order. The slice is a copy.
func (s *Sum) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Accumulate adds c to the coefficient stored under key, pruning the entry
// when the result falls within epsilon of zero.
func (s *Sum) Accumulate(key string, c complex128) {
	prev, ok := s.coeffs[key]
	next := prev + c
	if cmplx.Abs(next) <= s.eps {
		if ok {
			s.evict(key)
		}
		return
	}
	if !ok {
		s.order = append(s.order, key)
	}
	s.coeffs[key] = next
}

// evict removes key from both the map and the order slice.
func (s *Sum) evict(key string) {
	delete(s.coeffs, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy sharing no state with the receiver.
func (s *Sum) Clone() *Sum {
	out := &Sum{
		eps:    s.eps,
		order:  make([]string, len(s.order)),
		coeffs: make(map[string]complex128, len(s.coeffs)),
	}
	copy(out.order, s.order)
	for k, v := range s.coeffs {
		out.coeffs[k] = v
	}
	return out
}

// Add returns a new Sum holding the coefficient-wise union of s and t.
// The result inherits the receiver's epsilon.
func (s *Sum) Add(t *Sum) *Sum {
	out := s.Clone()
	for _, k := range t.order {
		out.Accumulate(k, t.coeffs[k])
	}
	return out
}

// Scale returns a new Sum with every coefficient multiplied by c.
// A (near-)zero c yields the empty Sum.
func (s *Sum) Scale(c complex128) *Sum {
	out := New(WithEpsilon(s.eps))
	if cmplx.Abs(c) <= s.eps {
		return out
	}
	for _, k := range s.order {
		out.Accumulate(k, s.coeffs[k]*c)
	}
	return out
}

// Compress re-prunes the Sum against a caller-supplied tolerance, dropping
// every coefficient with magnitude ≤ eps. It mutates the receiver.
func (s *Sum) Compress(eps float64) {
	if eps < 0 || math.IsNaN(eps) {
		return
	}
	for _, k := range s.Keys() {
		if cmplx.Abs(s.coeffs[k]) <= eps {
			s.evict(k)
		}
	}
}

// Equal reports whether s and t agree term-by-term within the larger of the
// two tolerances. Insertion order is irrelevant.
func (s *Sum) Equal(t *Sum) bool {
	eps := s.eps
	if t.eps > eps {
		eps = t.eps
	}
	for k, v := range s.coeffs {
		if cmplx.Abs(v-t.coeffs[k]) > eps {
			return false
		}
	}
	for k, v := range t.coeffs {
		if _, ok := s.coeffs[k]; !ok && cmplx.Abs(v) > eps {
			return false
		}
	}
	return true
}

// String renders "coefficient [key]" lines joined by " +\n", in insertion
// order. The empty Sum renders as "0".
func (s *Sum) String() string {
	if s.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, k := range s.order {
		if i > 0 {
			b.WriteString(" +\n")
		}
		fmt.Fprintf(&b, "%v [%s]", s.coeffs[k], k)
	}
	return b.String()
}
