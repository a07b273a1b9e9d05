// Package fermion: the Operator type and its arithmetic closure.
//
// Contract:
//   - Operators behave as immutable values under arithmetic: every
//     operation returns a new instance. AddTerm is the one in-place
//     accumulation primitive for incremental construction.
//   - Mul concatenates factor sequences exactly; no anticommutation
//     rewriting happens before NormalOrdered.
//   - Products never silently drop out-of-budget results: Mul/Pow and
//     NormalOrdered return ErrTermBudget once the term count would exceed
//     the limit.

package fermion

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qualg/symsum"
)

// DefaultMaxTerms bounds the number of terms an arithmetic or rewriting
// step may produce before failing with ErrTermBudget.
const DefaultMaxTerms = 1 << 20

// Option customizes an Operator at construction time.
type Option func(*Operator)

// WithEpsilon sets the coefficient-pruning tolerance.
// Panics on negative or NaN eps (programmer error).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("fermion: WithEpsilon requires a non-negative, finite tolerance")
	}
	return func(o *Operator) { o.eps = eps }
}

// WithMaxTerms overrides the term budget. Panics on n < 1.
func WithMaxTerms(n int) Option {
	if n < 1 {
		panic("fermion: WithMaxTerms requires n ≥ 1")
	}
	return func(o *Operator) { o.maxTerms = n }
}

// Operator is a weighted sum of ladder-operator products.
type Operator struct {
	eps      float64
	maxTerms int
	sum      *symsum.Sum
}

// NewOperator returns the empty (identically-zero) operator.
func NewOperator(opts ...Option) *Operator {
	o := &Operator{eps: symsum.DefaultEpsilon, maxTerms: DefaultMaxTerms}
	for _, opt := range opts {
		opt(o)
	}
	o.sum = symsum.New(symsum.WithEpsilon(o.eps))
	return o
}

// Identity returns the identity operator (coefficient 1 on the empty term).
func Identity(opts ...Option) *Operator {
	return NewOperator(opts...).AddTerm(1, nil)
}

// Number returns the occupation-number operator n_p = a†_p a_p.
// Panics on negative p (programmer error; mode indices are non-negative).
func Number(p int, opts ...Option) *Operator {
	if p < 0 {
		panic("fermion: Number requires a non-negative mode")
	}
	return NewOperator(opts...).AddTerm(1, Term{{Mode: p, Act: Create}, {Mode: p, Act: Annihilate}})
}

// derive returns an empty operator sharing the receiver's configuration.
func (o *Operator) derive() *Operator {
	return NewOperator(WithEpsilon(o.eps), WithMaxTerms(o.maxTerms))
}

// AddTerm accumulates c onto term t in place and returns the receiver for
// chaining during incremental construction.
func (o *Operator) AddTerm(c complex128, t Term) *Operator {
	o.sum.Accumulate(t.Key(), c)
	return o
}

// Epsilon reports the pruning tolerance.
func (o *Operator) Epsilon() float64 { return o.eps }

// Len reports the number of stored terms.
func (o *Operator) Len() int { return o.sum.Len() }

// IsZero reports whether the operator holds no terms.
func (o *Operator) IsZero() bool { return o.sum.IsZero() }

// Coefficient returns the coefficient stored for term t, or 0 when absent.
func (o *Operator) Coefficient(t Term) complex128 {
	return o.sum.Coefficient(t.Key())
}

// Terms returns the stored terms in insertion order.
func (o *Operator) Terms() []Term {
	keys := o.sum.Keys()
	out := make([]Term, len(keys))
	for i, k := range keys {
		out[i] = mustTerm(k)
	}
	return out
}

// ForEachTerm invokes fn for every stored (term, coefficient) pair in
// insertion order.
func (o *Operator) ForEachTerm(fn func(t Term, c complex128)) {
	for _, k := range o.sum.Keys() {
		fn(mustTerm(k), o.sum.Coefficient(k))
	}
}

// MaxMode returns the largest mode index referenced by any term, or -1
// when the operator is zero or pure identity.
func (o *Operator) MaxMode() int {
	max := -1
	o.ForEachTerm(func(t Term, _ complex128) {
		if m := t.MaxMode(); m > max {
			max = m
		}
	})
	return max
}

// Clone returns a deep copy of the operator.
func (o *Operator) Clone() *Operator {
	out := o.derive()
	out.sum = o.sum.Clone()
	return out
}

// Add returns o + p as a new operator.
func (o *Operator) Add(p *Operator) *Operator {
	out := o.derive()
	out.sum = o.sum.Add(p.sum)
	return out
}

// Sub returns o − p as a new operator.
func (o *Operator) Sub(p *Operator) *Operator {
	out := o.derive()
	out.sum = o.sum.Add(p.sum.Scale(-1))
	return out
}

// Scale returns c·o as a new operator.
func (o *Operator) Scale(c complex128) *Operator {
	out := o.derive()
	out.sum = o.sum.Scale(c)
	return out
}

// Compress re-prunes in place against eps, dropping every term whose
// coefficient magnitude fell to eps or below through cancellation.
// Negative or NaN eps is ignored.
func (o *Operator) Compress(eps float64) *Operator {
	o.sum.Compress(eps)
	return o
}

// Mul returns o·p by concatenating factor sequences pairwise, order
// preserved, with coefficient products. Returns ErrTermBudget when the
// product would exceed the configured term limit.
func (o *Operator) Mul(p *Operator) (*Operator, error) {
	out := o.derive()
	for _, ka := range o.sum.Keys() {
		ta := mustTerm(ka)
		ca := o.sum.Coefficient(ka)
		for _, kb := range p.sum.Keys() {
			tb := mustTerm(kb)
			prod := make(Term, 0, len(ta)+len(tb))
			prod = append(prod, ta...)
			prod = append(prod, tb...)
			out.sum.Accumulate(prod.Key(), ca*p.sum.Coefficient(kb))
			if out.sum.Len() > o.maxTerms {
				return nil, fmt.Errorf("product of %d×%d terms: %w", o.Len(), p.Len(), ErrTermBudget)
			}
		}
	}
	return out, nil
}

// Pow returns o^n by repeated multiplication; Pow(0) is the identity.
// Returns ErrNegativePower on n < 0 and propagates ErrTermBudget.
func (o *Operator) Pow(n int) (*Operator, error) {
	if n < 0 {
		return nil, fmt.Errorf("exponent %d: %w", n, ErrNegativePower)
	}
	out := Identity(WithEpsilon(o.eps), WithMaxTerms(o.maxTerms))
	var err error
	for i := 0; i < n; i++ {
		if out, err = out.Mul(o); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// HermitianConjugate returns the adjoint: factor order reversed, every
// action flipped (CREATE↔ANNIHILATE), coefficients conjugated.
func (o *Operator) HermitianConjugate() *Operator {
	out := o.derive()
	o.ForEachTerm(func(t Term, c complex128) {
		adj := make(Term, len(t))
		for i, l := range t {
			flipped := Create
			if l.Act == Create {
				flipped = Annihilate
			}
			adj[len(t)-1-i] = Ladder{Mode: l.Mode, Act: flipped}
		}
		out.AddTerm(cmplx.Conj(c), adj)
	})
	return out
}

// IsNormalOrdered reports whether every stored term already satisfies
// canonical order.
func (o *Operator) IsNormalOrdered() bool {
	for _, k := range o.sum.Keys() {
		if !mustTerm(k).IsNormalOrdered() {
			return false
		}
	}
	return true
}

// Equal reports term-wise equality within the pruning tolerance.
func (o *Operator) Equal(p *Operator) bool { return o.sum.Equal(p.sum) }

// String renders "coefficient [term]" lines joined by " +\n" in insertion
// order; the zero operator renders as "0".
func (o *Operator) String() string { return o.sum.String() }

// Commutator returns a·b − b·a.
func Commutator(a, b *Operator) (*Operator, error) {
	ab, err := a.Mul(b)
	if err != nil {
		return nil, err
	}
	ba, err := b.Mul(a)
	if err != nil {
		return nil, err
	}
	return ab.Sub(ba), nil
}

// Anticommutator returns a·b + b·a.
func Anticommutator(a, b *Operator) (*Operator, error) {
	ab, err := a.Mul(b)
	if err != nil {
		return nil, err
	}
	ba, err := b.Mul(a)
	if err != nil {
		return nil, err
	}
	return ab.Add(ba), nil
}

// mustTerm decodes a trusted canonical key produced by Term.Key.
func mustTerm(key string) Term {
	t, err := ParseTerm(key)
	if err != nil {
		panic(fmt.Sprintf("fermion: corrupt internal term key %q: %v", key, err))
	}
	return t
}
