// Package sparseop: term-by-term sparse construction.
//
// Contract:
//   - One Pauli term contributes exactly Dim entries: column s maps to row
//     s⊕flipmask with a phase from the Y and Z factors, scaled by the
//     term's coefficient.
//   - Contributions accumulate incrementally per term, so peak memory is
//     the final sparse structure plus one column index — never a stack of
//     per-term matrices.

package sparseop

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/katalvlaran/qualg/qubit"
	"github.com/katalvlaran/qualg/symsum"
)

// MaxQubits caps the sparse build: 2^n columns must stay addressable and
// affordable. Raising it is possible on big-memory hosts, but 2^30 rows is
// already 8+ GiB of column maps.
const MaxQubits = 30

// Option customizes the sparse build.
type Option func(*buildConfig)

// buildConfig carries resolved build parameters.
type buildConfig struct {
	qubits int // -1 = infer from the operator
	eps    float64
}

// WithQubits fixes the qubit count instead of inferring it from the
// largest index in the operator. Panics on negative n (programmer error).
func WithQubits(n int) Option {
	if n < 0 {
		panic("sparseop: WithQubits requires n ≥ 0")
	}
	return func(c *buildConfig) { c.qubits = n }
}

// WithEpsilon sets the entry-pruning tolerance.
// Panics on negative or NaN eps.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("sparseop: WithEpsilon requires a non-negative, finite tolerance")
	}
	return func(c *buildConfig) { c.eps = eps }
}

// iPowers indexes i^k for k in [0,4).
var iPowers = [4]complex128{1, 1i, -1, -1i}

// FromQubitOperator builds the explicit sparse matrix of a qubit operator.
// The qubit count is taken from WithQubits or inferred as one plus the
// largest index in any term. Returns ErrDimension when a term references a
// qubit at or above the declared count and ErrTooLarge past MaxQubits.
func FromQubitOperator(op *qubit.Operator, opts ...Option) (*Matrix, error) {
	cfg := buildConfig{qubits: -1, eps: symsum.DefaultEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.qubits < 0 {
		cfg.qubits = op.MaxQubit() + 1
	}
	if cfg.qubits > MaxQubits {
		return nil, fmt.Errorf("n=%d exceeds %d: %w", cfg.qubits, MaxQubits, ErrTooLarge)
	}

	m := &Matrix{
		qubits: cfg.qubits,
		dim:    1 << cfg.qubits,
		eps:    cfg.eps,
		cols:   make([]map[int]complex128, 1<<cfg.qubits),
	}

	var failed error
	op.ForEachTerm(func(t qubit.Term, c complex128) {
		if failed != nil {
			return
		}
		if q := t.MaxQubit(); q >= cfg.qubits {
			failed = fmt.Errorf("term %q with n=%d: %w", t, cfg.qubits, ErrDimension)
			return
		}
		m.addTerm(t, c)
	})
	if failed != nil {
		return nil, failed
	}

	m.prune()
	return m, nil
}

// addTerm accumulates one Pauli string: for every column s the image row is
// s⊕flip, with phase i^(y₀−y₁)·(−1)^z where y₀/y₁ count Y factors over
// 0/1 bits of s and z counts Z factors over 1 bits.
func (m *Matrix) addTerm(t qubit.Term, coeff complex128) {
	var flip, ymask, zmask uint
	for _, f := range t {
		bit := uint(1) << uint(f.Qubit)
		switch f.Axis {
		case qubit.X:
			flip |= bit
		case qubit.Y:
			flip |= bit
			ymask |= bit
		case qubit.Z:
			zmask |= bit
		}
	}
	yTotal := bits.OnesCount(ymask)

	for s := 0; s < m.dim; s++ {
		y1 := bits.OnesCount(uint(s) & ymask)
		y0 := yTotal - y1
		phase := iPowers[((y0-y1)%4+4)%4]
		if bits.OnesCount(uint(s)&zmask)&1 == 1 {
			phase = -phase
		}

		row := s ^ int(flip)
		if m.cols[s] == nil {
			m.cols[s] = make(map[int]complex128)
		}
		m.cols[s][row] += coeff * phase
	}
}

// prune drops entries whose magnitude fell within epsilon after term
// accumulation (cancellation between terms).
func (m *Matrix) prune() {
	for _, col := range m.cols {
		for r, v := range col {
			if cmplx.Abs(v) <= m.eps {
				delete(col, r)
			}
		}
	}
}
