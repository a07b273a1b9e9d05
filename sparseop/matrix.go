// Package sparseop: the Matrix type, enumeration and matrix-vector product.
//
// Contract:
//   - Storage is column-major: cols[c] maps row → value, pruned against
//     the configured epsilon at build time.
//   - Enumeration order is columns ascending, rows ascending within a
//     column — deterministic for a fixed input operator.

package sparseop

import (
	"fmt"
	"sort"
)

// Entry is one nonzero matrix element.
type Entry struct {
	// Row and Col index the 2^n-dimensional basis.
	Row, Col int
	// Val is the complex matrix element.
	Val complex128
}

// Matrix is a sparse 2^n × 2^n linear operator over the computational basis.
// Construct via FromQubitOperator; the zero value is not usable.
type Matrix struct {
	qubits int
	dim    int
	eps    float64
	cols   []map[int]complex128
}

// Qubits reports the qubit count n.
func (m *Matrix) Qubits() int { return m.qubits }

// Dim reports the dimension 2^n.
func (m *Matrix) Dim() int { return m.dim }

// NNZ reports the number of stored nonzero entries.
func (m *Matrix) NNZ() int {
	total := 0
	for _, col := range m.cols {
		total += len(col)
	}
	return total
}

// At returns the element at (row, col), zero when absent.
// Returns ErrOutOfRange on indices outside [0, 2^n).
func (m *Matrix) At(row, col int) (complex128, error) {
	if row < 0 || row >= m.dim || col < 0 || col >= m.dim {
		return 0, fmt.Errorf("(%d,%d) in %d×%d: %w", row, col, m.dim, m.dim, ErrOutOfRange)
	}
	return m.cols[col][row], nil
}

// ForEachEntry invokes fn for every nonzero entry, columns ascending and
// rows ascending within each column.
func (m *Matrix) ForEachEntry(fn func(e Entry)) {
	rows := make([]int, 0, 16)
	for c, col := range m.cols {
		rows = rows[:0]
		for r := range col {
			rows = append(rows, r)
		}
		sort.Ints(rows)
		for _, r := range rows {
			fn(Entry{Row: r, Col: c, Val: col[r]})
		}
	}
}

// Entries returns all nonzero entries in enumeration order.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, m.NNZ())
	m.ForEachEntry(func(e Entry) { out = append(out, e) })
	return out
}

// MatVec computes dst = M·src without materializing dense form, enabling
// matrix-free iterative eigensolvers. dst and src must not alias.
// Returns ErrShape when either length differs from Dim.
func (m *Matrix) MatVec(dst, src []complex128) error {
	if len(dst) != m.dim || len(src) != m.dim {
		return fmt.Errorf("dst=%d src=%d dim=%d: %w", len(dst), len(src), m.dim, ErrShape)
	}
	for i := range dst {
		dst[i] = 0
	}
	for c, col := range m.cols {
		x := src[c]
		if x == 0 {
			continue
		}
		for r, v := range col {
			dst[r] += v * x
		}
	}
	return nil
}
