// Package sparseop: dense materialization escape hatch.

package sparseop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MaxDenseQubits caps Dense(): a 2^12 × 2^12 complex matrix is already
// 256 MiB, and dense form is only meant for small-n inspection and the
// eigensolver bridge.
const MaxDenseQubits = 12

// Dense materializes the sparse operator into a gonum mat.CDense.
// Returns ErrTooLarge past MaxDenseQubits.
func (m *Matrix) Dense() (*mat.CDense, error) {
	if m.qubits > MaxDenseQubits {
		return nil, fmt.Errorf("n=%d exceeds %d: %w", m.qubits, MaxDenseQubits, ErrTooLarge)
	}
	out := mat.NewCDense(m.dim, m.dim, nil)
	m.ForEachEntry(func(e Entry) {
		out.Set(e.Row, e.Col, e.Val)
	})
	return out, nil
}
