package qubit_test

import (
	"testing"

	"github.com/katalvlaran/qualg/qubit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// single wraps one parsed term with coefficient c into an operator.
func single(t *testing.T, c complex128, text string) *qubit.Operator {
	t.Helper()
	term, err := qubit.ParseTerm(text)
	require.NoError(t, err, "test term %q must parse", text)
	return qubit.NewOperator().AddTerm(c, term)
}

// TestMul_PauliTable exercises the cyclic product rule on single factors.
func TestMul_PauliTable(t *testing.T) {
	cases := []struct {
		a, b  string
		want  string
		phase complex128
	}{
		{"X0", "Y0", "Z0", 1i},
		{"Y0", "X0", "Z0", -1i},
		{"Y0", "Z0", "X0", 1i},
		{"Z0", "Y0", "X0", -1i},
		{"Z0", "X0", "Y0", 1i},
		{"X0", "Z0", "Y0", -1i},
	}
	for _, tc := range cases {
		prod, err := single(t, 1, tc.a).Mul(single(t, 1, tc.b))
		require.NoError(t, err, "%s·%s", tc.a, tc.b)
		assert.True(t, single(t, tc.phase, tc.want).Equal(prod),
			"%s·%s must equal %v·%s, got %s", tc.a, tc.b, tc.phase, tc.want, prod)
	}
}

// TestMul_SameAxisCancels verifies X·X = Y·Y = Z·Z = identity.
func TestMul_SameAxisCancels(t *testing.T) {
	for _, axis := range []string{"X2", "Y2", "Z2"} {
		prod, err := single(t, 1, axis).Mul(single(t, 1, axis))
		require.NoError(t, err)
		assert.True(t, qubit.Identity().Equal(prod), "%s squared must be identity", axis)
	}
}

// TestMul_DisjointFactorsPassThrough verifies indices present in only one
// operand survive unchanged.
func TestMul_DisjointFactorsPassThrough(t *testing.T) {
	prod, err := single(t, 2, "X0 Z3").Mul(single(t, 3i, "Y1"))
	require.NoError(t, err)
	assert.True(t, single(t, 6i, "X0 Y1 Z3").Equal(prod),
		"disjoint product must merge factor lists, got %s", prod)
}

// TestCommutator_Literals checks the two literal commutator identities:
// [X0, Y0] = 2i·Z0 and [Z0, Y0] = −2i·X0.
func TestCommutator_Literals(t *testing.T) {
	comm, err := qubit.Commutator(single(t, 1, "X0"), single(t, 1, "Y0"))
	require.NoError(t, err)
	assert.True(t, single(t, 2i, "Z0").Equal(comm), "[X0,Y0] must be (2i) [Z0], got %s", comm)

	comm, err = qubit.Commutator(single(t, 1, "Z0"), single(t, 1, "Y0"))
	require.NoError(t, err)
	assert.True(t, single(t, -2i, "X0").Equal(comm), "[Z0,Y0] must be (-2i) [X0], got %s", comm)
}

// TestAnticommutator_DifferentAxesVanishes verifies {X0, Y0} = 0.
func TestAnticommutator_DifferentAxesVanishes(t *testing.T) {
	anti, err := qubit.Anticommutator(single(t, 1, "X0"), single(t, 1, "Y0"))
	require.NoError(t, err)
	assert.True(t, anti.IsZero(), "{X0,Y0} must vanish, got %s", anti)
}

// TestHermitianConjugate_ConjugatesCoefficientsOnly verifies terms remain
// untouched under the adjoint.
func TestHermitianConjugate_ConjugatesCoefficientsOnly(t *testing.T) {
	op := single(t, 1+2i, "X0 Y1")
	adj := op.HermitianConjugate()
	assert.True(t, single(t, 1-2i, "X0 Y1").Equal(adj), "adjoint must conjugate the coefficient")
}

// TestPow_ZeroIsIdentity verifies Pow(0) regardless of operand.
func TestPow_ZeroIsIdentity(t *testing.T) {
	op := single(t, 3, "X1 Z2")
	p, err := op.Pow(0)
	require.NoError(t, err)
	assert.True(t, qubit.Identity().Equal(p), "anything to the 0th power is identity")

	_, err = op.Pow(-1)
	assert.ErrorIs(t, err, qubit.ErrNegativePower, "negative exponent must error")
}

// TestPow_SquaredPauliString verifies (c·P)^2 = c²·I for a Pauli string P.
func TestPow_SquaredPauliString(t *testing.T) {
	op := single(t, 2i, "X0 Y1 Z2")
	sq, err := op.Pow(2)
	require.NoError(t, err)
	assert.True(t, qubit.Identity().Scale(-4).Equal(sq), "(2i·P)² must be -4·I, got %s", sq)
}

// TestWeight reports the non-identity factor count used for cost bounds.
func TestWeight(t *testing.T) {
	term, err := qubit.ParseTerm("X0 Y4 Z9")
	require.NoError(t, err)
	assert.Equal(t, 3, term.Weight())
	assert.Equal(t, 9, term.MaxQubit())

	identity, err := qubit.ParseTerm("")
	require.NoError(t, err)
	assert.Equal(t, 0, identity.Weight())
	assert.Equal(t, -1, identity.MaxQubit())
}

// TestMul_TermBudget verifies ErrTermBudget fires instead of unbounded growth.
func TestMul_TermBudget(t *testing.T) {
	a := qubit.NewOperator(qubit.WithMaxTerms(2))
	for _, text := range []string{"X0", "Y1", "Z2"} {
		term, err := qubit.ParseTerm(text)
		require.NoError(t, err)
		a.AddTerm(1, term)
	}
	b := a.Clone()
	_, err := a.Mul(b)
	assert.ErrorIs(t, err, qubit.ErrTermBudget, "3×3 product exceeds a 2-term budget")
}

// TestCompress_DropsCancelledResidue verifies the explicit re-pruning pass.
func TestCompress_DropsCancelledResidue(t *testing.T) {
	residue, err := qubit.ParseTerm("Z3")
	require.NoError(t, err)
	op := single(t, 1, "X0").AddTerm(1e-6, residue)
	require.Equal(t, 2, op.Len())

	op.Compress(1e-3)
	assert.Equal(t, 1, op.Len(), "Compress must drop entries at or below eps")

	kept, err := qubit.ParseTerm("X0")
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), op.Coefficient(kept), "surviving term keeps its coefficient")
}
