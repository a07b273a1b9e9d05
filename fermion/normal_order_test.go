package fermion_test

import (
	"testing"

	"github.com/katalvlaran/qualg/fermion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// normalOrdered is a require-wrapped NormalOrdered for test brevity.
func normalOrdered(t *testing.T, op *fermion.Operator) *fermion.Operator {
	t.Helper()
	out, err := op.NormalOrdered()
	require.NoError(t, err, "normal ordering must stay within budget")
	return out
}

// TestNormalOrdered_AlreadyCanonical verifies canonical input passes through.
func TestNormalOrdered_AlreadyCanonical(t *testing.T) {
	op := single(t, 1+2i, "4^ 3^ 9 1")
	assert.True(t, op.IsNormalOrdered())
	assert.True(t, op.Equal(normalOrdered(t, op)), "canonical input must be a fixed point")
}

// TestNormalOrdered_PauliExclusion verifies a_p·a_p and a†_p·a†_p vanish.
func TestNormalOrdered_PauliExclusion(t *testing.T) {
	for _, text := range []string{"5 5", "5^ 5^", "1 5 5 2^", "0^ 0^ 3"} {
		no := normalOrdered(t, single(t, 3, text))
		assert.True(t, no.IsZero(), "term %q must vanish under exclusion, got %s", text, no)
	}
}

// TestNormalOrdered_SplitsOnEqualModePair verifies a_p a†_p = 1 − a†_p a_p.
func TestNormalOrdered_SplitsOnEqualModePair(t *testing.T) {
	no := normalOrdered(t, single(t, 1, "2 2^"))

	want := fermion.Identity().Sub(fermion.Number(2))
	assert.True(t, want.Equal(no), "a₂a†₂ must become 1 − a†₂a₂, got %s", no)
}

// TestNormalOrdered_AnticommutationClosure verifies
// N(a_p a†_p) + N(a†_p a_p) = identity for several p.
func TestNormalOrdered_AnticommutationClosure(t *testing.T) {
	for _, p := range []string{"0", "3", "17"} {
		lower := single(t, 1, p+" "+p+"^")
		raise := single(t, 1, p+"^ "+p)
		sum := normalOrdered(t, lower).Add(normalOrdered(t, raise))
		assert.True(t, fermion.Identity().Equal(sum),
			"a_p a†_p + a†_p a_p must be identity for p=%s, got %s", p, sum)
	}
}

// TestNormalOrdered_UnequalModesAnticommute verifies
// N(a_p a_q + a_q a_p) = 0 and N(a_p a†_q + a†_q a_p) = 0 for p ≠ q.
func TestNormalOrdered_UnequalModesAnticommute(t *testing.T) {
	anti, err := fermion.Anticommutator(single(t, 1, "2"), single(t, 1, "7"))
	require.NoError(t, err)
	assert.True(t, normalOrdered(t, anti).IsZero(), "{a₂, a₇} must vanish")

	anti, err = fermion.Anticommutator(single(t, 1, "2"), single(t, 1, "7^"))
	require.NoError(t, err)
	assert.True(t, normalOrdered(t, anti).IsZero(), "{a₂, a†₇} must vanish")
}

// TestNormalOrdered_Idempotent verifies N(N(A)) == N(A) and the canonical
// predicate on the result.
func TestNormalOrdered_Idempotent(t *testing.T) {
	extra, err := fermion.ParseTerm("0 0^ 1^")
	require.NoError(t, err)
	op := single(t, 1, "1 2^ 0 4^ 3").AddTerm(-2i, extra)
	once := normalOrdered(t, op)
	assert.True(t, once.IsNormalOrdered(), "result must satisfy the canonical predicate")
	twice := normalOrdered(t, once)
	assert.True(t, once.Equal(twice), "normal ordering must be idempotent")
}

// TestNormalOrdered_DescendingBlocks verifies block-internal ordering:
// creations descending, then annihilations descending.
func TestNormalOrdered_DescendingBlocks(t *testing.T) {
	no := normalOrdered(t, single(t, 1, "1^ 3^ 2 4"))

	// Two swaps (3^ past 1^, 4 past 2) each negate: net sign +1.
	assert.True(t, single(t, 1, "3^ 1^ 4 2").Equal(no), "blocks must sort descending, got %s", no)
}

// TestNormalOrdered_TermBudget verifies the resource guard trips instead of
// letting the splitting rule expand unbounded.
func TestNormalOrdered_TermBudget(t *testing.T) {
	// (a₀ a†₀)·(a₁ a†₁)·(a₂ a†₂)... splits once per pair.
	op := fermion.NewOperator(fermion.WithMaxTerms(2))
	term, err := fermion.ParseTerm("0 0^ 1 1^ 2 2^ 3 3^")
	require.NoError(t, err)
	op.AddTerm(1, term)

	_, err = op.NormalOrdered()
	assert.ErrorIs(t, err, fermion.ErrTermBudget, "splitting past the budget must error")
}
