package fermion_test

import (
	"testing"

	"github.com/katalvlaran/qualg/fermion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseTerm_RoundTrip verifies key rendering matches the input text.
func TestParseTerm_RoundTrip(t *testing.T) {
	term, err := fermion.ParseTerm("4^ 3^ 9 1")
	require.NoError(t, err)
	assert.Equal(t, "4^ 3^ 9 1", term.Key(), "order-significant factors must render verbatim")
	assert.Equal(t, 9, term.MaxMode())
}

// TestParseTerm_EmptyIsIdentity verifies the empty string parses to identity.
func TestParseTerm_EmptyIsIdentity(t *testing.T) {
	term, err := fermion.ParseTerm("")
	require.NoError(t, err)
	assert.Empty(t, term)
	assert.Equal(t, -1, term.MaxMode())
}

// TestParseTerm_Malformed rejects every off-grammar token shape.
func TestParseTerm_Malformed(t *testing.T) {
	for _, text := range []string{"^", "^3", "3^^", "a", "3a", "-1", "+2^", "3 ^"} {
		_, err := fermion.ParseTerm(text)
		assert.ErrorIs(t, err, fermion.ErrParse, "text %q must fail to parse", text)
	}
}

// TestOperator_TwoTermLiteral builds the documented two-term operator and
// checks the literal coefficients survive.
func TestOperator_TwoTermLiteral(t *testing.T) {
	quartic, err := fermion.ParseTerm("4^ 3^ 9 1")
	require.NoError(t, err)
	quadratic, err := fermion.ParseTerm("3^ 1")
	require.NoError(t, err)

	op := fermion.NewOperator().
		AddTerm(1+2i, quartic).
		AddTerm(-1.7, quadratic)

	assert.Equal(t, 2, op.Len(), "exactly two terms expected")
	assert.Equal(t, complex(1, 2), op.Coefficient(quartic))
	assert.Equal(t, complex(-1.7, 0), op.Coefficient(quadratic))
	assert.Equal(t, "(1+2i) [4^ 3^ 9 1] +\n(-1.7+0i) [3^ 1]", op.String())
}

// TestNewTerm_NegativeMode rejects explicitly constructed bad factors.
func TestNewTerm_NegativeMode(t *testing.T) {
	_, err := fermion.NewTerm(fermion.Ladder{Mode: -2, Act: fermion.Create})
	assert.ErrorIs(t, err, fermion.ErrBadMode)
}
