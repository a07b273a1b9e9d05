package models_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qualg/fermion"
	"github.com/katalvlaran/qualg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToQuadratic_NormalOrdersFirst verifies that the conversion sees
// through non-canonical writings: a₀ a†₀ = 1 - n₀.
func TestToQuadratic_NormalOrdersFirst(t *testing.T) {
	term, err := fermion.ParseTerm("0 0^")
	require.NoError(t, err)
	op := fermion.NewOperator().AddTerm(1, term)

	quad, err := models.ToQuadratic(op)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), quad.Constant)
	assert.Equal(t, complex(-1, 0), quad.OneBody.At(0, 0))
}

func TestToQuadratic_RoundTrip(t *testing.T) {
	one := mat.NewCDense(3, 3, []complex128{
		1, 2i, 0,
		-2i, 3, 1,
		0, 1, -0.5,
	})
	h, err := models.FromTensors(0.25, one, nil)
	require.NoError(t, err)

	quad, err := models.ToQuadratic(h)
	require.NoError(t, err)
	assert.Equal(t, complex(0.25, 0), quad.Constant)
	for p := 0; p < 3; p++ {
		for q := 0; q < 3; q++ {
			assert.Equal(t, one.At(p, q), quad.OneBody.At(p, q), "entry (%d,%d)", p, q)
		}
	}
}

func TestToQuadratic_RejectsQuartic(t *testing.T) {
	h, err := models.FermiHubbard(1, 1, models.WithCoulomb(4.0), models.WithChemicalPotential(1.0))
	require.NoError(t, err)

	_, err = models.ToQuadratic(h)
	assert.ErrorIs(t, err, models.ErrShapeMismatch, "on-site repulsion is not quadratic")
}

// TestToDiagonalCoulomb_Hubbard recovers the on-site repulsion of an
// isolated Hubbard site as a symmetric interaction matrix:
// U·n₀n₁ maps to W[0][1] = W[1][0] = U.
func TestToDiagonalCoulomb_Hubbard(t *testing.T) {
	h, err := models.FermiHubbard(1, 1, models.WithCoulomb(4.0), models.WithChemicalPotential(1.0))
	require.NoError(t, err)

	dc, err := models.ToDiagonalCoulomb(h)
	require.NoError(t, err)
	assert.Equal(t, complex(0, 0), dc.Constant)
	assert.Equal(t, complex(-1, 0), dc.OneBody.At(0, 0), "chemical potential stays one-body")
	assert.Equal(t, complex(-1, 0), dc.OneBody.At(1, 1))
	assert.Equal(t, complex(4, 0), dc.Coulomb.At(0, 1))
	assert.Equal(t, complex(4, 0), dc.Coulomb.At(1, 0), "interaction matrix is symmetric")
	assert.Equal(t, complex(0, 0), dc.Coulomb.At(0, 0))
}

func TestToDiagonalCoulomb_RejectsGeneralQuartic(t *testing.T) {
	term, err := fermion.ParseTerm("3^ 2^ 1 0")
	require.NoError(t, err)
	op := fermion.NewOperator().AddTerm(1, term)

	_, err = models.ToDiagonalCoulomb(op)
	assert.ErrorIs(t, err, models.ErrShapeMismatch,
		"a quartic off the density-density shape must be rejected")
}
