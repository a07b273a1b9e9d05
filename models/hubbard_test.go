package models_test

import (
	"testing"

	"github.com/katalvlaran/qualg/fermion"
	"github.com/katalvlaran/qualg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coeff reads the coefficient stored for the term text, failing the test
// on a malformed literal.
func coeff(t *testing.T, op *fermion.Operator, text string) complex128 {
	t.Helper()
	term, err := fermion.ParseTerm(text)
	require.NoError(t, err, "test term %q must parse", text)
	return op.Coefficient(term)
}

func TestFermiHubbard_RejectsBadLattice(t *testing.T) {
	_, err := models.FermiHubbard(0, 2)
	assert.ErrorIs(t, err, models.ErrBadLattice)

	_, err = models.FermiHubbard(3, -1)
	assert.ErrorIs(t, err, models.ErrBadLattice)
}

// TestFermiHubbard_SingleSite pins the local terms of an isolated site:
// no bonds, so only the fields and the on-site repulsion survive.
func TestFermiHubbard_SingleSite(t *testing.T) {
	h, err := models.FermiHubbard(1, 1,
		models.WithCoulomb(4.0),
		models.WithChemicalPotential(1.0),
		models.WithMagneticField(1.0),
	)
	require.NoError(t, err)

	assert.Equal(t, complex(-1.5, 0), coeff(t, h, "0^ 0"), "spin-up number term carries -mu-h/2")
	assert.Equal(t, complex(-0.5, 0), coeff(t, h, "1^ 1"), "spin-down number term carries -mu+h/2")
	assert.Equal(t, complex(4, 0), coeff(t, h, "0^ 0 1^ 1"), "on-site repulsion couples the spin species")
	assert.Equal(t, 3, h.Len(), "an isolated site emits no hopping")
}

// TestFermiHubbard_TwoSiteChain verifies the hopping terms of a two-site
// chain: both spin species, both directions, amplitude -t, and no wrap
// bond even under periodic boundaries.
func TestFermiHubbard_TwoSiteChain(t *testing.T) {
	h, err := models.FermiHubbard(2, 1, models.WithTunneling(2.0))
	require.NoError(t, err)

	for _, text := range []string{"0^ 2", "2^ 0", "1^ 3", "3^ 1"} {
		assert.Equal(t, complex(-2, 0), coeff(t, h, text), "hop %s must carry -t", text)
	}
	assert.Equal(t, 4, h.Len(), "two sites share exactly one bond")
}

// TestFermiHubbard_PeriodicRing verifies that wrap bonds appear only on
// axes longer than two sites, and vanish under open boundaries.
func TestFermiHubbard_PeriodicRing(t *testing.T) {
	ring, err := models.FermiHubbard(4, 1, models.Spinless())
	require.NoError(t, err)
	assert.Equal(t, 8, ring.Len(), "a 4-ring has 4 bonds, 2 hop terms each")
	assert.Equal(t, complex(-1, 0), coeff(t, ring, "3^ 0"), "the wrap bond closes the ring")

	chain, err := models.FermiHubbard(4, 1, models.Spinless(), models.WithPeriodic(false))
	require.NoError(t, err)
	assert.Equal(t, 6, chain.Len(), "an open 4-chain has 3 bonds")
	assert.Equal(t, complex(0, 0), coeff(t, chain, "3^ 0"), "open boundaries emit no wrap bond")
}

// TestFermiHubbard_SpinlessCoulomb verifies the interaction moves onto
// neighbor bonds when the spin degree of freedom is dropped.
func TestFermiHubbard_SpinlessCoulomb(t *testing.T) {
	h, err := models.FermiHubbard(2, 1, models.Spinless(), models.WithCoulomb(4.0))
	require.NoError(t, err)

	assert.Equal(t, complex(4, 0), coeff(t, h, "0^ 0 1^ 1"), "neighbor density product carries U")
	assert.Equal(t, complex(-1, 0), coeff(t, h, "0^ 1"), "hopping keeps the default amplitude")
	assert.Equal(t, 3, h.Len())
}

// TestFermiHubbard_TwoByTwo counts the terms of the reference 2×2
// lattice: four single-counted bonds and four on-site repulsions.
func TestFermiHubbard_TwoByTwo(t *testing.T) {
	h, err := models.FermiHubbard(2, 2, models.WithCoulomb(4.0))
	require.NoError(t, err)

	// 4 bonds × 2 spins × 2 directions hopping, plus 4 on-site terms.
	assert.Equal(t, 20, h.Len())
	assert.Equal(t, 7, h.MaxMode(), "2×2 spinful lattice spans 8 modes")
	assert.Equal(t, complex(-1, 0), coeff(t, h, "0^ 4"), "site 0 hops down to site 2")
	assert.Equal(t, complex(4, 0), coeff(t, h, "6^ 6 7^ 7"), "site 3 carries on-site repulsion")
}
