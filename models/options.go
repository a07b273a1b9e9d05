package models

// Option tunes the lattice Hamiltonians produced by this package.
type Option func(*config)

// config carries the physical parameters of a Hubbard lattice.
// Zero values are meaningful, so defaults live in defaultConfig.
type config struct {
	tunneling         float64 // hopping amplitude t
	coulomb           float64 // interaction strength U
	chemicalPotential float64 // chemical potential mu
	magneticField     float64 // magnetic field h along z
	spinless          bool    // one mode per site instead of two
	periodic          bool    // wrap lattice edges
}

func defaultConfig() config {
	return config{
		tunneling: 1.0,
		periodic:  true,
	}
}

// WithTunneling sets the hopping amplitude t. Default: 1.0.
func WithTunneling(t float64) Option {
	return func(c *config) { c.tunneling = t }
}

// WithCoulomb sets the interaction strength U. Default: 0.
func WithCoulomb(u float64) Option {
	return func(c *config) { c.coulomb = u }
}

// WithChemicalPotential sets the chemical potential mu, entering the
// Hamiltonian as -mu per occupied mode. Default: 0.
func WithChemicalPotential(mu float64) Option {
	return func(c *config) { c.chemicalPotential = mu }
}

// WithMagneticField sets the field h, splitting the spin species by
// -h/2 (up) and +h/2 (down). Ignored on spinless lattices. Default: 0.
func WithMagneticField(h float64) Option {
	return func(c *config) { c.magneticField = h }
}

// Spinless drops the spin degree of freedom: one mode per site, with the
// Coulomb term acting between neighboring sites instead of on-site.
func Spinless() Option {
	return func(c *config) { c.spinless = true }
}

// WithPeriodic toggles periodic boundary conditions. Default: true.
// A wrapped dimension of two or fewer sites never emits the wrap bond,
// so small lattices do not double count edges.
func WithPeriodic(periodic bool) Option {
	return func(c *config) { c.periodic = periodic }
}
