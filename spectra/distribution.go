/*package spectra models the particle energy distributions that fill an
emission region: analytic number densities n(gamma) [cm^-3] over a
Lorentz-factor range, plus constructors that solve the normalization
for a requested physical target (total density, energy density, ...).*/
package spectra

import (
	"fmt"

	"github.com/ltorresi/jetsed/cgs"
	"github.com/ltorresi/jetsed/math/integrate"
)

// Number of log-grid points used for the integral moments.
const momentSteps = 200

// Distribution is a particle number density as a function of the
// Lorentz factor gamma. Eval returns 0 outside [gmin, gmax].
type Distribution interface {
	Eval(gamma float64) float64
	Bounds() (gmin, gmax float64)
	// Mass is the rest mass of the particles [g].
	Mass() float64
	String() string
}

// EvalAll evaluates d at every gamma in gammas.
func EvalAll(d Distribution, gammas []float64) []float64 {
	out := make([]float64, len(gammas))
	for i, g := range gammas {
		out[i] = d.Eval(g)
	}
	return out
}

// Number returns the total number density, integral n(gamma) dgamma
// [cm^-3].
func Number(d Distribution) float64 {
	gmin, gmax := d.Bounds()
	return integrate.LogFunc(d.Eval, gmin, gmax, momentSteps)
}

// Energy returns the energy density, m c^2 integral gamma n(gamma)
// dgamma [erg cm^-3].
func Energy(d Distribution) float64 {
	gmin, gmax := d.Bounds()
	u := integrate.LogFunc(func(g float64) float64 {
		return g * d.Eval(g)
	}, gmin, gmax, momentSteps)
	return u * d.Mass() * cgs.C * cgs.C
}

func checkBounds(gmin, gmax float64) error {
	if gmin <= 0 {
		return fmt.Errorf("need a positive GammaMin, got %g.", gmin)
	}
	if gmin >= gmax {
		return fmt.Errorf(
			"need GammaMin < GammaMax, got [%g, %g].", gmin, gmax,
		)
	}
	return nil
}

func mass(m float64) float64 {
	if m == 0 {
		return cgs.Me
	}
	return m
}
