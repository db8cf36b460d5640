package radiative

import (
	"fmt"
	"math"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/cgs"
	"github.com/ltorresi/jetsed/cosmo"
	"github.com/ltorresi/jetsed/math/integrate"
)

// Synchrotron is the synchrotron emission of a region's electrons.
// SelfAbsorption switches the internally used kernel to the
// self-absorbed one; the public contract is unchanged.
type Synchrotron struct {
	Blob           *blob.Blob
	SelfAbsorption bool
}

func NewSynchrotron(bl *blob.Blob, ssa bool) *Synchrotron {
	return &Synchrotron{Blob: bl, SelfAbsorption: ssa}
}

// xSynch is the argument of the R(x) kernel: nu' over the critical
// frequency of an electron with Lorentz factor gamma.
func xSynch(b, epsPrime, gamma float64) float64 {
	return 4 * math.Pi * epsPrime * cgs.Me * cgs.Me * cgs.C * cgs.C * cgs.C /
		(3 * cgs.E * b * cgs.H * gamma * gamma)
}

// emissivity is the comoving spectral luminosity dL'/deps' [erg/s] at
// dimensionless photon energy epsPrime (Finke et al. 2008, eq. 19,
// folded with the full electron distribution).
func (s *Synchrotron) emissivity(epsPrime float64) float64 {
	bl := s.Blob
	gmin, gmax := bl.Electrons.Bounds()
	integral := integrate.LogFunc(func(g float64) float64 {
		return bl.Electrons.Eval(g) * synchR(xSynch(bl.B, epsPrime, g))
	}, gmin, gmax, gammaSteps)

	pre := math.Sqrt(3) * cgs.E * cgs.E * cgs.E * bl.B / cgs.H
	return pre * bl.Volume() * integral
}

// opticalDepth is the synchrotron self-absorption optical depth through
// the region at comoving photon energy epsPrime.
func (s *Synchrotron) opticalDepth(epsPrime float64) float64 {
	bl := s.Blob
	nuPrime := epsPrime * cgs.NuMeC2
	gmin, gmax := bl.Electrons.Bounds()

	// gamma^2 d/dgamma (n/gamma^2) by central differences on the
	// current distribution.
	const h = 1e-3
	deriv := func(g float64) float64 {
		lo, hi := g*(1-h), g*(1+h)
		flo := bl.Electrons.Eval(lo) / (lo * lo)
		fhi := bl.Electrons.Eval(hi) / (hi * hi)
		return g * g * (fhi - flo) / (hi - lo)
	}

	integral := integrate.LogFunc(func(g float64) float64 {
		return synchR(xSynch(bl.B, epsPrime, g)) * deriv(g)
	}, gmin*(1+2*h), gmax/(1+2*h), gammaSteps)

	kappa := -math.Sqrt(3) * cgs.E * cgs.E * cgs.E * bl.B /
		(8 * math.Pi * cgs.Me * cgs.H * nuPrime * nuPrime) * integral
	tau := 2 * bl.R * kappa
	if tau < 0 {
		return 0
	}
	return tau
}

// sphereDepthFactor is the flux reduction of a homogeneous
// self-absorbing sphere with central optical depth tau (Gould 1979):
// 3 u(tau)/tau with u = 1/2 + exp(-tau)/tau - (1 - exp(-tau))/tau^2.
func sphereDepthFactor(tau float64) float64 {
	if tau < 1e-3 {
		return 1
	}
	u := 0.5 + math.Exp(-tau)/tau - (1-math.Exp(-tau))/(tau*tau)
	return 3 * u / tau
}

// SEDFlux returns nu F_nu on the observed frequency grid.
func (s *Synchrotron) SEDFlux(nu []float64) []float64 {
	bl := s.Blob
	dl := cosmo.LuminosityDistance(bl.Z)
	d4 := bl.Delta * bl.Delta * bl.Delta * bl.Delta
	pre := d4 / (4 * math.Pi * dl * dl)

	out := make([]float64, len(nu))
	for i, n := range nu {
		epsPrime := cgs.H * n * (1 + bl.Z) / (bl.Delta * cgs.MeC2)
		f := pre * epsPrime * s.emissivity(epsPrime)
		if s.SelfAbsorption {
			f *= sphereDepthFactor(s.opticalDepth(epsPrime))
		}
		out[i] = f
	}
	return out
}

func (s *Synchrotron) String() string {
	return fmt.Sprintf("Synchrotron(ssa=%v)", s.SelfAbsorption)
}
