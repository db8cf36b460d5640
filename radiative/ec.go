package radiative

import (
	"fmt"
	"math"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/cgs"
	"github.com/ltorresi/jetsed/cosmo"
	"github.com/ltorresi/jetsed/math/integrate"
	"github.com/ltorresi/jetsed/targets"
)

// ExternalCompton scatters the photons of an external target field off
// the region's electrons. The target is treated in the monochromatic
// approximation: a single comoving photon energy carrying the full
// comoving energy density at the region's distance R from the central
// engine.
type ExternalCompton struct {
	Blob   *blob.Blob
	Target targets.PhotonField
	R      float64 // distance of the region from the engine [cm]
}

func NewExternalCompton(bl *blob.Blob, t targets.PhotonField, r float64) (*ExternalCompton, error) {
	if r < 0 {
		return nil, fmt.Errorf("need a non-negative distance, got %g.", r)
	}
	return &ExternalCompton{Blob: bl, Target: t, R: r}, nil
}

// seed returns the comoving number density [cm^-3] and dimensionless
// energy of the monochromatic seed field. The comoving photon energy is
// scaled by the effective beam factor implied by the energy-density
// transformation, which keeps the photon number invariant between the
// two frames.
func (e *ExternalCompton) seed() (n0, eps0 float64) {
	uGal := e.Target.EnergyDensity(e.R)
	uCom := e.Target.EnergyDensityComoving(e.R, e.Blob)
	if uGal == 0 || uCom == 0 {
		return 0, 0
	}
	dEff := math.Sqrt(uCom / uGal)
	eps0 = e.Target.PhotonEnergy() * dEff
	n0 = uCom / (eps0 * cgs.MeC2)
	return n0, eps0
}

// SEDFlux returns nu F_nu on the observed frequency grid.
func (e *ExternalCompton) SEDFlux(nu []float64) []float64 {
	bl := e.Blob
	out := make([]float64, len(nu))

	n0, eps0 := e.seed()
	if n0 == 0 {
		return out
	}

	dl := cosmo.LuminosityDistance(bl.Z)
	d4 := bl.Delta * bl.Delta * bl.Delta * bl.Delta
	pre := d4 * cgs.MeC2 / (4 * math.Pi * dl * dl)
	rateNorm := 3 * cgs.SigmaT * cgs.C / 4 * bl.Volume() * n0 / eps0

	gmin, gmax := bl.Electrons.Bounds()
	for i, n := range nu {
		epsS := cgs.H * n * (1 + bl.Z) / (bl.Delta * cgs.MeC2)
		rate := rateNorm * integrate.LogFunc(func(g float64) float64 {
			q, gammaE := scatteredFraction(epsS, eps0, g)
			k := comptonKernel(q, gammaE, g)
			if k == 0 {
				return 0
			}
			return bl.Electrons.Eval(g) / (g * g) * k
		}, gmin, gmax, gammaSteps)
		out[i] = pre * epsS * epsS * rate
	}
	return out
}

func (e *ExternalCompton) String() string {
	return fmt.Sprintf("EC(target=%s, r=%.4g cm)", e.Target, e.R)
}
