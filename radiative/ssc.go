package radiative

import (
	"fmt"
	"math"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/cgs"
	"github.com/ltorresi/jetsed/cosmo"
	"github.com/ltorresi/jetsed/math/integrate"
)

// SynchrotronSelfCompton scatters the region's own synchrotron photons
// off the electrons that produced them.
type SynchrotronSelfCompton struct {
	Blob *blob.Blob

	synch *Synchrotron
}

func NewSSC(bl *blob.Blob) *SynchrotronSelfCompton {
	return &SynchrotronSelfCompton{Blob: bl, synch: NewSynchrotron(bl, false)}
}

// rate is the comoving scattered-photon production rate per unit
// dimensionless energy, dN'/dt' deps_s' [1/s], folding the isotropic
// Compton kernel over the synchrotron photon density and the electron
// distribution.
func (s *SynchrotronSelfCompton) rate(epsS float64) float64 {
	bl := s.Blob
	gmin, gmax := bl.Electrons.Bounds()
	v := bl.Volume()

	return integrate.LogFunc(func(eps float64) float64 {
		nPh := PhotonDensity(s.synch, eps)
		if nPh == 0 {
			return 0
		}
		perPhoton := integrate.LogFunc(func(g float64) float64 {
			q, gammaE := scatteredFraction(epsS, eps, g)
			k := comptonKernel(q, gammaE, g)
			if k == 0 {
				return 0
			}
			return bl.Electrons.Eval(g) / (g * g) * k
		}, gmin, gmax, gammaSteps)
		return nPh / eps * perPhoton
	}, SynchEpsMin, SynchEpsMax, epsSteps) * 3 * cgs.SigmaT * cgs.C / 4 * v
}

// SEDFlux returns nu F_nu on the observed frequency grid.
func (s *SynchrotronSelfCompton) SEDFlux(nu []float64) []float64 {
	bl := s.Blob
	dl := cosmo.LuminosityDistance(bl.Z)
	d4 := bl.Delta * bl.Delta * bl.Delta * bl.Delta
	pre := d4 * cgs.MeC2 / (4 * math.Pi * dl * dl)

	out := make([]float64, len(nu))
	for i, n := range nu {
		epsS := cgs.H * n * (1 + bl.Z) / (bl.Delta * cgs.MeC2)
		out[i] = pre * epsS * epsS * s.rate(epsS)
	}
	return out
}

func (s *SynchrotronSelfCompton) String() string { return "SSC" }
