package targets

import (
	"fmt"
	"math"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/cgs"
)

// PointSourceBehindJet is a monochromatic point source of luminosity L
// sitting at the base of the jet. All of its photons reach the region
// from directly behind, which makes it the far-field limit of the shell
// and ring geometries.
type PointSourceBehindJet struct {
	L   float64 // [erg/s]
	Eps float64 // dimensionless photon energy
}

// Distances below this are clamped so the coordinate singularity at the
// source position stays out of the energy-density profile.
const minPointDistance = 1e10 // [cm]

func NewPointSourceBehindJet(l, eps float64) (*PointSourceBehindJet, error) {
	if l <= 0 {
		return nil, fmt.Errorf("need a positive luminosity, got %g.", l)
	}
	if eps <= 0 {
		return nil, fmt.Errorf("need a positive photon energy, got %g.", eps)
	}
	return &PointSourceBehindJet{L: l, Eps: eps}, nil
}

// EnergyDensity is L / (4 pi c r^2).
func (p *PointSourceBehindJet) EnergyDensity(r float64) float64 {
	r = math.Max(r, minPointDistance)
	return p.L / (4 * math.Pi * cgs.C * r * r)
}

// EnergyDensityComoving deboosts the head-tail beam:
// u' = u Gamma^2 (1 - beta)^2 = u / (Gamma (1 + beta))^2.
func (p *PointSourceBehindJet) EnergyDensityComoving(r float64, bl *blob.Blob) float64 {
	return p.EnergyDensity(r) * beamFactor(bl, 1)
}

func (p *PointSourceBehindJet) PhotonEnergy() float64 { return p.Eps }

func (p *PointSourceBehindJet) String() string {
	return fmt.Sprintf(
		"PointSourceBehindJet(L=%.4g erg/s, eps=%.4g)", p.L, p.Eps,
	)
}

var _ PhotonField = &PointSourceBehindJet{}
