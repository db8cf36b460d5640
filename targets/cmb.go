package targets

import (
	"fmt"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/cgs"
)

// CMB is the cosmic microwave background at redshift Z: an isotropic
// black-body field with T = T_0 (1+z) and u = a T^4.
type CMB struct {
	Z float64
}

func NewCMB(z float64) (*CMB, error) {
	if z < 0 {
		return nil, fmt.Errorf("need a non-negative redshift, got %g.", z)
	}
	return &CMB{Z: z}, nil
}

func (c *CMB) temperature() float64 {
	return cgs.TCMB * (1 + c.Z)
}

// EnergyDensity is independent of r.
func (c *CMB) EnergyDensity(r float64) float64 {
	t := c.temperature()
	return cgs.ARad * t * t * t * t
}

// EnergyDensityComoving applies the isotropic-field boost
// Gamma^2 (1 + beta^2/3).
func (c *CMB) EnergyDensityComoving(r float64, bl *blob.Blob) float64 {
	beta := bl.Beta()
	return c.EnergyDensity(r) * bl.Gamma * bl.Gamma * (1 + beta*beta/3)
}

// PhotonEnergy is the mean black-body photon energy 2.7 k T / m_e c^2.
func (c *CMB) PhotonEnergy() float64 {
	return 2.7 * cgs.KB * c.temperature() / cgs.MeC2
}

func (c *CMB) String() string {
	return fmt.Sprintf("CMB(z=%.4g, T=%.4g K)", c.Z, c.temperature())
}

var _ PhotonField = &CMB{}
