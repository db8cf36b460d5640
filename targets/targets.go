/*package targets models the photon fields external to the jet that
feed external-Compton scattering and gamma-gamma absorption: the CMB,
a point source behind the jet, a Shakura-Sunyaev accretion disk, a
spherical-shell broad line region and a ring dust torus.

Energy densities come in two frames: EnergyDensity gives the integral
photon energy density in the galaxy rest frame at distance r from the
central engine, EnergyDensityComoving gives the same field transformed
into the frame of an emission region moving along the jet axis at that
distance. Each field also exposes a characteristic dimensionless photon
energy (h nu / m_e c^2, galaxy frame) used by the monochromatic
approximations downstream.*/
package targets

import (
	"github.com/ltorresi/jetsed/blob"
)

// PhotonField is the shared capability of all target photon fields.
type PhotonField interface {
	// EnergyDensity returns the photon energy density [erg cm^-3] in
	// the galaxy frame at distance r [cm] along the jet axis. It is
	// finite and non-negative for every r >= 0; distances at or inside
	// a field's defining radius are legal.
	EnergyDensity(r float64) float64

	// EnergyDensityComoving returns the energy density seen by the
	// moving emission region at distance r.
	EnergyDensityComoving(r float64, bl *blob.Blob) float64

	// PhotonEnergy is the characteristic dimensionless photon energy
	// of the field in the galaxy frame.
	PhotonEnergy() float64

	String() string
}

// ThermalEmitter is implemented by fields with an observable thermal
// SED (the disk and the torus).
type ThermalEmitter interface {
	PhotonField
	// ThermalSED returns nu F_nu [erg s^-1 cm^-2] of the black-body
	// emission at the observed frequencies nu [Hz] for a source at
	// redshift z.
	ThermalSED(nu []float64, z float64) []float64
}

// beamFactor is the energy-density transformation of a photon beam
// arriving at the region with direction cosine mu relative to the jet
// axis: Gamma^2 (1 - beta mu)^2.
func beamFactor(bl *blob.Blob, mu float64) float64 {
	d := bl.Gamma * (1 - bl.Beta()*mu)
	return d * d
}
