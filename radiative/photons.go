package radiative

import (
	"math"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/cgs"
	"github.com/ltorresi/jetsed/math/integrate"
)

// Comoving photon-energy range of the internal synchrotron field.
// Wide enough to hold the synchrotron bump for any sane blob.
const (
	SynchEpsMin = 1e-13
	SynchEpsMax = 1e1
)

// PhotonDensity is the comoving synchrotron photon number density per
// unit dimensionless energy, n'(eps') [cm^-3]. Photons escape a
// homogeneous sphere in an average (3/4) R/c, so
//
//	n'(eps') = 9 L'(eps') / (16 pi R^2 c eps' m_e c^2).
func PhotonDensity(s *Synchrotron, epsPrime float64) float64 {
	bl := s.Blob
	l := s.emissivity(epsPrime)
	return 9 * l / (16 * math.Pi * bl.R * bl.R * cgs.C * epsPrime * cgs.MeC2)
}

// PhotonEnergyDensity is the comoving energy density of the region's
// own synchrotron radiation [erg cm^-3], the seed field of SSC and of
// internal gamma-gamma absorption.
func PhotonEnergyDensity(bl *blob.Blob) float64 {
	s := NewSynchrotron(bl, false)
	lTotal := integrate.LogFunc(s.emissivity, SynchEpsMin, SynchEpsMax, epsSteps)
	return 9 * lTotal / (16 * math.Pi * bl.R * bl.R * cgs.C)
}
