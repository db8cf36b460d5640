/*package cosmo supplies the little bit of cosmology the SED code needs:
converting a source redshift into a luminosity distance.*/
package cosmo

import (
	"math"

	"github.com/ltorresi/jetsed/cgs"
)

// Default flat LambdaCDM parameters.
const (
	H0     = 70.0 // [km/s/Mpc]
	OmegaM = 0.3
	OmegaL = 1 - OmegaM
)

const hubbleDistance = cgs.C / (H0 * 1e5) * 1e6 * cgs.Pc // [cm]

const comovingSteps = 256

// LuminosityDistance returns the luminosity distance to redshift z in cm
// for the default flat LambdaCDM cosmology.
func LuminosityDistance(z float64) float64 {
	if z <= 0 {
		return 0
	}

	// Trapezoidal integral of 1/E(z') over [0, z].
	dz := z / comovingSteps
	sum := 0.5 * (invE(0) + invE(z))
	for i := 1; i < comovingSteps; i++ {
		sum += invE(dz * float64(i))
	}

	dc := hubbleDistance * sum * dz
	return dc * (1 + z)
}

func invE(z float64) float64 {
	zp := 1 + z
	return 1 / math.Sqrt(OmegaM*zp*zp*zp+OmegaL)
}
