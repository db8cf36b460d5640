/*package blob models the spherical relativistic emission region of a
jet: its geometry, bulk motion, magnetic field and particle content.
Derived quantities are recomputed from the current distributions on
every read; nothing is cached.*/
package blob

import (
	"fmt"
	"math"

	"github.com/ltorresi/jetsed/cgs"
	"github.com/ltorresi/jetsed/spectra"
)

// Blob is the emission region. Physical parameters are set once at
// construction; the particle distributions may be swapped afterwards.
type Blob struct {
	R     float64 // comoving radius [cm]
	Z     float64 // source redshift
	Delta float64 // Doppler factor
	Gamma float64 // bulk Lorentz factor
	B     float64 // tangled magnetic field [G]

	Electrons spectra.Distribution
	Protons   spectra.Distribution // optional, may be nil
}

// New validates the parameters and builds a region. The Doppler factor
// must be achievable for the given bulk Lorentz factor, i.e.
// delta <= 2 Gamma (attained at zero viewing angle).
func New(r, z, delta, gamma, b float64, electrons spectra.Distribution) (*Blob, error) {
	switch {
	case r <= 0:
		return nil, fmt.Errorf("need a positive radius, got %g.", r)
	case z < 0:
		return nil, fmt.Errorf("need a non-negative redshift, got %g.", z)
	case b <= 0:
		return nil, fmt.Errorf("need a positive magnetic field, got %g.", b)
	case gamma < 1:
		return nil, fmt.Errorf("need a bulk Lorentz factor >= 1, got %g.", gamma)
	case delta <= 0 || delta > 2*gamma:
		return nil, fmt.Errorf(
			"Doppler factor %g not reachable with bulk Lorentz factor %g.",
			delta, gamma,
		)
	case electrons == nil:
		return nil, fmt.Errorf("need an electron distribution.")
	}
	return &Blob{R: r, Z: z, Delta: delta, Gamma: gamma, B: b,
		Electrons: electrons}, nil
}

// Beta is the bulk speed in units of c.
func (bl *Blob) Beta() float64 {
	return math.Sqrt(1 - 1/(bl.Gamma*bl.Gamma))
}

// Theta is the viewing angle [rad] implied by Delta and Gamma.
func (bl *Blob) Theta() float64 {
	mu := (1 - 1/(bl.Gamma*bl.Delta)) / bl.Beta()
	if mu > 1 {
		mu = 1
	}
	return math.Acos(mu)
}

// Volume is the comoving volume [cm^3].
func (bl *Blob) Volume() float64 {
	return 4 * math.Pi / 3 * bl.R * bl.R * bl.R
}

// NElectrons is the total electron count.
func (bl *Blob) NElectrons() float64 {
	return spectra.Number(bl.Electrons) * bl.Volume()
}

// NProtons is the total proton count, 0 without a proton distribution.
func (bl *Blob) NProtons() float64 {
	if bl.Protons == nil {
		return 0
	}
	return spectra.Number(bl.Protons) * bl.Volume()
}

// UElectrons is the comoving electron energy density [erg cm^-3].
func (bl *Blob) UElectrons() float64 {
	return spectra.Energy(bl.Electrons)
}

// UProtons is the comoving proton energy density [erg cm^-3].
func (bl *Blob) UProtons() float64 {
	if bl.Protons == nil {
		return 0
	}
	return spectra.Energy(bl.Protons)
}

// WElectrons is the total electron energy [erg].
func (bl *Blob) WElectrons() float64 {
	return bl.UElectrons() * bl.Volume()
}

// WProtons is the total proton energy [erg].
func (bl *Blob) WProtons() float64 {
	return bl.UProtons() * bl.Volume()
}

// UB is the magnetic energy density B^2 / 8 pi [erg cm^-3].
func (bl *Blob) UB() float64 {
	return bl.B * bl.B / (8 * math.Pi)
}

// PowerMagnetic is the jet power carried by the magnetic field,
// 2 pi R^2 beta c Gamma^2 U_B [erg/s]. The factor 2 counts both jets.
func (bl *Blob) PowerMagnetic() float64 {
	return 2 * math.Pi * bl.R * bl.R * bl.Beta() * cgs.C *
		bl.Gamma * bl.Gamma * bl.UB()
}

// PowerKinetic is the jet power in particles,
// 2 pi R^2 beta c Gamma^2 (U_e + U_p) [erg/s].
func (bl *Blob) PowerKinetic() float64 {
	return 2 * math.Pi * bl.R * bl.R * bl.Beta() * cgs.C *
		bl.Gamma * bl.Gamma * (bl.UElectrons() + bl.UProtons())
}

func (bl *Blob) String() string {
	s := fmt.Sprintf(
		"Blob(R=%.4g cm, z=%.4g, delta=%.4g, Gamma=%.4g, B=%.4g G)\n"+
			"  electrons: %s\n"+
			"  N_e=%.4g, U_e=%.4g erg/cm^3, U_B=%.4g erg/cm^3\n"+
			"  P_kin=%.4g erg/s, P_B=%.4g erg/s",
		bl.R, bl.Z, bl.Delta, bl.Gamma, bl.B,
		bl.Electrons,
		bl.NElectrons(), bl.UElectrons(), bl.UB(),
		bl.PowerKinetic(), bl.PowerMagnetic(),
	)
	if bl.Protons != nil {
		s += fmt.Sprintf("\n  protons: %s\n  N_p=%.4g, U_p=%.4g erg/cm^3",
			bl.Protons, bl.NProtons(), bl.UProtons())
	}
	return s
}
