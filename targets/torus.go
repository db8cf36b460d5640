package targets

import (
	"fmt"
	"math"

	"github.com/ltorresi/jetsed/blob"
	"github.com/ltorresi/jetsed/cgs"
	"github.com/ltorresi/jetsed/cosmo"
)

// RingDustTorus reprocesses a fraction Xi of the disk luminosity into
// single-temperature thermal emission from a ring of radius RRing in
// the plane perpendicular to the jet.
type RingDustTorus struct {
	LDisk float64 // disk luminosity [erg/s]
	Xi    float64 // reprocessing fraction
	T     float64 // dust temperature [K]
	RRing float64 // ring radius [cm]
}

// NewRingDustTorus builds a torus. Passing rRing = 0 selects the dust
// sublimation radius 3.5e18 sqrt(L/1e45 erg/s) (T/1e3 K)^-2.6 cm.
func NewRingDustTorus(lDisk, xi, t, rRing float64) (*RingDustTorus, error) {
	switch {
	case lDisk <= 0:
		return nil, fmt.Errorf("need a positive disk luminosity, got %g.", lDisk)
	case xi <= 0 || xi > 1:
		return nil, fmt.Errorf("need a reprocessing fraction in (0, 1], got %g.", xi)
	case t <= 0:
		return nil, fmt.Errorf("need a positive temperature, got %g.", t)
	case rRing < 0:
		return nil, fmt.Errorf("need a non-negative ring radius, got %g.", rRing)
	}
	if rRing == 0 {
		rRing = SublimationRadius(lDisk, t)
	}
	return &RingDustTorus{LDisk: lDisk, Xi: xi, T: t, RRing: rRing}, nil
}

// SublimationRadius is the radius inside which dust at temperature t
// cannot survive a disk of luminosity lDisk.
func SublimationRadius(lDisk, t float64) float64 {
	return 3.5e18 * math.Sqrt(lDisk/1e45) * math.Pow(t/1e3, -2.6)
}

// EnergyDensity is xi L / (4 pi c (R^2 + r^2)): every point of the ring
// is equidistant x = sqrt(R^2 + r^2) from a region on the axis.
func (t *RingDustTorus) EnergyDensity(r float64) float64 {
	x2 := t.RRing*t.RRing + r*r
	return t.Xi * t.LDisk / (4 * math.Pi * cgs.C * x2)
}

func (t *RingDustTorus) EnergyDensityComoving(r float64, bl *blob.Blob) float64 {
	x := math.Hypot(t.RRing, r)
	mu := r / x
	return t.EnergyDensity(r) * beamFactor(bl, mu)
}

// PhotonEnergy is the mean thermal photon energy 2.7 k T / m_e c^2.
func (t *RingDustTorus) PhotonEnergy() float64 {
	return 2.7 * cgs.KB * t.T / cgs.MeC2
}

// ThermalSED returns the observed nu F_nu of the torus black body. The
// spectrum is the normalized Planck shape scaled so the integrated flux
// equals xi L_disk / (4 pi d_L^2).
func (t *RingDustTorus) ThermalSED(nu []float64, z float64) []float64 {
	dl := cosmo.LuminosityDistance(z)
	bolo := t.Xi * t.LDisk / (4 * math.Pi * dl * dl)

	// 15/pi^4 normalizes x^3/(e^x - 1) to unit integral.
	const norm = 15 / (math.Pi * math.Pi * math.Pi * math.Pi)

	out := make([]float64, len(nu))
	for i, n := range nu {
		x := cgs.H * n * (1 + z) / (cgs.KB * t.T)
		out[i] = bolo * norm * x * x * x * x / math.Expm1(x)
	}
	return out
}

func (t *RingDustTorus) String() string {
	return fmt.Sprintf(
		"RingDustTorus(L_disk=%.4g erg/s, xi=%.4g, T=%.4g K, R=%.4g cm)",
		t.LDisk, t.Xi, t.T, t.RRing,
	)
}

var _ ThermalEmitter = &RingDustTorus{}

// NewDustTorusFromDisk derives a torus from a disk's luminosity with
// the default sublimation radius.
func NewDustTorusFromDisk(d *SSDisk, xi, t float64) (*RingDustTorus, error) {
	return NewRingDustTorus(d.LDisk, xi, t, 0)
}
